package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"boleia/internal/advisory"
	"boleia/internal/api"
	"boleia/internal/api/handlers"
	"boleia/internal/config"
	"boleia/internal/services"
	"boleia/internal/storage"
	"boleia/internal/storage/badgerdb"
)

func main() {
	// Load configuration (defaults + BOLEIA_* env overrides)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the persistent store
	store, err := badgerdb.Open(badgerdb.Config{
		Path:     cfg.Storage.Path,
		InMemory: cfg.Storage.InMemory,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// First-run seeding: fixtures for any collection never written
	if err := storage.Seed(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Initialize services
	auditService := services.NewAuditService(store, cfg.Audit.MaxEntries)
	walletService := services.NewWalletService(store)
	authService := services.NewAuthService(store, walletService, auditService, cfg)
	rideService := services.NewRideService(store, walletService, auditService, cfg)
	rewardsService := services.NewRewardsService(store, cfg.Rewards)
	reportService := services.NewReportService(store, auditService)
	exportService := services.NewExportService(store)

	// Advisory collaborator (presentation-side; fixed fallback without a key)
	advisor := advisory.NewClient(cfg.Advisory)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	rideHandler := handlers.NewRideHandler(rideService, walletService)
	driverHandler := handlers.NewDriverHandler(rewardsService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(auditService, exportService)
	safetyHandler := handlers.NewSafetyHandler(advisor)

	// Setup router
	router := api.NewRouter(
		authService,
		authHandler,
		rideHandler,
		driverHandler,
		reportHandler,
		adminHandler,
		safetyHandler,
	)

	engine := gin.Default()
	router.Setup(engine)

	// Start server
	log.Printf("Starting boleia backend on %s (store: %s)", cfg.Server.Port, cfg.Storage.Path)
	if err := engine.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
