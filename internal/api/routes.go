package api

import (
	"github.com/gin-gonic/gin"

	"boleia/internal/api/handlers"
	"boleia/internal/api/middleware"
	"boleia/internal/domain/entities"
	"boleia/internal/services"
)

type Router struct {
	authService   *services.AuthService
	authHandler   *handlers.AuthHandler
	rideHandler   *handlers.RideHandler
	driverHandler *handlers.DriverHandler
	reportHandler *handlers.ReportHandler
	adminHandler  *handlers.AdminHandler
	safetyHandler *handlers.SafetyHandler
}

func NewRouter(
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	rideHandler *handlers.RideHandler,
	driverHandler *handlers.DriverHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	safetyHandler *handlers.SafetyHandler,
) *Router {
	return &Router{
		authService:   authService,
		authHandler:   authHandler,
		rideHandler:   rideHandler,
		driverHandler: driverHandler,
		reportHandler: reportHandler,
		adminHandler:  adminHandler,
		safetyHandler: safetyHandler,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Session endpoints — no auth, these ARE the auth
	auth := engine.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/social", r.authHandler.SocialLogin)
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/recover", r.authHandler.RecoverPassword)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/session", r.authHandler.Session)
	}

	// Everything below requires a live session
	authed := engine.Group("/")
	authed.Use(middleware.RequireSession(r.authService))
	{
		authed.GET("/rides", r.rideHandler.ListRides)
		authed.POST("/rides", r.rideHandler.CreateRide)
		authed.GET("/wallet/:account_id/balance", r.rideHandler.WalletBalance)
		authed.GET("/wallet/:account_id/transactions", r.rideHandler.WalletTransactions)
		authed.POST("/wallet/:account_id/transactions", r.rideHandler.UpdateWallet)
		authed.PATCH("/auth/profile/:id", r.authHandler.UpdateProfile)
		authed.POST("/safety/insights", r.safetyHandler.Insights)

		driverRoutes := authed.Group("/driver")
		driverRoutes.Use(middleware.RequireRole(entities.RoleDriver, entities.RoleAdmin))
		{
			driverRoutes.GET("/stats", r.driverHandler.Stats)
			driverRoutes.PATCH("/points", r.driverHandler.UpdatePoints)
			driverRoutes.POST("/redeem", r.driverHandler.Redeem)
			driverRoutes.PATCH("/online", r.driverHandler.SetOnline)
		}

		reportRoutes := authed.Group("/reports")
		reportRoutes.Use(middleware.RequireRole(entities.RoleAgent, entities.RoleAdmin))
		{
			reportRoutes.GET("", r.reportHandler.ListReports)
			reportRoutes.POST("", r.reportHandler.CreateReport)
			reportRoutes.PATCH("/:id/resolve", r.reportHandler.ResolveReport)
		}

		adminRoutes := authed.Group("/admin")
		adminRoutes.Use(middleware.RequireRole(entities.RoleAdmin))
		{
			adminRoutes.GET("/audit", r.adminHandler.AuditLog)
			adminRoutes.GET("/export", r.adminHandler.Export)
		}
	}
}
