// Package config centralizes all application configuration into typed structs.
//
// Defaults live in NewDefaultConfig(); Load() applies environment variable
// overrides on top via "github.com/caarlos0/env/v11" struct tags. Using typed
// structs (not raw strings/maps) gives compile-time safety and IDE
// autocompletion, which is strongly preferred in Go over untyped config.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the top-level configuration container. Grouping related settings
// into sub-structs keeps the config organized as the application grows.
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Pricing  PricingConfig  `envPrefix:"PRICING_"`
	Wallet   WalletConfig   `envPrefix:"WALLET_"`
	Rewards  RewardsConfig  `envPrefix:"REWARDS_"`
	Audit    AuditConfig    `envPrefix:"AUDIT_"`
	Latency  LatencyConfig  `envPrefix:"LATENCY_"`
	Advisory AdvisoryConfig `envPrefix:"ADVISORY_"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `env:"PORT"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

// StorageConfig controls the embedded store. Path is the BadgerDB directory;
// InMemory switches to a non-persistent database for tests and local runs.
type StorageConfig struct {
	Path     string `env:"PATH"`
	InMemory bool   `env:"IN_MEMORY"`
}

// PricingConfig defines the per-kilometre rate for each ride category, in
// meticais. Price = round(distance_km * rate), half to even.
type PricingConfig struct {
	QuickPerKm  float64 `env:"QUICK_PER_KM"`
	SafePerKm   float64 `env:"SAFE_PER_KM"`
	EcoPerKm    float64 `env:"ECO_PER_KM"`
	SharedPerKm float64 `env:"SHARED_PER_KM"`
}

// WalletConfig holds ledger policy knobs.
type WalletConfig struct {
	WelcomeBonus int64 `env:"WELCOME_BONUS"`
}

// RewardsConfig defines the point thresholds above which each driver level
// is earned. Bronze is the floor and has no threshold.
type RewardsConfig struct {
	SilverThreshold  int `env:"SILVER_THRESHOLD"`
	GoldThreshold    int `env:"GOLD_THRESHOLD"`
	DiamondThreshold int `env:"DIAMOND_THRESHOLD"`
}

// AuditConfig bounds the audit trail. Entries beyond MaxEntries are evicted
// oldest-first.
type AuditConfig struct {
	MaxEntries int `env:"MAX_ENTRIES"`
}

// LatencyConfig simulates network latency per operation. The reference
// client expects these pauses; tests zero them out.
type LatencyConfig struct {
	Login         time.Duration `env:"LOGIN"`
	SocialLogin   time.Duration `env:"SOCIAL_LOGIN"`
	Register      time.Duration `env:"REGISTER"`
	Recover       time.Duration `env:"RECOVER"`
	ProfileUpdate time.Duration `env:"PROFILE_UPDATE"`
	RideList      time.Duration `env:"RIDE_LIST"`
}

// AdvisoryConfig configures the external safety-advisory model. An empty
// APIKey disables the call entirely and the advisory client serves its
// fixed low-risk fallback.
type AdvisoryConfig struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL"`
	Model   string `env:"MODEL"`
}

// NewDefaultConfig returns a Config populated with sensible defaults. The
// latency figures mirror the delays the reference client was written
// against.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Path: "data/boleia",
		},
		Pricing: PricingConfig{
			QuickPerKm:  20,
			SafePerKm:   25,
			EcoPerKm:    18,
			SharedPerKm: 15,
		},
		Wallet: WalletConfig{
			WelcomeBonus: 500,
		},
		Rewards: RewardsConfig{
			SilverThreshold:  500,
			GoldThreshold:    1000,
			DiamondThreshold: 2000,
		},
		Audit: AuditConfig{
			MaxEntries: 100,
		},
		Latency: LatencyConfig{
			Login:         600 * time.Millisecond,
			SocialLogin:   1500 * time.Millisecond,
			Register:      800 * time.Millisecond,
			Recover:       1200 * time.Millisecond,
			ProfileUpdate: 400 * time.Millisecond,
			RideList:      300 * time.Millisecond,
		},
		Advisory: AdvisoryConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// Load builds the default configuration and applies BOLEIA_-prefixed
// environment overrides.
func Load() (*Config, error) {
	cfg := NewDefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "BOLEIA_"}); err != nil {
		return nil, err
	}
	return cfg, nil
}
