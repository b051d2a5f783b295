package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from the environment.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	AuthSecret         string
	TokenTTL           time.Duration
	TaxRate            float64
	ShippingFee        float64
	NotifyPollInterval time.Duration
	NotifyBatchSize    int
	WorkerPoolSize     int
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("RUN_ADDRESS", ":8080")
	v.SetDefault("DATABASE_URI", "")
	v.SetDefault("AUTH_SECRET", "change-me-in-production")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("TAX_RATE", 0.10)
	v.SetDefault("SHIPPING_FEE", 50.0)
	v.SetDefault("NOTIFY_POLL_INTERVAL", "5s")
	v.SetDefault("NOTIFY_BATCH_SIZE", 32)
	v.SetDefault("WORKER_POOL_SIZE", 4)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	cfg := &Config{
		RunAddress:         v.GetString("RUN_ADDRESS"),
		DatabaseURI:        v.GetString("DATABASE_URI"),
		AuthSecret:         v.GetString("AUTH_SECRET"),
		TokenTTL:           v.GetDuration("TOKEN_TTL"),
		TaxRate:            v.GetFloat64("TAX_RATE"),
		ShippingFee:        v.GetFloat64("SHIPPING_FEE"),
		NotifyPollInterval: v.GetDuration("NOTIFY_POLL_INTERVAL"),
		NotifyBatchSize:    v.GetInt("NOTIFY_BATCH_SIZE"),
		WorkerPoolSize:     v.GetInt("WORKER_POOL_SIZE"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.TaxRate < 0 {
		return nil, fmt.Errorf("tax rate must not be negative")
	}
	if cfg.ShippingFee < 0 {
		return nil, fmt.Errorf("shipping fee must not be negative")
	}
	if cfg.NotifyBatchSize <= 0 {
		cfg.NotifyBatchSize = 32
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 4
	}
	if cfg.NotifyPollInterval <= 0 {
		cfg.NotifyPollInterval = 5 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}
