package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/shopper")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TaxRate != 0.10 {
		t.Fatalf("unexpected tax rate %v", cfg.TaxRate)
	}
	if cfg.ShippingFee != 50.0 {
		t.Fatalf("unexpected shipping fee %v", cfg.ShippingFee)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.NotifyPollInterval != 5*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.NotifyPollInterval)
	}
	if cfg.NotifyBatchSize != 32 || cfg.WorkerPoolSize != 4 {
		t.Fatalf("unexpected worker settings: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/shopper")
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("SHIPPING_FEE", "0")
	t.Setenv("NOTIFY_BATCH_SIZE", "8")
	t.Setenv("WORKER_POOL_SIZE", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TaxRate != 0.18 {
		t.Fatalf("unexpected tax rate %v", cfg.TaxRate)
	}
	if cfg.ShippingFee != 0 {
		t.Fatalf("expected free shipping override, got %v", cfg.ShippingFee)
	}
	if cfg.NotifyBatchSize != 8 || cfg.WorkerPoolSize != 2 {
		t.Fatalf("unexpected worker settings: %+v", cfg)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadRejectsNegativeRates(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/shopper")
	t.Setenv("TAX_RATE", "-0.1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative tax rate")
	}

	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("SHIPPING_FEE", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative shipping fee")
	}
}

func TestLoadFallsBackOnBrokenWorkerSettings(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/shopper")
	t.Setenv("NOTIFY_BATCH_SIZE", "0")
	t.Setenv("WORKER_POOL_SIZE", "-1")
	t.Setenv("NOTIFY_POLL_INTERVAL", "0s")
	t.Setenv("SHUTDOWN_TIMEOUT", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.NotifyBatchSize != 32 || cfg.WorkerPoolSize != 4 {
		t.Fatalf("expected worker fallbacks, got %+v", cfg)
	}
	if cfg.NotifyPollInterval != 5*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected interval fallbacks, got %+v", cfg)
	}
}
