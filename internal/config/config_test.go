package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort == "" {
		t.Fatalf("expected server port to be set")
	}
	if cfg.TaxRate != 0.0825 {
		t.Errorf("tax rate = %v, want default 0.0825", cfg.TaxRate)
	}
	if cfg.CacheTTL <= 0 {
		t.Errorf("cache TTL = %d, want positive default", cfg.CacheTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL", "60")

	cfg := Load()

	if cfg.TaxRate != 0.10 {
		t.Errorf("tax rate = %v, want 0.10", cfg.TaxRate)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("server port = %s, want 9090", cfg.ServerPort)
	}
	if cfg.CacheTTL != 60 {
		t.Errorf("cache TTL = %d, want 60", cfg.CacheTTL)
	}
}

func TestGetEnvAsFloatIgnoresGarbage(t *testing.T) {
	t.Setenv("TAX_RATE", "not-a-number")

	cfg := Load()
	if cfg.TaxRate != 0.0825 {
		t.Errorf("tax rate = %v, want fallback 0.0825", cfg.TaxRate)
	}
}
