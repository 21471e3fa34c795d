package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_API_PREFIX", "AUTH_TOKEN_TTL_HOURS", "POSTGRES_DSN", "AUTH_JWT_SECRET", "REDIS_DB",
		"POSTGRES_RUN_MIGRATIONS", "NOTIFY_CHANNEL", "APP_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.App.APIPrefix != "/api" {
		t.Fatalf("expected /api prefix, got %q", cfg.App.APIPrefix)
	}
	if got := cfg.Auth.TokenTTL(); got != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", got)
	}
	if !cfg.Postgres.RunMigrations {
		t.Fatalf("expected migrations to run by default")
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %q", cfg.App.Addr())
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing DSN to fail validation")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_API_PREFIX", "v1/")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "2")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/medequip")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.App.APIPrefix != "/v1" {
		t.Fatalf("expected normalized prefix /v1, got %q", cfg.App.APIPrefix)
	}
	if got := cfg.Auth.TokenTTL(); got != 2*time.Hour {
		t.Fatalf("expected 2h token ttl, got %s", got)
	}
	if cfg.Postgres.RunMigrations {
		t.Fatalf("expected migrations disabled")
	}
	if cfg.Postgres.MaxConns != 10 {
		t.Fatalf("expected fallback max conns, got %d", cfg.Postgres.MaxConns)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("expected redis db 3, got %d", cfg.Redis.DB)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid REDIS_DB")
	}
}

func TestRequestTimeout(t *testing.T) {
	if got := (AppConfig{RequestTimeoutSeconds: 0}).RequestTimeout(); got != 0 {
		t.Fatalf("expected zero timeout, got %s", got)
	}
	if got := (AppConfig{RequestTimeoutSeconds: 5}).RequestTimeout(); got != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", got)
	}
}
