package config

import (
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Fatalf("secret not carried: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL() != 2*time.Hour {
		t.Fatalf("default token ttl = %v, want 2h", cfg.Auth.TokenTTL())
	}
	if !cfg.Providers.Dart.MockMode {
		t.Fatal("providers should default to mock mode")
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("default port = %q", cfg.App.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "30")
	t.Setenv("DART_MOCK_MODE", "false")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.TokenTTL() != 30*time.Minute {
		t.Fatalf("token ttl = %v, want 30m", cfg.Auth.TokenTTL())
	}
	if cfg.Providers.Dart.MockMode {
		t.Fatal("mock mode override ignored")
	}
	if cfg.App.Addr() != "0.0.0.0:9090" {
		t.Fatalf("addr = %q", cfg.App.Addr())
	}
}
