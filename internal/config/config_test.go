package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tasks_test")
	t.Setenv("APP_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("API_RATE_LIMIT", "")
	t.Setenv("API_RATE_WINDOW_SECONDS", "")

	cfg := Load()

	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.APIRateLimit != 120 {
		t.Errorf("APIRateLimit = %d, want 120", cfg.APIRateLimit)
	}
	if cfg.APIRateWindow != time.Minute {
		t.Errorf("APIRateWindow = %v, want 1m", cfg.APIRateWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tasks_test")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("API_RATE_LIMIT", "5")
	t.Setenv("API_RATE_WINDOW_SECONDS", "30")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	if cfg.AppPort != "9999" {
		t.Errorf("AppPort = %q, want 9999", cfg.AppPort)
	}
	if cfg.APIRateLimit != 5 {
		t.Errorf("APIRateLimit = %d, want 5", cfg.APIRateLimit)
	}
	if cfg.APIRateWindow != 30*time.Second {
		t.Errorf("APIRateWindow = %v, want 30s", cfg.APIRateWindow)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	if !cfg.LogJSON {
		t.Error("LogJSON should be true")
	}
}

func TestEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := envInt("SOME_INT", 42); got != 42 {
		t.Errorf("envInt = %d, want fallback 42", got)
	}
}
