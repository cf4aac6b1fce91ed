package config

import (
	"strings"
	"testing"
)

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			JWTSecret:  strings.Repeat("s", 32),
			BcryptCost: 10,
		},
		Stats: StatsConfig{TopLocationsLimit: 5, DailyAverageDays: 30},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "too-short"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Fatalf("expected jwt_secret error, got %v", err)
	}
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.BcryptCost = 99

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "bcrypt_cost") {
		t.Fatalf("expected bcrypt_cost error, got %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "server.port") {
		t.Fatalf("expected server.port error, got %v", err)
	}
}

func TestValidate_StatsLimits(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Stats.TopLocationsLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for top_locations_limit = 0")
	}

	cfg = validConfig()
	cfg.Stats.DailyAverageDays = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative daily_average_days")
	}
}
