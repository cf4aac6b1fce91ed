package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid TCP port (got %d)", c.Server.Port)
	}

	if c.Stats.TopLocationsLimit <= 0 {
		return fmt.Errorf("stats.top_locations_limit must be > 0 (got %d)", c.Stats.TopLocationsLimit)
	}
	if c.Stats.DailyAverageDays <= 0 {
		return fmt.Errorf("stats.daily_average_days must be > 0 (got %d)", c.Stats.DailyAverageDays)
	}

	return nil
}
