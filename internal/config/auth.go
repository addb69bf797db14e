package config

import (
	"fmt"
	"time"
)

// AuthConfig holds dashboard session token settings.
type AuthConfig struct {
	// Secret signs session tokens (HS256).
	Secret string
	// TTL is how long an issued session stays valid.
	TTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret: GetEnv("AUTH_SECRET", ""),
		TTL:    GetEnvDuration("AUTH_TTL", 12*time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("AUTH_SECRET must be at least 16 characters")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("TTL must be greater than 0")
	}
	return nil
}
