package config

import (
	"fmt"
	"net/url"
	"time"
)

// BackendConfig describes the remote spreadsheet action endpoint.
type BackendConfig struct {
	// URL is the single POST endpoint every action is sent to.
	URL string
	// MaxAttempts counts the initial try plus retries.
	MaxAttempts int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration
	// Timeout bounds a single attempt.
	Timeout time.Duration
}

// LoadBackendConfigFromEnv loads backend configuration from environment variables.
func LoadBackendConfigFromEnv() BackendConfig {
	return BackendConfig{
		URL:         GetEnv("BACKEND_URL", "http://localhost:8081/exec"),
		MaxAttempts: GetEnvInt("BACKEND_MAX_ATTEMPTS", 3),
		RetryDelay:  GetEnvDuration("BACKEND_RETRY_DELAY", 1*time.Second),
		Timeout:     GetEnvDuration("BACKEND_TIMEOUT", 30*time.Second),
	}
}

// Validate validates backend configuration.
func (c BackendConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BACKEND_URL: %q", c.URL)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RetryDelay must not be negative")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be greater than 0")
	}
	return nil
}
