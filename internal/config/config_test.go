package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    time.Minute,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Backend: BackendConfig{
			URL:         "https://script.example.com/exec",
			MaxAttempts: 3,
			RetryDelay:  time.Second,
			Timeout:     30 * time.Second,
		},
		Auth: AuthConfig{
			Secret: "0123456789abcdef0123",
			TTL:    time.Hour,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "GIN_MODE", "BACKEND_URL", "BACKEND_MAX_ATTEMPTS"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "http://localhost:8081/exec", cfg.Backend.URL)
	assert.Equal(t, 3, cfg.Backend.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Backend.RetryDelay)
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("BACKEND_URL", "https://script.google.com/macros/s/abc/exec")
	t.Setenv("BACKEND_RETRY_DELAY", "250ms")

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "https://script.google.com/macros/s/abc/exec", cfg.Backend.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.Backend.RetryDelay)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid server config", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: "server config validation failed"},
		{name: "invalid logger config", mutate: func(c *Config) { c.Logger.Level = "invalid" }, wantErr: "logger config validation failed"},
		{name: "relative backend url", mutate: func(c *Config) { c.Backend.URL = "/exec" }, wantErr: "backend config validation failed"},
		{name: "zero attempts", mutate: func(c *Config) { c.Backend.MaxAttempts = 0 }, wantErr: "backend config validation failed"},
		{name: "short auth secret", mutate: func(c *Config) { c.Auth.Secret = "short" }, wantErr: "auth config validation failed"},
		{name: "invalid gin mode", mutate: func(c *Config) { c.GinMode = "invalid" }, wantErr: "invalid GIN_MODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidGinModes(t *testing.T) {
	for _, mode := range []string{"debug", "release", "test"} {
		cfg := validConfig()
		cfg.GinMode = mode
		assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
	}
}

func TestBackendConfig_Validate(t *testing.T) {
	cfg := validConfig().Backend
	assert.NoError(t, cfg.Validate())

	cfg.RetryDelay = 0
	assert.NoError(t, cfg.Validate(), "zero delay retries immediately")

	cfg.RetryDelay = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = validConfig().Backend
	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestAuthConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Auth.Validate())
	assert.Error(t, AuthConfig{Secret: "", TTL: time.Hour}.Validate())
	assert.Error(t, AuthConfig{Secret: "0123456789abcdef", TTL: 0}.Validate())
}

func TestLoadSheetConfigFromEnv(t *testing.T) {
	t.Setenv("SHEET_PORT", "")
	t.Setenv("PHOTO_BASE_URL", "https://sheet.example.com/")
	t.Setenv("SEED_ADMIN_EMAIL", "root@veng.io")
	t.Setenv("SEED_ADMIN_PASSWORD", "changeme")
	t.Setenv("SEED_ADMIN_NAME", "")

	cfg := LoadSheetConfigFromEnv()
	assert.Equal(t, ":8081", cfg.Port)
	assert.Equal(t, "https://sheet.example.com", cfg.PhotoBaseURL)
	assert.Equal(t, "Admin", cfg.SeedAdminName)
	assert.NoError(t, cfg.Validate())
}

func TestSheetConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SheetConfig
		wantErr bool
	}{
		{name: "valid", cfg: SheetConfig{PhotoBaseURL: "http://localhost:8081"}},
		{name: "relative photo url", cfg: SheetConfig{PhotoBaseURL: "/photos"}, wantErr: true},
		{name: "seed email without password", cfg: SheetConfig{PhotoBaseURL: "http://localhost:8081", SeedAdminEmail: "a@b.c"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
