package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfigFromEnv_DefaultValues(t *testing.T) {
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadServerConfigFromEnv()
	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadServerConfigFromEnv_CustomValues(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SERVER_WRITE_TIMEOUT", "3m")
	t.Setenv("SERVER_IDLE_TIMEOUT", "300s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vengcup.example, https://admin.vengcup.example")

	cfg := LoadServerConfigFromEnv()
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Minute, cfg.WriteTimeout)
	assert.Equal(t, 300*time.Second, cfg.IdleTimeout)
	assert.Equal(t, []string{"https://vengcup.example", "https://admin.vengcup.example"}, cfg.AllowedOrigins)
}

func TestServerConfig_GetAddress(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{name: "port only with colon", config: ServerConfig{Port: ":8080"}, expected: ":8080"},
		{name: "port only without colon", config: ServerConfig{Port: "8080"}, expected: ":8080"},
		{name: "host and port", config: ServerConfig{Host: "localhost", Port: "8080"}, expected: "localhost:8080"},
		{name: "host and port with colon", config: ServerConfig{Host: "127.0.0.1", Port: ":9090"}, expected: "127.0.0.1:9090"},
		{name: "ipv6 host", config: ServerConfig{Host: "::1", Port: "8080"}, expected: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetAddress())
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr string
	}{
		{name: "zero read timeout", mutate: func(c *ServerConfig) { c.ReadTimeout = 0 }, wantErr: "ReadTimeout"},
		{name: "negative write timeout", mutate: func(c *ServerConfig) { c.WriteTimeout = -time.Second }, wantErr: "WriteTimeout"},
		{name: "zero idle timeout", mutate: func(c *ServerConfig) { c.IdleTimeout = 0 }, wantErr: "IdleTimeout"},
		{name: "zero shutdown timeout", mutate: func(c *ServerConfig) { c.ShutdownTimeout = 0 }, wantErr: "ShutdownTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
