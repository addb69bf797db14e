package config

import (
	"fmt"
	"net/url"
	"strings"
)

// SheetConfig holds settings of the reference backend (cmd/sheetd).
type SheetConfig struct {
	// Port is the listen address, ":8081" by default so the portal's default
	// BACKEND_URL reaches it.
	Port string
	// PhotoBaseURL prefixes stored photo URLs, e.g. "http://localhost:8081".
	PhotoBaseURL string
	// SeedAdminEmail creates the first dashboard account on an empty store.
	SeedAdminEmail string
	// SeedAdminPassword is the first account's password; it must be changed
	// on first login.
	SeedAdminPassword string
	// SeedAdminName is the first account's display name.
	SeedAdminName string
}

// LoadSheetConfigFromEnv loads reference backend configuration from environment variables.
func LoadSheetConfigFromEnv() SheetConfig {
	return SheetConfig{
		Port:              GetEnv("SHEET_PORT", ":8081"),
		PhotoBaseURL:      strings.TrimRight(GetEnv("PHOTO_BASE_URL", "http://localhost:8081"), "/"),
		SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD", ""),
		SeedAdminName:     GetEnv("SEED_ADMIN_NAME", "Admin"),
	}
}

// Validate validates reference backend configuration.
func (c SheetConfig) Validate() error {
	u, err := url.Parse(c.PhotoBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid PHOTO_BASE_URL: %q", c.PhotoBaseURL)
	}
	if (c.SeedAdminEmail == "") != (c.SeedAdminPassword == "") {
		return fmt.Errorf("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together")
	}
	return nil
}
