// Package config loads and saves the dashboard configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration
type Config struct {
	// Catalog source
	Catalog CatalogConfig `json:"catalog"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// CatalogConfig holds remote catalog source settings
type CatalogConfig struct {
	BaseURL          string `json:"base_url"`            // Override for testing against a local stub
	ListLimit        int    `json:"list_limit"`          // Max products fetched from the list endpoint
	RequestTimeoutMs int    `json:"request_timeout_ms"`  // Transport timeout per request
}

// UIConfig holds UI preferences
type UIConfig struct {
	PageSize              int    `json:"page_size"`                // Products per page
	ListSkeletonDelayMs   int    `json:"list_skeleton_delay_ms"`   // Delay before list skeletons appear
	DetailSkeletonDelayMs int    `json:"detail_skeleton_delay_ms"` // Delay before detail skeletons appear
	Theme                 string `json:"theme"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:          "https://dummyjson.com",
			ListLimit:        200,
			RequestTimeoutMs: 15000,
		},
		UI: UIConfig{
			PageSize:              10,
			ListSkeletonDelayMs:   300, // Skeletons only after a slight delay to avoid flicker
			DetailSkeletonDelayMs: 500,
			Theme:                 "dark",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dq-dashboard", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.fillDefaults()

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fillDefaults replaces zero values with defaults so a hand-edited
// config with missing fields still works.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = def.Catalog.BaseURL
	}
	if c.Catalog.ListLimit <= 0 {
		c.Catalog.ListLimit = def.Catalog.ListLimit
	}
	if c.Catalog.RequestTimeoutMs <= 0 {
		c.Catalog.RequestTimeoutMs = def.Catalog.RequestTimeoutMs
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = def.UI.PageSize
	}
	if c.UI.ListSkeletonDelayMs <= 0 {
		c.UI.ListSkeletonDelayMs = def.UI.ListSkeletonDelayMs
	}
	if c.UI.DetailSkeletonDelayMs <= 0 {
		c.UI.DetailSkeletonDelayMs = def.UI.DetailSkeletonDelayMs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// RequestTimeout returns the transport timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Catalog.RequestTimeoutMs) * time.Millisecond
}

// ListSkeletonDelay returns the list skeleton delay as a duration.
func (c *Config) ListSkeletonDelay() time.Duration {
	return time.Duration(c.UI.ListSkeletonDelayMs) * time.Millisecond
}

// DetailSkeletonDelay returns the detail skeleton delay as a duration.
func (c *Config) DetailSkeletonDelay() time.Duration {
	return time.Duration(c.UI.DetailSkeletonDelayMs) * time.Millisecond
}
