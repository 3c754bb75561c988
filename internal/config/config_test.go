package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.BaseURL != "https://dummyjson.com" {
		t.Errorf("unexpected base URL: %s", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ListLimit != 200 {
		t.Errorf("list limit = %d, want 200", cfg.Catalog.ListLimit)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("page size = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.ListSkeletonDelay() != 300*time.Millisecond {
		t.Errorf("list skeleton delay = %v, want 300ms", cfg.ListSkeletonDelay())
	}
	if cfg.DetailSkeletonDelay() != 500*time.Millisecond {
		t.Errorf("detail skeleton delay = %v, want 500ms", cfg.DetailSkeletonDelay())
	}
}

func TestFillDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.fillDefaults()

	if cfg.Catalog.BaseURL == "" {
		t.Error("fillDefaults should populate the base URL")
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("page size = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.RequestTimeout() <= 0 {
		t.Error("fillDefaults should populate the request timeout")
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Catalog: CatalogConfig{BaseURL: "http://localhost:8080", ListLimit: 50},
		UI:      UIConfig{PageSize: 25},
	}
	cfg.fillDefaults()

	if cfg.Catalog.BaseURL != "http://localhost:8080" {
		t.Errorf("explicit base URL overwritten: %s", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ListLimit != 50 {
		t.Errorf("explicit list limit overwritten: %d", cfg.Catalog.ListLimit)
	}
	if cfg.UI.PageSize != 25 {
		t.Errorf("explicit page size overwritten: %d", cfg.UI.PageSize)
	}
}
