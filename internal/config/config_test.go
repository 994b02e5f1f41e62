package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".tripguide.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataSource != "data.json" {
		t.Errorf("DataSource = %q, want data.json", cfg.DataSource)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.CacheVersion != "v1" {
		t.Errorf("CacheVersion = %q, want v1", cfg.CacheVersion)
	}
	if cfg.DefaultTheme != ThemeLight {
		t.Errorf("DefaultTheme = %q, want light", cfg.DefaultTheme)
	}
	if len(cfg.RuntimeCache) == 0 {
		t.Error("RuntimeCache should default to the allow-list patterns")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tripguide.yml")
	content := `data_source: https://example.com/guide.json
title: 성지순례 가이드
port: 9090
cache_version: v3
default_theme: dark
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataSource != "https://example.com/guide.json" {
		t.Errorf("DataSource = %q", cfg.DataSource)
	}
	if cfg.Title != "성지순례 가이드" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.CacheVersion != "v3" {
		t.Errorf("CacheVersion = %q, want v3", cfg.CacheVersion)
	}
	if cfg.DefaultTheme != ThemeDark {
		t.Errorf("DefaultTheme = %q, want dark", cfg.DefaultTheme)
	}
	// Values absent from the file keep their defaults.
	if cfg.SiteDir != "site" {
		t.Errorf("SiteDir = %q, want site", cfg.SiteDir)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tripguide.yml")
	if err := os.WriteFile(path, []byte("port: 9090\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRIPGUIDE_PORT", "7070")
	t.Setenv("TRIPGUIDE_TITLE", "env title")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Port = %d, want env override 7070", cfg.Port)
	}
	if cfg.Title != "env title" {
		t.Errorf("Title = %q, want env override", cfg.Title)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tripguide.yml")

	cfg := DefaultConfig()
	cfg.DataSource = "guide.json"
	cfg.Title = "로마 가이드"
	cfg.Port = 8888
	cfg.DefaultTheme = ThemeDark
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataSource != cfg.DataSource || got.Title != cfg.Title ||
		got.Port != cfg.Port || got.DefaultTheme != cfg.DefaultTheme {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data source", func(c *Config) { c.DataSource = "" }},
		{"empty site dir", func(c *Config) { c.SiteDir = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty cache version", func(c *Config) { c.CacheVersion = "" }},
		{"bad theme", func(c *Config) { c.DefaultTheme = "sepia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
