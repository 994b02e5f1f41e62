package config

import "github.com/parsa1021/tripguide/internal/cache"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataSource:   "data.json",
		Title:        "Travel Guide",
		SiteDir:      "site",
		DBPath:       "tripguide.db",
		Port:         8080,
		CacheVersion: "v1",
		RuntimeCache: cache.DefaultAllowPatterns(),
		DefaultTheme: ThemeLight,
	}
}
