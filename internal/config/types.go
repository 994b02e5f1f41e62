package config

// Theme is the persisted page theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level tripguide configuration, corresponding to .tripguide.yml.
type Config struct {
	// DataSource is the guide document: an http(s) URL or a local file path.
	DataSource string `yaml:"data_source" koanf:"data_source"`
	Title      string `yaml:"title" koanf:"title"`
	SiteDir    string `yaml:"site_dir" koanf:"site_dir"`
	DBPath     string `yaml:"db_path" koanf:"db_path"`
	Port       int    `yaml:"port" koanf:"port"`
	// CacheVersion names the live offline cache generation; bumping it
	// invalidates everything cached under previous versions.
	CacheVersion string   `yaml:"cache_version" koanf:"cache_version"`
	RuntimeCache []string `yaml:"runtime_cache" koanf:"runtime_cache"`
	DefaultTheme Theme    `yaml:"default_theme" koanf:"default_theme"`
	AllowAllCORS bool     `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}
