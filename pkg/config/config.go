package config

import (
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Paths holds user overrides for the destination roots
type Paths struct {
	Themes string `koanf:"themes" toml:"themes"`
	Icons  string `koanf:"icons" toml:"icons"`
	Fonts  string `koanf:"fonts" toml:"fonts"`
}

// Install holds the classifier marker sets
type Install struct {
	ThemeMarkers   []string `koanf:"theme_markers" toml:"theme_markers"`
	IconMarkers    []string `koanf:"icon_markers" toml:"icon_markers"`
	IconFiles      []string `koanf:"icon_files" toml:"icon_files"`
	CursorMarkers  []string `koanf:"cursor_markers" toml:"cursor_markers"`
	CursorFiles    []string `koanf:"cursor_files" toml:"cursor_files"`
	FontExtensions []string `koanf:"font_extensions" toml:"font_extensions"`
	PackExclude    []string `koanf:"pack_exclude" toml:"pack_exclude"`
}

// Recent configures the recent-install ledger
type Recent struct {
	MaxEntries int `koanf:"max_entries" toml:"max_entries"`
}

// Apply configures theme activation
type Apply struct {
	Auto        bool `koanf:"auto" toml:"auto"`
	SettingsINI bool `koanf:"settings_ini" toml:"settings_ini"`
}

// Catalog configures the remote theme catalog
type Catalog struct {
	Endpoint       string `koanf:"endpoint" toml:"endpoint"`
	Project        string `koanf:"project" toml:"project"`
	APIKey         string `koanf:"api_key" toml:"api_key"`
	Database       string `koanf:"database" toml:"database"`
	Collection     string `koanf:"collection" toml:"collection"`
	Bucket         string `koanf:"bucket" toml:"bucket"`
	TimeoutSeconds int    `koanf:"timeout_seconds" toml:"timeout_seconds"`
	Retries        int    `koanf:"retries" toml:"retries"`
}

// Timeout returns the request timeout as a duration
func (c Catalog) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Configured reports whether enough is set to talk to the catalog
func (c Catalog) Configured() bool {
	return c.Endpoint != "" && c.Project != ""
}

// Config is the main configuration structure
type Config struct {
	Paths   Paths   `koanf:"paths" toml:"paths"`
	Install Install `koanf:"install" toml:"install"`
	Recent  Recent  `koanf:"recent" toml:"recent"`
	Apply   Apply   `koanf:"apply" toml:"apply"`
	Catalog Catalog `koanf:"catalog" toml:"catalog"`
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := load(Options{})
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a
		// build defect.
		panic("config: invalid embedded defaults: " + err.Error())
	}
	return cfg
}

// TOML renders the effective configuration. The API key is masked.
func (c *Config) TOML() ([]byte, error) {
	out := *c
	if out.Catalog.APIKey != "" {
		out.Catalog.APIKey = "********"
	}
	return toml.Marshal(out)
}
