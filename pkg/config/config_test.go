package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/reskin/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Install.ThemeMarkers, "gtk-3.0")
	assert.Contains(t, cfg.Install.ThemeMarkers, "plank")
	assert.Len(t, cfg.Install.ThemeMarkers, 9)
	assert.Len(t, cfg.Install.IconMarkers, 15)
	assert.Equal(t, []string{"index.theme"}, cfg.Install.IconFiles)
	assert.Equal(t, []string{"cursors"}, cfg.Install.CursorMarkers)
	assert.Equal(t, []string{"cursor.theme"}, cfg.Install.CursorFiles)
	assert.Equal(t, []string{"ttf", "otf", "woff", "woff2", "eot"}, cfg.Install.FontExtensions)
	assert.Equal(t, 4, cfg.Recent.MaxEntries)
	assert.Equal(t, "themes", cfg.Catalog.Bucket)
	assert.False(t, cfg.Apply.Auto)
	assert.True(t, cfg.Apply.SettingsINI)
	assert.False(t, cfg.Catalog.Configured())
}

func TestLoad_UserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[install]
font_extensions = [".TTF", "pcf"]

[recent]
max_entries = 10

[catalog]
endpoint = "https://cloud.example.com/v1/"
project = "p1"
`), 0644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	// lists replace the defaults
	assert.Equal(t, []string{"ttf", "pcf"}, cfg.Install.FontExtensions)
	// untouched sections keep their defaults
	assert.Contains(t, cfg.Install.ThemeMarkers, "gtk-2.0")
	assert.Equal(t, 10, cfg.Recent.MaxEntries)
	assert.Equal(t, "https://cloud.example.com/v1", cfg.Catalog.Endpoint)
	assert.True(t, cfg.Catalog.Configured())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.toml")})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Recent.MaxEntries)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[install\n"), 0644))

	_, err := Load(Options{File: path})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RESKIN_RECENT__MAX_ENTRIES", "7")
	t.Setenv("RESKIN_INSTALL__FONT_EXTENSIONS", "ttf,otc")
	t.Setenv("RESKIN_CATALOG__API_KEY", "secret")
	t.Setenv("RESKIN_THEMES_DIR", "/ignored/by/config")

	cfg, err := Load(Options{Env: true})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Recent.MaxEntries)
	assert.Equal(t, []string{"ttf", "otc"}, cfg.Install.FontExtensions)
	assert.Equal(t, "secret", cfg.Catalog.APIKey)
	assert.Empty(t, cfg.Paths.Themes)
}

func TestLoad_EnvDisabled(t *testing.T) {
	t.Setenv("RESKIN_RECENT__MAX_ENTRIES", "7")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Recent.MaxEntries)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "recent.max_entries", envKey("RESKIN_RECENT__MAX_ENTRIES"))
	assert.Equal(t, "", envKey("RESKIN_THEMES_DIR"))
}

func TestConfig_TOML(t *testing.T) {
	cfg := Default()
	cfg.Catalog.APIKey = "secret"

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
	assert.Equal(t, "secret", cfg.Catalog.APIKey)

	var back Config
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, cfg.Install, back.Install)
	assert.Equal(t, cfg.Recent, back.Recent)
}
