// Package paths provides centralized path handling for reskin.
// It implements XDG Base Directory specification compliance and
// resolves the well-known theme destination directories.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvThemesDir overrides the window-manager/shell theme root (~/.themes)
	EnvThemesDir = "RESKIN_THEMES_DIR"

	// EnvIconsDir overrides the icon and cursor root ($XDG_DATA_HOME/icons)
	EnvIconsDir = "RESKIN_ICONS_DIR"

	// EnvFontsDir overrides the font root ($XDG_DATA_HOME/fonts)
	EnvFontsDir = "RESKIN_FONTS_DIR"

	// EnvConfigDir overrides the XDG config directory for reskin
	EnvConfigDir = "RESKIN_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for reskin
	EnvCacheDir = "RESKIN_CACHE_DIR"

	// EnvDataDir overrides the XDG data directory for reskin
	EnvDataDir = "RESKIN_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed directory and file names. The destination names follow the
// freedesktop conventions and are not user-configurable; use the
// environment overrides or Options to relocate the roots themselves.
const (
	// AppDirName is the directory name for reskin-specific files
	AppDirName = "reskin"

	// ThemesDirName is the per-user GTK/window-manager theme directory under $HOME
	ThemesDirName = ".themes"

	// IconsDirName is the icon/cursor directory under the XDG data home
	IconsDirName = "icons"

	// FontsDirName is the font directory under the XDG data home
	FontsDirName = "fonts"

	// RecentFileName is the recent-installs ledger
	RecentFileName = "recent.json"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// StagingDirName is the subdirectory of the cache dir bundles are unpacked into
	StagingDirName = "staging"

	// DownloadsDirName is the subdirectory of the data dir catalog downloads are saved into
	DownloadsDirName = "downloads"

	// BundleExt is the file extension of theme bundles
	BundleExt = ".reskin"
)

// Paths provides centralized path management for reskin
type Paths interface {
	HomeDir() string
	ThemesDir() string
	IconsDir() string
	CursorsDir() string
	FontsDir() string
	ConfigDir() string
	ConfigFile() string
	RecentFile() string
	CacheDir() string
	StagingDir() string
	DataDir() string
	DownloadsDir() string
	DownloadPath(themeName string) string
}

// Options carries explicit roots, typically from configuration. The
// RESKIN_*_DIR environment overrides take precedence; empty fields fall
// back to the XDG defaults.
type Options struct {
	ThemesDir string
	IconsDir  string
	FontsDir  string
}

type paths struct {
	home      string
	themesDir string
	iconsDir  string
	fontsDir  string
	configDir string
	cacheDir  string
	dataDir   string
}

// New creates a Paths instance. Environment overrides win over opts,
// which win over the XDG defaults.
func New(opts Options) Paths {
	p := &paths{home: homeDir()}

	p.themesDir = resolve(EnvThemesDir, opts.ThemesDir, filepath.Join(p.home, ThemesDirName))
	p.iconsDir = resolve(EnvIconsDir, opts.IconsDir, filepath.Join(xdg.DataHome, IconsDirName))
	p.fontsDir = resolve(EnvFontsDir, opts.FontsDir, filepath.Join(xdg.DataHome, FontsDirName))
	p.configDir = resolve(EnvConfigDir, "", filepath.Join(xdg.ConfigHome, AppDirName))
	p.cacheDir = resolve(EnvCacheDir, "", filepath.Join(xdg.CacheHome, AppDirName))
	p.dataDir = resolve(EnvDataDir, "", filepath.Join(xdg.DataHome, AppDirName))

	return p
}

func (p *paths) HomeDir() string   { return p.home }
func (p *paths) ThemesDir() string { return p.themesDir }
func (p *paths) IconsDir() string  { return p.iconsDir }

// CursorsDir shares the icon root; cursor themes live next to icon themes.
func (p *paths) CursorsDir() string { return p.iconsDir }

func (p *paths) FontsDir() string   { return p.fontsDir }
func (p *paths) ConfigDir() string  { return p.configDir }
func (p *paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }
func (p *paths) RecentFile() string { return filepath.Join(p.configDir, RecentFileName) }
func (p *paths) CacheDir() string   { return p.cacheDir }
func (p *paths) StagingDir() string { return filepath.Join(p.cacheDir, StagingDirName) }
func (p *paths) DataDir() string    { return p.dataDir }

func (p *paths) DownloadsDir() string { return filepath.Join(p.dataDir, DownloadsDirName) }

// DownloadPath returns where a downloaded bundle for themeName is saved
func (p *paths) DownloadPath(themeName string) string {
	return filepath.Join(p.DownloadsDir(), themeName+BundleExt)
}

func resolve(envName, explicit, fallback string) string {
	if v := os.Getenv(envName); v != "" {
		return expandHome(v)
	}
	if explicit != "" {
		return expandHome(explicit)
	}
	return fallback
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return xdg.Home
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}
