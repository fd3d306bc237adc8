// Package paths provides centralized path handling for reskin.
//
// It resolves the destination roots themes are installed into and the
// locations of reskin's own configuration, cache and data files.
//
// # Environment Variables
//
//   - RESKIN_THEMES_DIR: window-manager/shell theme root (default: ~/.themes)
//   - RESKIN_ICONS_DIR: icon and cursor root (default: $XDG_DATA_HOME/icons)
//   - RESKIN_FONTS_DIR: font root (default: $XDG_DATA_HOME/fonts)
//   - RESKIN_CONFIG_DIR: config directory (default: $XDG_CONFIG_HOME/reskin)
//   - RESKIN_CACHE_DIR: cache directory, holds the staging area (default: $XDG_CACHE_HOME/reskin)
//   - RESKIN_DATA_DIR: data directory, holds downloads (default: $XDG_DATA_HOME/reskin)
//
// # Directory Layout
//
//   - ~/.themes/<name>: GTK, shell and window-manager themes
//   - $XDG_DATA_HOME/icons/<name>: icon sets and cursor sets
//   - $XDG_DATA_HOME/fonts/<name>: font files
//   - $XDG_CONFIG_HOME/reskin/recent.json: recent-installs ledger
//   - $XDG_CACHE_HOME/reskin/staging/<name>: extraction root for bundles
package paths
