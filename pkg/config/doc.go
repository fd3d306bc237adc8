// Package config loads reskin's configuration.
//
// Sources are layered in order, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user's config.toml under $XDG_CONFIG_HOME/reskin
//  3. RESKIN_ environment variables, with a double underscore separating
//     sections from keys (RESKIN_RECENT__MAX_ENTRIES=8,
//     RESKIN_INSTALL__FONT_EXTENSIONS=ttf,otf)
//
// The package also reads theme manifests written by hand as
// reskin.yaml, reskin.toml or reskin.json.
package config
