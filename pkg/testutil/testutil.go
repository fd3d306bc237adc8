package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/spf13/afero"
)

// Dirs are the relocated reskin directories of a test
type Dirs struct {
	Themes string
	Icons  string
	Fonts  string
	Config string
	Cache  string
	Data   string
}

// IsolatePaths points every reskin directory at a fixed location under
// /home/u and sends the log file to a temporary directory. The config
// directory is a real temporary directory because configuration files are
// read from the OS filesystem.
func IsolatePaths(t *testing.T) Dirs {
	t.Helper()

	d := Dirs{
		Themes: "/home/u/.themes",
		Icons:  "/home/u/.local/share/icons",
		Fonts:  "/home/u/.local/share/fonts",
		Config: t.TempDir(),
		Cache:  "/home/u/.cache/reskin",
		Data:   "/home/u/.local/share/reskin",
	}
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(paths.EnvThemesDir, d.Themes)
	t.Setenv(paths.EnvIconsDir, d.Icons)
	t.Setenv(paths.EnvFontsDir, d.Fonts)
	t.Setenv(paths.EnvConfigDir, d.Config)
	t.Setenv(paths.EnvCacheDir, d.Cache)
	t.Setenv(paths.EnvDataDir, d.Data)
	return d
}

// WriteFiles creates each file with its parents. Keys are paths.
func WriteFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, body := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := afero.WriteFile(fs, path, []byte(body), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// ReadFile returns the content of path or fails the test
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// NordTheme is a theme with a manifest file, a GTK theme, an icon theme
// descriptor and a font, rooted at dir
func NordTheme(dir string) map[string]string {
	return map[string]string{
		filepath.Join(dir, "reskin.yaml"):      "name: Nord\nauthor: arctic\ndescription: cool blue\nversion: \"2.0\"\n",
		filepath.Join(dir, "gtk-3.0/gtk.css"):  "body{}",
		filepath.Join(dir, "index.theme"):      "[Icon Theme]\nName=Nord\n",
		filepath.Join(dir, "Nord-Regular.ttf"): "font",
	}
}
