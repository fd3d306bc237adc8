package testutil

import (
	"os"
	"testing"

	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestIsolatePaths(t *testing.T) {
	d := IsolatePaths(t)

	p := paths.New(paths.Options{})
	assert.Equal(t, d.Themes, p.ThemesDir())
	assert.Equal(t, d.Icons, p.IconsDir())
	assert.Equal(t, d.Fonts, p.FontsDir())
	assert.Equal(t, d.Config, p.ConfigDir())
	assert.DirExists(t, d.Config)
	assert.NotEmpty(t, os.Getenv("XDG_STATE_HOME"))
}

func TestWriteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	WriteFiles(t, fs, NordTheme("/src/Nord"))

	assert.Equal(t, "body{}", ReadFile(t, fs, "/src/Nord/gtk-3.0/gtk.css"))
	assert.Contains(t, ReadFile(t, fs, "/src/Nord/reskin.yaml"), "name: Nord")
}
