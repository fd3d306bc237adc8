package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	fs     afero.Fs
	runner *executor.Fake
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	testutil.IsolatePaths(t)

	h := &harness{fs: filesystem.NewMemory(), runner: executor.NewFake()}
	testutil.WriteFiles(t, h.fs, map[string]string{
		"/src/Nord/reskin.yaml":      "name: Nord\nauthor: arctic\n",
		"/src/Nord/gtk-3.0/gtk.css":  "body{}",
		"/src/Nord/cursors/left_ptr": "cursor",
		"/src/Nord/Nord-Regular.ttf": "font",
		"/dl/bad.reskin":             "not a bundle",
	})
	return h
}

// exec runs one command line against a fresh app sharing the harness
// filesystem, like separate invocations of the binary
func (h *harness) exec(args ...string) (code int, stdout, stderr string) {
	a := newApp(h.fs, h.runner)
	a.configure = func(env *core.Env) {
		env.Activator = apply.New(h.runner, apply.WithSettleDelay(0))
	}
	var out, errOut bytes.Buffer
	code = run(a, append([]string{"--format", "text"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestPackInspectInstall(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.exec("pack", "/src/Nord")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Packed Nord\n")
	assert.Contains(t, out, "Output:   /src/Nord.reskin")

	code, out, errOut = h.exec("inspect", "/src/Nord.reskin")
	require.Equal(t, 0, code, errOut)
	assert.Regexp(t, `Author:\s+arctic`, out)
	assert.Regexp(t, `Checksum:\s+sha256:[0-9a-f]{64}`, out)
	assert.Contains(t, out, "Components:\n  - GTK/Window Manager theme\n  - Cursors\n  - Fonts\n")

	code, out, errOut = h.exec("install", "/src/Nord.reskin")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Theme 'Nord' installed successfully!\nComponents: GTK/Window Manager theme, Cursors, Fonts\n")
	assert.True(t, filesystem.Exists(h.fs, "/home/u/.themes/Nord/gtk-3.0/gtk.css"))
	assert.True(t, filesystem.Exists(h.fs, "/home/u/.local/share/icons/Nord/cursors/left_ptr"))
	assert.True(t, filesystem.Exists(h.fs, "/home/u/.local/share/fonts/Nord/Nord-Regular.ttf"))
	assert.Empty(t, h.runner.Calls())

	code, out, _ = h.exec("recent")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Nord  arctic")
}

func TestInstallDirectoryWithApply(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.exec("install", "/src/Nord", "--apply")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Installed to:\n")
	assert.Contains(t, out, "Applied:\n  - GTK theme\n")
	assert.Contains(t, h.runner.Calls(), "gsettings set org.gnome.desktop.interface cursor-theme Nord")
}

func TestInstallInvalidBundle(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.exec("install", "/dl/bad.reskin")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: invalid bundle: [BAD_MAGIC]")
	assert.False(t, filesystem.Exists(h.fs, "/home/u/.themes"))
}

func TestInstallPick(t *testing.T) {
	h := newHarness(t)
	code, _, errOut := h.exec("pack", "/src/Nord", "-o", "/dl/Nord.reskin")
	require.Equal(t, 0, code, errOut)

	h.runner.On("zenity --file-selection --title=Select a theme bundle --file-filter=Reskin Files (*.reskin) | *.reskin",
		executor.Output{Stdout: []byte("/dl/Nord.reskin\n")})

	code, out, errOut := h.exec("install", "--pick")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Theme 'Nord' installed successfully!")
}

func TestInstallPickCancelled(t *testing.T) {
	h := newHarness(t)
	h.runner.On("zenity --file-selection --directory --title=Select a theme folder", executor.Output{ExitCode: 1})

	code, out, _ := h.exec("install", "--pick-folder")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Nothing selected\n", out)
}

func TestInstallRequiresTarget(t *testing.T) {
	h := newHarness(t)

	code, _, errOut := h.exec("install")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "[INVALID_INPUT]")
}

func TestApply(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.exec("apply", "Nord", "--components", "icons,cursors")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Applied:\n  - Icon theme\n  - Cursor theme\n")

	code, _, errOut = h.exec("apply", "Nord", "--components", "wallpaper")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown component "wallpaper"`)
}

func TestExtractAndInfo(t *testing.T) {
	h := newHarness(t)
	code, _, errOut := h.exec("pack", "/src/Nord")
	require.Equal(t, 0, code, errOut)

	code, out, errOut := h.exec("extract", "/src/Nord.reskin", "/tmp/nord")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Directory: /tmp/nord")
	assert.True(t, filesystem.Exists(h.fs, "/tmp/nord/reskin.json"))

	code, out, errOut = h.exec("info", "/src/Nord.reskin")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Nord\n  Author: arctic\n")
}

func TestCatalogNotConfigured(t *testing.T) {
	h := newHarness(t)

	code, _, errOut := h.exec("catalog", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "[CATALOG]")
}

func TestConfig(t *testing.T) {
	h := newHarness(t)
	t.Setenv("RESKIN_CATALOG__API_KEY", "secret")
	t.Setenv("RESKIN_RECENT__MAX_ENTRIES", "9")

	code, out, errOut := h.exec("config")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "[catalog]")
	assert.Contains(t, out, "max_entries = 9")
	assert.NotContains(t, out, "secret")

	code, out, _ = h.exec("config", "--defaults")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "# reskin defaults.")
}

func TestJSONErrors(t *testing.T) {
	h := newHarness(t)
	a := newApp(h.fs, h.runner)
	var out, errOut bytes.Buffer

	code := run(a, []string{"--format", "json", "inspect", "/dl/missing.reskin"}, &out, &errOut)
	assert.Equal(t, 1, code)

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &obj))
	assert.Equal(t, "NOT_FOUND", obj["code"])
}

func TestVersionAndHelp(t *testing.T) {
	h := newHarness(t)

	code, out, _ := h.exec("version")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "reskin version dev")

	code, out, _ = h.exec("help", "topics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "bundle-format")
	assert.Contains(t, out, "--format")
}
