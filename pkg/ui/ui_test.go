package ui

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/catalog"
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/install"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		err   bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"xml", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.input != "" && tt.input != "Terminal" && tt.input != "plain" {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &TerminalRenderer{}, r)

	r, err = NewRenderer(FormatText, &buf)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)

	r, err = NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	_, err = NewRenderer(Format(42), &buf)
	assert.Error(t, err)
}

func newText(buf *bytes.Buffer, now time.Time) *TextRenderer {
	r := NewText(buf)
	r.now = func() time.Time { return now }
	return r
}

func TestText_Pack(t *testing.T) {
	var buf bytes.Buffer
	err := newText(&buf, time.Now()).RenderResult(&core.PackResult{
		Manifest: types.Manifest{Name: "Nord"},
		Output:   "/src/Nord.reskin",
		Assets:   3,
		Bytes:    1234,
	})
	require.NoError(t, err)

	assert.Equal(t, "Packed Nord\n"+
		"  Output:   /src/Nord.reskin\n"+
		"  Manifest: (generated)\n"+
		"  Assets:   3\n"+
		"  Size:     1.2 kB\n", buf.String())
}

func TestText_Recent(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var buf bytes.Buffer
	r := newText(&buf, now)

	require.NoError(t, r.RenderResult([]types.RecentTheme{
		{Name: "Nord", Author: "arctic", InstalledAt: now.Add(-2 * time.Hour).Unix()},
	}))
	out := buf.String()
	assert.Contains(t, out, "Recent themes\n")
	assert.Contains(t, out, "Name  Author  Installed\n")
	assert.Contains(t, out, "Nord  arctic  2 hours ago\n")

	buf.Reset()
	require.NoError(t, r.RenderResult([]types.RecentTheme{}))
	assert.Equal(t, "Recent themes\nNo themes installed yet\n", buf.String())
}

func TestText_Install(t *testing.T) {
	var buf bytes.Buffer
	res := &core.InstallResult{
		Manifest: types.Manifest{Name: "Nord"},
		Result: &install.Result{
			Name: "Nord",
			Placed: []install.Placement{
				{Component: types.ComponentTheme, Destination: "/themes/Nord"},
				{Component: types.ComponentIcons, Destination: "/icons/Nord"},
			},
		},
		Activation:    &apply.Report{Warnings: []string{"GTK theme failed: no dbus"}},
		ActivationErr: apply.ErrNothingApplied,
		Warnings:      []string{"recent installs not updated: disk full"},
	}
	require.NoError(t, newText(&buf, time.Now()).RenderResult(res))

	out := buf.String()
	assert.Contains(t, out, "Theme 'Nord' installed successfully!\nComponents: GTK/Window Manager theme, Icons\n")
	assert.Contains(t, out, "Installed to:\n  - GTK/Window Manager theme: /themes/Nord\n  - Icons: /icons/Nord\n")
	assert.Contains(t, out, "Failed to auto-apply:\n")
	assert.Contains(t, out, "Activation warnings:\n  - GTK theme failed: no dbus\n")
	assert.Contains(t, out, "Warnings:\n  - recent installs not updated: disk full\n")
}

func TestText_Inspect(t *testing.T) {
	var buf bytes.Buffer
	res := &core.InspectResult{
		Path:     "/dl/Nord.reskin",
		Manifest: types.Manifest{Name: "Nord", Author: "arctic", Description: "Cool blue."},
		Assets:   []core.AssetInfo{{Name: "gtk-3.0/gtk.css", Size: 10}},
		Bytes:    10,
	}
	require.NoError(t, newText(&buf, time.Now()).RenderResult(res))

	out := buf.String()
	assert.Contains(t, out, "Nord\n")
	assert.Contains(t, out, "  Author: arctic\n")
	assert.Contains(t, out, "\nCool blue.\n")
	assert.Contains(t, out, "Components:\n  - No compatible components found\n")
	assert.Contains(t, out, "gtk-3.0/gtk.css  10 B\n")
}

func TestText_Catalog(t *testing.T) {
	var buf bytes.Buffer
	r := newText(&buf, time.Now())

	require.NoError(t, r.RenderResult(&catalog.ThemeList{
		Total:  1,
		Themes: []catalog.Theme{{ID: "d1", Name: "Nord", Author: "arctic", File: "f1"}},
	}))
	assert.Contains(t, buf.String(), "Catalog themes (1)\n")
	assert.Contains(t, buf.String(), "d1  Nord  arctic  f1\n")

	buf.Reset()
	require.NoError(t, r.RenderResult(&catalog.ThemeList{}))
	assert.Contains(t, buf.String(), "The catalog is empty")
}

func TestText_UnknownResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf).RenderResult(struct{ A int }{7}))
	assert.Equal(t, "{A:7}\n", buf.String())
}

func TestText_Error(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)

	require.NoError(t, r.RenderError(errors.New(errors.ErrBadMagic, "not a reskin bundle")))
	assert.Equal(t, "Error: invalid bundle: [BAD_MAGIC] not a reskin bundle\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "bundle x does not exist")))
	assert.Equal(t, "Error: [NOT_FOUND] bundle x does not exist\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)

	require.NoError(t, r.RenderError(errors.New(errors.ErrTruncated, "short read").WithDetail("field", "asset")))
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "TRUNCATED", obj["code"])
	assert.Equal(t, map[string]interface{}{"field": "asset"}, obj["details"])

	buf.Reset()
	res := &core.InstallResult{
		Manifest:      types.Manifest{Name: "Nord"},
		Result:        &install.Result{Name: "Nord"},
		ActivationErr: apply.ErrNothingApplied,
	}
	require.NoError(t, r.RenderResult(res))
	obj = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "Nord", obj["Name"])
	assert.Contains(t, obj["ActivationErr"], "APPLY")
	assert.Contains(t, obj["Message"], "Failed to auto-apply")

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.JSONEq(t, `{"message":"done"}`, buf.String())
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf)

	require.NoError(t, r.RenderResult(types.Manifest{Name: "Nord", Author: "arctic"}))
	assert.Contains(t, buf.String(), "Nord")
	assert.Contains(t, buf.String(), "arctic")

	buf.Reset()
	require.NoError(t, r.RenderResult([]types.RecentTheme{{Name: "Nord", Author: "arctic", InstalledAt: time.Now().Unix()}}))
	assert.Contains(t, buf.String(), "Nord")
	assert.Contains(t, buf.String(), "Installed")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrBadManifest, "bad json")))
	assert.Contains(t, buf.String(), "invalid bundle")
}
