package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/catalog"
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/install"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/dustin/go-humanize"
)

// view is what the terminal and text renderers draw
type view struct {
	Title string
	Lead  string
	// Fields with an empty value are skipped
	Fields []field
	// Description is markdown
	Description string
	Sections    []section
	Table       *table
}

type field struct {
	Label, Value string
}

type section struct {
	Title string
	Items []string
	Warn  bool
}

type table struct {
	Header []string
	Rows   [][]string
}

func (v *view) field(label, value string) {
	v.Fields = append(v.Fields, field{label, value})
}

func (v *view) section(title string, warn bool, items ...string) {
	if len(items) > 0 {
		v.Sections = append(v.Sections, section{Title: title, Items: items, Warn: warn})
	}
}

// viewOf builds the view of a known result type. now anchors relative
// times.
func viewOf(result interface{}, now time.Time) (view, bool) {
	switch r := result.(type) {
	case *core.PackResult:
		return packView(r), true
	case *core.InspectResult:
		return inspectView(r), true
	case *core.InstallResult:
		return installView(r), true
	case *core.DownloadResult:
		v := view{Title: "Downloaded " + r.Manifest.Name}
		v.field("Saved to", r.Path)
		v.field("Size", humanize.Bytes(uint64(r.Bytes)))
		v.field("Checksum", r.Checksum)
		return v, true
	case *core.ExtractResult:
		v := view{Title: "Extracted " + r.Manifest.Name}
		v.field("Directory", r.Root)
		return v, true
	case []types.RecentTheme:
		return recentView(r, now), true
	case types.Manifest:
		return manifestView(r), true
	case *catalog.ThemeList:
		return catalogView(r), true
	case *catalog.Theme:
		return themeView(r), true
	case *apply.Report:
		v := view{Title: "Activation"}
		reportSections(&v, r)
		return v, true
	}
	return view{}, false
}

func packView(r *core.PackResult) view {
	v := view{Title: "Packed " + r.Manifest.Name}
	v.field("Output", r.Output)
	if r.ManifestFile != "" {
		v.field("Manifest", r.ManifestFile)
	} else {
		v.field("Manifest", "(generated)")
	}
	v.field("Assets", strconv.Itoa(r.Assets))
	v.field("Size", humanize.Bytes(uint64(r.Bytes)))
	return v
}

func manifestView(m types.Manifest) view {
	v := view{Title: m.Name, Description: m.Description}
	v.field("Author", m.Author)
	v.field("Version", m.Version)
	v.field("License", m.License)
	v.field("Preview", m.Preview)
	if len(m.Tags) > 0 {
		v.field("Tags", fmt.Sprint(m.Tags))
	}
	return v
}

func inspectView(r *core.InspectResult) view {
	v := manifestView(r.Manifest)
	v.field("Bundle", r.Path)
	v.field("Checksum", r.Checksum)
	v.field("Assets", fmt.Sprintf("%d (%s)", len(r.Assets), humanize.Bytes(uint64(r.Bytes))))

	info := r.Detection.Info
	v.field("Icon theme", info.IconName)
	v.field("Inherits", strings.Join(info.Inherits, ", "))
	v.field("Cursor theme", info.CursorName)

	if len(r.Detection.Components) == 0 {
		v.section("Components", true, install.NoComponentsText)
	} else {
		components := make([]string, 0, len(r.Detection.Components))
		for _, c := range r.Detection.Components {
			components = append(components, string(c))
		}
		v.section("Components", false, components...)
	}

	t := &table{Header: []string{"Asset", "Size"}}
	for _, a := range r.Assets {
		t.Rows = append(t.Rows, []string{a.Name, humanize.Bytes(uint64(a.Size))})
	}
	v.Table = t
	return v
}

func installView(r *core.InstallResult) view {
	v := view{Lead: r.Summary()}

	placed := make([]string, 0, len(r.Placed))
	for _, p := range r.Placed {
		placed = append(placed, fmt.Sprintf("%s: %s", p.Component, p.Destination))
	}
	v.section("Installed to", false, placed...)

	if r.ActivationErr != nil {
		v.section("Failed to auto-apply", true, r.ActivationErr.Error())
	}
	if r.Activation != nil {
		reportSections(&v, r.Activation)
	}
	v.section("Warnings", true, r.Warnings...)
	return v
}

func reportSections(v *view, r *apply.Report) {
	v.section("Applied", false, r.Applied...)
	v.section("Activation warnings", true, r.Warnings...)
}

func recentView(entries []types.RecentTheme, now time.Time) view {
	v := view{Title: "Recent themes"}
	if len(entries) == 0 {
		v.Lead = "No themes installed yet"
		return v
	}
	t := &table{Header: []string{"Name", "Author", "Installed"}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			e.Name,
			e.Author,
			humanize.RelTime(time.Unix(e.InstalledAt, 0), now, "ago", "from now"),
		})
	}
	v.Table = t
	return v
}

func catalogView(l *catalog.ThemeList) view {
	v := view{Title: fmt.Sprintf("Catalog themes (%d)", l.Total)}
	if len(l.Themes) == 0 {
		v.Lead = "The catalog is empty"
		return v
	}
	t := &table{Header: []string{"ID", "Name", "Author", "File"}}
	for _, th := range l.Themes {
		t.Rows = append(t.Rows, []string{th.ID, th.Name, th.Author, th.File})
	}
	v.Table = t
	return v
}

func themeView(th *catalog.Theme) view {
	v := view{Title: th.Name, Description: th.Description}
	v.field("ID", th.ID)
	v.field("Author", th.Author)
	v.field("File", th.File)
	v.field("Preview", th.Preview)
	return v
}
