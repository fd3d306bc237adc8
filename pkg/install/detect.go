package install

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/triggers"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// ThemeInfo is what the freedesktop theme descriptors at the top of a tree
// say about it. Fields are empty when the descriptor is absent.
type ThemeInfo struct {
	IconName    string
	IconComment string
	Inherits    []string
	CursorName  string
	// Directories is the number of icon size directories index.theme lists
	Directories int
}

// Detection is the classification of a tree
type Detection struct {
	Components []types.Component
	Matches    []types.TriggerMatch
	// FontFiles are the top-level font files, sorted by name
	FontFiles []string
	Info      ThemeInfo
}

// Has reports whether component was detected
func (d Detection) Has(component types.Component) bool {
	for _, c := range d.Components {
		if c == component {
			return true
		}
	}
	return false
}

// Detect classifies the tree at root with the triggers in set. A missing
// root yields an empty detection.
func Detect(fs afero.Fs, set *triggers.Set, root string) Detection {
	logger := logging.GetLogger("install")

	d := Detection{Matches: set.Match(fs, root)}

	found := map[types.Component]bool{}
	fonts := map[string]bool{}
	for _, m := range d.Matches {
		found[m.Component] = true
		if m.Component != types.ComponentFonts {
			continue
		}
		if files, ok := m.Metadata["files"].([]string); ok {
			for _, f := range files {
				fonts[f] = true
			}
		}
	}

	for _, c := range types.AllComponents {
		if found[c] {
			d.Components = append(d.Components, c)
		}
	}
	for f := range fonts {
		d.FontFiles = append(d.FontFiles, f)
	}
	sort.Strings(d.FontFiles)

	d.Info = readThemeInfo(fs, root)

	logger.Debug().
		Str("root", root).
		Int("components", len(d.Components)).
		Int("fonts", len(d.FontFiles)).
		Msg("detected components")

	return d
}

// readThemeInfo parses index.theme and cursor.theme when present. Both are
// INI files with an [Icon Theme] section. Parse failures are ignored: the
// descriptors are informative and never gate an install.
func readThemeInfo(fs afero.Fs, root string) ThemeInfo {
	var info ThemeInfo

	if section := iconThemeSection(fs, filepath.Join(root, "index.theme")); section != nil {
		info.IconName = section.Key("Name").String()
		info.IconComment = section.Key("Comment").String()
		info.Inherits = section.Key("Inherits").Strings(",")
		info.Directories = len(section.Key("Directories").Strings(","))
	}
	if section := iconThemeSection(fs, filepath.Join(root, "cursor.theme")); section != nil {
		info.CursorName = section.Key("Name").String()
		if len(info.Inherits) == 0 {
			info.Inherits = section.Key("Inherits").Strings(",")
		}
	}
	return info
}

func iconThemeSection(fs afero.Fs, path string) *ini.Section {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil
	}
	section, err := file.GetSection("Icon Theme")
	if err != nil {
		return nil
	}
	return section
}
