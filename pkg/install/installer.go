package install

import (
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/arthur-debert/reskin/pkg/triggers"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// Installer places classified theme trees into the destination roots
type Installer struct {
	fs    afero.Fs
	paths paths.Paths
	set   *triggers.Set
}

// New creates an Installer. A nil set uses the default markers.
func New(fs afero.Fs, p paths.Paths, set *triggers.Set) *Installer {
	if set == nil {
		set = triggers.DefaultSet()
	}
	return &Installer{fs: fs, paths: p, set: set}
}

// Triggers returns the classifier the installer uses
func (i *Installer) Triggers() *triggers.Set {
	return i.set
}

// Detect classifies tree without installing anything
func (i *Installer) Detect(tree string) Detection {
	return Detect(i.fs, i.set, tree)
}

// Install classifies tree and replace-installs every detected component
// under name. Components the tree does not carry are left untouched at
// their destinations. A tree with no components installs nothing and
// succeeds.
func (i *Installer) Install(tree, name string) (*Result, error) {
	logger := logging.GetLogger("install")

	if err := types.ValidateThemeName(name); err != nil {
		return nil, err
	}
	if !filesystem.IsDir(i.fs, tree) {
		return nil, errors.Newf(errors.ErrNotFound, "theme not found at '%s'", tree).
			WithDetail("path", tree)
	}

	d := i.Detect(tree)
	result := &Result{Name: name, Detection: d}

	copyTree := func(stage string) error {
		if err := filesystem.CopyTree(i.fs, tree, stage); err != nil {
			return errors.IO(err, "copy", tree)
		}
		return nil
	}

	if d.Has(types.ComponentTheme) {
		dest, err := replace(i.fs, i.paths.ThemesDir(), name, copyTree)
		if err != nil {
			return result, err
		}
		result.Placed = append(result.Placed, Placement{types.ComponentTheme, dest})
	}

	// Icons and cursors live under the same root, so one copy serves both.
	icons, cursors := d.Has(types.ComponentIcons), d.Has(types.ComponentCursors)
	if icons || cursors {
		root := i.paths.IconsDir()
		if !icons {
			root = i.paths.CursorsDir()
		}
		dest, err := replace(i.fs, root, name, copyTree)
		if err != nil {
			return result, err
		}
		if icons {
			result.Placed = append(result.Placed, Placement{types.ComponentIcons, dest})
		}
		if cursors {
			result.Placed = append(result.Placed, Placement{types.ComponentCursors, dest})
		}
	}

	if d.Has(types.ComponentFonts) {
		dest, err := replace(i.fs, i.paths.FontsDir(), name, func(stage string) error {
			if err := i.fs.MkdirAll(stage, 0755); err != nil {
				return errors.IO(err, "create directory", stage)
			}
			for _, f := range d.FontFiles {
				src := filepath.Join(tree, f)
				if err := filesystem.CopyFile(i.fs, src, filepath.Join(stage, f)); err != nil {
					return errors.IO(err, "copy", src)
				}
			}
			return nil
		})
		if err != nil {
			return result, err
		}
		result.Placed = append(result.Placed, Placement{types.ComponentFonts, dest})
	}

	logger.Info().
		Str("theme", name).
		Int("components", len(result.Placed)).
		Msg("theme installed")

	return result, nil
}
