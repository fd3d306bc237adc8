package core

import (
	"context"
	"encoding/json"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/catalog"
	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/install"
	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/arthur-debert/reskin/pkg/recent"
	"github.com/arthur-debert/reskin/pkg/triggers"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// Catalog is the part of the catalog client the operations need
type Catalog interface {
	ListThemes(ctx context.Context, database, collection string) (json.RawMessage, error)
	GetTheme(ctx context.Context, database, collection, document string) (json.RawMessage, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Activator switches the desktop to an installed theme
type Activator interface {
	Activate(ctx context.Context, name string, components ...types.Component) (*apply.Report, error)
}

// Env carries everything an operation touches
type Env struct {
	FS        afero.Fs
	Paths     paths.Paths
	Config    *config.Config
	Installer *install.Installer
	Recent    recent.Store
	Activator Activator
	// Catalog is built from Config on first use when nil
	Catalog Catalog
}

// NewEnv wires an Env for the real desktop from a loaded configuration
func NewEnv(fs afero.Fs, cfg *config.Config) (*Env, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	p := paths.New(paths.Options{
		ThemesDir: cfg.Paths.Themes,
		IconsDir:  cfg.Paths.Icons,
		FontsDir:  cfg.Paths.Fonts,
	})

	set, err := triggers.NewSet(cfg.Install)
	if err != nil {
		return nil, err
	}

	var activatorOpts []apply.Option
	if cfg.Apply.SettingsINI {
		activatorOpts = append(activatorOpts, apply.WithSettingsINI(fs, xdg.ConfigHome))
	}

	return &Env{
		FS:        fs,
		Paths:     p,
		Config:    cfg,
		Installer: install.New(fs, p, set),
		Recent:    recent.NewFileStore(fs, p.RecentFile(), recent.WithMaxEntries(cfg.Recent.MaxEntries)),
		Activator: apply.New(executor.New(), activatorOpts...),
	}, nil
}

func (e *Env) catalog() (Catalog, error) {
	if e.Catalog != nil {
		return e.Catalog, nil
	}
	c, err := catalog.FromConfig(e.Config.Catalog)
	if err != nil {
		return nil, err
	}
	e.Catalog = c
	return c, nil
}
