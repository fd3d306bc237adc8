package core

import (
	"context"

	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/catalog"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
)

// CatalogThemes lists the themes of the configured catalog collection
func (e *Env) CatalogThemes(ctx context.Context) (*catalog.ThemeList, error) {
	log := logging.GetLogger("core.catalog")
	log.Debug().Str("command", "CatalogThemes").Msg("Executing command")

	c, err := e.catalog()
	if err != nil {
		return nil, err
	}
	raw, err := c.ListThemes(ctx, e.Config.Catalog.Database, e.Config.Catalog.Collection)
	if err != nil {
		return nil, err
	}
	list, err := catalog.ParseThemes(raw)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "CatalogThemes").Int("themes", len(list.Themes)).Msg("Command finished")
	return &list, nil
}

// CatalogTheme fetches one catalog document
func (e *Env) CatalogTheme(ctx context.Context, id string) (*catalog.Theme, error) {
	c, err := e.catalog()
	if err != nil {
		return nil, err
	}
	raw, err := c.GetTheme(ctx, e.Config.Catalog.Database, e.Config.Catalog.Collection, id)
	if err != nil {
		return nil, err
	}
	theme, err := catalog.ParseTheme(raw)
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// Activate switches the desktop to the installed theme name. With no
// components the theme steps run.
func (e *Env) Activate(ctx context.Context, name string, components ...types.Component) (*apply.Report, error) {
	logger := logging.GetLogger("core.apply")
	logger.Debug().Str("command", "Activate").Str("theme", name).Msg("Executing command")

	if e.Activator == nil {
		return nil, errors.New(errors.ErrUnavailable, "theme activation is not available")
	}
	return e.Activator.Activate(ctx, name, components...)
}
