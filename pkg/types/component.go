package types

import (
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
)

// Component is an installable theme subsystem
type Component string

const (
	ComponentTheme   Component = "GTK/Window Manager theme"
	ComponentIcons   Component = "Icons"
	ComponentCursors Component = "Cursors"
	ComponentFonts   Component = "Fonts"
)

// AllComponents lists components in install and report order
var AllComponents = []Component{ComponentTheme, ComponentIcons, ComponentCursors, ComponentFonts}

// Key returns the short configuration key of the component
func (c Component) Key() string {
	switch c {
	case ComponentTheme:
		return "theme"
	case ComponentIcons:
		return "icons"
	case ComponentCursors:
		return "cursors"
	case ComponentFonts:
		return "fonts"
	default:
		return string(c)
	}
}

// ParseComponent accepts a component key ("icons") or its display name
func ParseComponent(s string) (Component, error) {
	for _, c := range AllComponents {
		if strings.EqualFold(s, c.Key()) || strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown component %q", s).
		WithDetail("valid", []string{"theme", "icons", "cursors", "fonts"})
}
