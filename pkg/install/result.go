package install

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/reskin/pkg/types"
)

// NoComponentsText is reported when a tree holds nothing installable
const NoComponentsText = "No compatible components found"

// Placement records where a component was installed
type Placement struct {
	Component   types.Component
	Destination string
}

// Result describes one install
type Result struct {
	Name      string
	Placed    []Placement
	Detection Detection
}

// Components returns the installed components in install order
func (r *Result) Components() []types.Component {
	components := make([]types.Component, 0, len(r.Placed))
	for _, p := range r.Placed {
		components = append(components, p.Component)
	}
	return components
}

// Summary renders the user-facing install message
func (r *Result) Summary() string {
	list := NoComponentsText
	if len(r.Placed) > 0 {
		names := make([]string, 0, len(r.Placed))
		for _, c := range r.Components() {
			names = append(names, string(c))
		}
		list = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Theme '%s' installed successfully!\nComponents: %s", r.Name, list)
}
