package triggers

import (
	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

type binding struct {
	component types.Component
	trigger   types.Trigger
}

// Set is an ordered list of triggers, each bound to the component it
// detects
type Set struct {
	bindings []binding
}

// NewSet builds the classifier triggers from the configured marker lists
func NewSet(markers config.Install) (*Set, error) {
	s := &Set{}

	// Markers are presence based: a file named like a marker directory
	// still marks the component.
	marker := map[string]interface{}{"include_files": true}

	groups := []struct {
		component types.Component
		trigger   string
		option    string
		values    []string
		extra     map[string]interface{}
	}{
		{types.ComponentTheme, DirectoryTriggerName, "pattern", markers.ThemeMarkers, marker},
		{types.ComponentIcons, DirectoryTriggerName, "pattern", markers.IconMarkers, marker},
		{types.ComponentIcons, FileNameTriggerName, "pattern", markers.IconFiles, nil},
		{types.ComponentCursors, DirectoryTriggerName, "pattern", markers.CursorMarkers, marker},
		{types.ComponentCursors, FileNameTriggerName, "pattern", markers.CursorFiles, nil},
		{types.ComponentFonts, ExtensionTriggerName, "extension", markers.FontExtensions, nil},
	}

	for _, g := range groups {
		for _, v := range g.values {
			options := map[string]interface{}{g.option: v}
			for k, x := range g.extra {
				options[k] = x
			}
			trigger, err := NewTrigger(g.trigger, options)
			if err != nil {
				return nil, err
			}
			s.Add(g.component, trigger)
		}
	}
	return s, nil
}

// DefaultSet builds the triggers from the embedded default markers
func DefaultSet() *Set {
	s, err := NewSet(config.Default().Install)
	if err != nil {
		panic("triggers: invalid default markers: " + err.Error())
	}
	return s
}

// Add appends a trigger for component
func (s *Set) Add(component types.Component, trigger types.Trigger) {
	s.bindings = append(s.bindings, binding{component: component, trigger: trigger})
}

// Len returns the number of triggers in the set
func (s *Set) Len() int {
	return len(s.bindings)
}

// Match runs every trigger against root and returns the ones that fired,
// in set order
func (s *Set) Match(fs afero.Fs, root string) []types.TriggerMatch {
	logger := logging.GetLogger("triggers")

	var matches []types.TriggerMatch
	for _, b := range s.bindings {
		ok, metadata := b.trigger.Match(fs, root)
		if !ok {
			continue
		}
		matches = append(matches, types.TriggerMatch{
			TriggerName: b.trigger.Name(),
			Component:   b.component,
			Metadata:    metadata,
		})
	}

	logger.Debug().Str("root", root).Int("matches", len(matches)).Msg("tree classified")
	return matches
}
