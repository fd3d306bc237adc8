package types

import "github.com/spf13/afero"

// Trigger is a presence check run against the root of an unpacked theme
// tree. When a trigger matches, it returns metadata about what was found.
type Trigger interface {
	// Name returns the unique name of this trigger
	Name() string

	// Description returns a human-readable description of what this trigger matches
	Description() string

	// Match checks whether the tree rooted at root contains this trigger's marker
	Match(fs afero.Fs, root string) (bool, map[string]interface{})
}

// TriggerMatch represents a successful trigger match
type TriggerMatch struct {
	// TriggerName is the name of the trigger that matched
	TriggerName string

	// Component is the component the trigger detects
	Component Component

	// Metadata contains any additional data extracted by the trigger
	Metadata map[string]interface{}
}

// TriggerFactory creates a new Trigger instance with the given options
type TriggerFactory func(options map[string]interface{}) (Trigger, error)
