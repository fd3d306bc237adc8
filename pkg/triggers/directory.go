package triggers

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/spf13/afero"
)

// DirectoryTriggerName is the name used to reference this trigger
const DirectoryTriggerName = "directory"

// DirectoryTrigger fires when the tree has a top-level directory whose
// name matches pattern. With include_files set, a top-level file of that
// name counts too, so the marker only has to exist.
type DirectoryTrigger struct {
	pattern      string
	includeFiles bool
}

// NewDirectoryTrigger creates a new DirectoryTrigger with the given options
func NewDirectoryTrigger(options map[string]interface{}) (*DirectoryTrigger, error) {
	pattern, ok := options["pattern"].(string)
	if !ok || pattern == "" {
		return nil, fmt.Errorf("directory trigger requires a 'pattern' option")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid directory pattern %q: %w", pattern, err)
	}

	t := &DirectoryTrigger{pattern: pattern}
	if v, set := options["include_files"]; set {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("directory trigger option 'include_files' must be a bool")
		}
		t.includeFiles = b
	}
	return t, nil
}

// Name returns the name of this trigger
func (t *DirectoryTrigger) Name() string {
	return DirectoryTriggerName
}

// Description returns a human-readable description of this trigger
func (t *DirectoryTrigger) Description() string {
	return fmt.Sprintf("Matches directories named '%s'", t.pattern)
}

// Match checks whether root holds a directory matching the pattern
func (t *DirectoryTrigger) Match(fs afero.Fs, root string) (bool, map[string]interface{}) {
	logger := logging.GetLogger("triggers.directory")

	if !containsGlobChars(t.pattern) {
		info, err := fs.Stat(filepath.Join(root, t.pattern))
		if err != nil || !(info.IsDir() || t.includeFiles) {
			return false, nil
		}
		logger.Trace().Str("root", root).Str("pattern", t.pattern).Msg("directory matched")
		return true, map[string]interface{}{
			"directory": t.pattern,
			"pattern":   t.pattern,
		}
	}

	for _, e := range topLevel(fs, root) {
		if (e.isDir || t.includeFiles) && matchName(t.pattern, e.name) {
			logger.Trace().Str("root", root).Str("pattern", t.pattern).Str("directory", e.name).Msg("directory matched")
			return true, map[string]interface{}{
				"directory": e.name,
				"pattern":   t.pattern,
			}
		}
	}
	return false, nil
}
