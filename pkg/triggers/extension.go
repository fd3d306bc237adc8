package triggers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/spf13/afero"
)

// ExtensionTriggerName is the name used to reference this trigger
const ExtensionTriggerName = "extension"

// ExtensionTrigger fires when the tree has top-level files with a given
// extension, compared case-insensitively
type ExtensionTrigger struct {
	extension string
}

// NewExtensionTrigger creates a new ExtensionTrigger with the given options
func NewExtensionTrigger(options map[string]interface{}) (*ExtensionTrigger, error) {
	extension, ok := options["extension"].(string)
	if !ok || extension == "" || extension == "." {
		return nil, fmt.Errorf("extension trigger requires an 'extension' option")
	}

	// Ensure extension starts with a dot
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return &ExtensionTrigger{extension: extension}, nil
}

// Name returns the name of this trigger
func (t *ExtensionTrigger) Name() string {
	return ExtensionTriggerName
}

// Description returns a human-readable description of this trigger
func (t *ExtensionTrigger) Description() string {
	return fmt.Sprintf("Matches files with extension '%s'", t.extension)
}

// Match checks whether root holds files with the extension. The metadata
// lists every matching file name under "files".
func (t *ExtensionTrigger) Match(fs afero.Fs, root string) (bool, map[string]interface{}) {
	var files []string
	for _, e := range topLevel(fs, root) {
		if !e.isDir && strings.EqualFold(filepath.Ext(e.name), t.extension) {
			files = append(files, e.name)
		}
	}
	if len(files) == 0 {
		return false, nil
	}

	logger := logging.GetLogger("triggers.extension")
	logger.Trace().
		Str("root", root).
		Str("extension", t.extension).
		Strs("files", files).
		Msg("file extension matched")

	return true, map[string]interface{}{
		"extension": t.extension,
		"files":     files,
	}
}
