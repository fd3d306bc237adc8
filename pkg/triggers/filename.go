package triggers

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/spf13/afero"
)

// FileNameTriggerName is the name used to reference this trigger
const FileNameTriggerName = "filename"

// FileNameTrigger fires when the tree has a top-level file matching a name
// or glob pattern
type FileNameTrigger struct {
	pattern string
	isGlob  bool
}

// NewFileNameTrigger creates a new FileNameTrigger with the given pattern
func NewFileNameTrigger(pattern string) *FileNameTrigger {
	return &FileNameTrigger{
		pattern: pattern,
		isGlob:  containsGlobChars(pattern),
	}
}

// Name returns the unique name of this trigger
func (t *FileNameTrigger) Name() string {
	return FileNameTriggerName
}

// Description returns a human-readable description of what this trigger matches
func (t *FileNameTrigger) Description() string {
	if t.isGlob {
		return "Matches files by glob pattern: " + t.pattern
	}
	return "Matches files by exact name: " + t.pattern
}

// Match checks whether root holds a file matching the pattern
func (t *FileNameTrigger) Match(fs afero.Fs, root string) (bool, map[string]interface{}) {
	logger := logging.GetLogger("triggers.filename")

	var filename string
	if !t.isGlob {
		info, err := fs.Stat(filepath.Join(root, t.pattern))
		if err != nil || info.IsDir() {
			return false, nil
		}
		filename = t.pattern
	} else {
		for _, e := range topLevel(fs, root) {
			if !e.isDir && matchName(t.pattern, e.name) {
				filename = e.name
				break
			}
		}
		if filename == "" {
			return false, nil
		}
	}

	logger.Trace().
		Str("root", root).
		Str("pattern", t.pattern).
		Str("file", filename).
		Bool("is_glob", t.isGlob).
		Msg("file matched trigger")

	return true, map[string]interface{}{
		"pattern":  t.pattern,
		"filename": filename,
		"is_glob":  t.isGlob,
	}
}

func newFileNameTrigger(options map[string]interface{}) (*FileNameTrigger, error) {
	pattern, ok := options["pattern"].(string)
	if !ok || pattern == "" {
		return nil, fmt.Errorf("filename trigger requires a 'pattern' option")
	}
	return NewFileNameTrigger(pattern), nil
}
