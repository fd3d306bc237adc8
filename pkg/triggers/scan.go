package triggers

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// entry is a top-level item of a tree with symlinks resolved
type entry struct {
	name  string
	isDir bool
}

// topLevel lists the entries directly under root, sorted by name. Symlinks
// are followed; dangling ones are skipped.
func topLevel(fs afero.Fs, root string) []entry {
	infos, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil
	}

	entries := make([]entry, 0, len(infos))
	for _, info := range infos {
		isDir := info.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(filepath.Join(root, info.Name()))
			if err != nil {
				continue
			}
			isDir = target.IsDir()
		}
		entries = append(entries, entry{name: info.Name(), isDir: isDir})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}

// containsGlobChars checks if a pattern contains glob special characters
func containsGlobChars(pattern string) bool {
	for _, char := range pattern {
		switch char {
		case '*', '?', '[', '\\':
			return true
		}
	}
	return false
}

// matchName matches name against pattern, exactly or as a glob
func matchName(pattern, name string) bool {
	if !containsGlobChars(pattern) {
		return pattern == name
	}
	matched, err := filepath.Match(pattern, name)
	return err == nil && matched
}
