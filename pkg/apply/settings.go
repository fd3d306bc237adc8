package apply

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// settingsDirs are the GTK versions that read settings.ini
var settingsDirs = []string{"gtk-3.0", "gtk-4.0"}

func (a *Activator) writeSettings(r *Report, name string, theme, icons, cursors bool) {
	keys := map[string]string{}
	if theme {
		keys["gtk-theme-name"] = name
	}
	if icons {
		keys["gtk-icon-theme-name"] = name
	}
	if cursors {
		keys["gtk-cursor-theme-name"] = name
	}
	if len(keys) == 0 {
		return
	}

	written := 0
	for _, dir := range settingsDirs {
		path := filepath.Join(a.configHome, dir, "settings.ini")
		if err := UpdateSettingsINI(a.fs, path, keys); err != nil {
			r.warn("GTK settings.ini failed: %v", err)
			continue
		}
		written++
	}
	if written > 0 {
		r.applied("GTK settings.ini")
	}
}

// UpdateSettingsINI sets keys in the [Settings] section of a GTK
// settings.ini, creating the file when needed and keeping every other key.
// An existing file that cannot be read or parsed is left untouched.
func UpdateSettingsINI(fs afero.Fs, path string, keys map[string]string) error {
	file := ini.Empty()
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		loaded, err := ini.Load(data)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "%s is not a valid settings.ini, leaving it unchanged", path).
				WithDetail("path", path)
		}
		file = loaded
	case !os.IsNotExist(err):
		return errors.IO(err, "read", path)
	}

	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	section := file.Section("Settings")
	for _, k := range names {
		section.Key(k).SetValue(keys[k])
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode settings.ini")
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.IO(err, "create directory", dir)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		return errors.IO(err, "write", path)
	}
	return nil
}
