package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ManifestFiles are the names FindManifest looks for, in order
var ManifestFiles = []string{"reskin.yaml", "reskin.yml", "reskin.toml", "reskin.json"}

// LoadManifest reads a hand-written manifest. The format is chosen by the
// file extension.
func LoadManifest(fs afero.Fs, path string) (types.Manifest, error) {
	var m types.Manifest

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return m, errors.IO(err, "read", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".json":
		err = json.Unmarshal(data, &m)
	default:
		return m, errors.Newf(errors.ErrInvalidInput, "unsupported manifest format: %s", path)
	}
	if err != nil {
		return m, errors.Wrapf(err, errors.ErrBadManifest, "failed to parse manifest %s", path).
			WithDetail("path", path)
	}

	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// FindManifest looks for a manifest file at the top of dir. It returns the
// path it loaded, or an ErrNotFound error when none exists.
func FindManifest(fs afero.Fs, dir string) (types.Manifest, string, error) {
	for _, name := range ManifestFiles {
		path := filepath.Join(dir, name)
		if _, err := fs.Stat(path); err != nil {
			continue
		}
		m, err := LoadManifest(fs, path)
		return m, path, err
	}
	return types.Manifest{}, "", errors.Newf(errors.ErrNotFound, "no manifest file in %s", dir)
}
