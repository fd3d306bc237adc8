package types

import (
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
)

// Manifest describes a theme. Name doubles as the directory name of every
// installed component, so it must be a single path segment.
type Manifest struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Author      string   `json:"author" yaml:"author" toml:"author"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Version     string   `json:"version" yaml:"version" toml:"version"`
	Preview     string   `json:"preview" yaml:"preview" toml:"preview"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	License     string   `json:"license,omitempty" yaml:"license,omitempty" toml:"license,omitempty"`
}

// Validate checks the manifest can be embedded in a bundle
func (m Manifest) Validate() error {
	if err := ValidateThemeName(m.Name); err != nil {
		return errors.Wrap(err, errors.ErrBadManifest, "invalid manifest")
	}
	return nil
}

// ValidateThemeName checks that name is usable as a single path segment
func ValidateThemeName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "theme name is empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "theme name %q is not a valid directory name", name)
	case strings.ContainsAny(name, "/\\\x00"):
		return errors.Newf(errors.ErrInvalidInput, "theme name %q contains a path separator", name).
			WithDetail("name", name)
	}
	return nil
}
