package types

import (
	"path"
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
)

// SidecarName is the file the raw manifest bytes are extracted to, at the
// top of the extraction root.
const SidecarName = "reskin.json"

// Asset is one named blob inside a bundle. Name is a slash-separated path
// relative to the extraction root, e.g. "gtk-3.0/gtk.css".
type Asset struct {
	Name string
	Data []byte
}

// Bundle is a decoded bundle. RawManifest holds the metadata bytes exactly
// as they appeared in the container.
type Bundle struct {
	Manifest    Manifest
	RawManifest []byte
	Assets      []Asset
}

// Size returns the total number of asset bytes
func (b *Bundle) Size() int64 {
	var n int64
	for _, a := range b.Assets {
		n += int64(len(a.Data))
	}
	return n
}

// ValidateAssetName rejects names that could escape the extraction root
// or that are not in canonical form.
func ValidateAssetName(name string) error {
	bad := func(reason string) error {
		return errors.Newf(errors.ErrBadAssetName, "asset name %q %s", name, reason).
			WithDetail("name", name)
	}

	switch {
	case name == "":
		return bad("is empty")
	case strings.ContainsAny(name, "\\\x00"):
		return bad("contains a backslash or NUL byte")
	case strings.HasPrefix(name, "/"):
		return bad("is absolute")
	case path.Clean(name) != name || name == ".":
		return bad("is not a clean relative path")
	}

	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return bad("escapes the extraction root")
		}
	}

	return nil
}
