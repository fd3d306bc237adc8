// Package extract unpacks a decoded bundle into a staging directory.
package extract

import (
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// SidecarName is the file the raw manifest bytes are written to
const SidecarName = types.SidecarName

// Extract writes the manifest sidecar and every asset of b under root and
// returns root. Assets sharing a name are written in bundle order, so the
// last one wins.
func Extract(fs afero.Fs, b *types.Bundle, root string) (string, error) {
	logger := logging.GetLogger("extract")

	if err := fs.MkdirAll(root, 0755); err != nil {
		return "", errors.IO(err, "create directory", root)
	}

	sidecar := filepath.Join(root, SidecarName)
	if err := afero.WriteFile(fs, sidecar, b.RawManifest, 0644); err != nil {
		return "", errors.IO(err, "write", sidecar)
	}

	for _, asset := range b.Assets {
		// Names were validated when the bundle was decoded; check again
		// since a Bundle can also be built by hand.
		if err := types.ValidateAssetName(asset.Name); err != nil {
			return "", err
		}
		if asset.Name == SidecarName {
			return "", errors.Newf(errors.ErrBadAssetName, "asset %q collides with the manifest sidecar", asset.Name).
				WithDetail("name", asset.Name)
		}

		target := filepath.Join(root, filepath.FromSlash(asset.Name))
		if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", errors.IO(err, "create directory", filepath.Dir(target))
		}
		if err := afero.WriteFile(fs, target, asset.Data, 0644); err != nil {
			return "", errors.IO(err, "write", target)
		}

		logger.Trace().Str("path", target).Int("size", len(asset.Data)).Msg("extracted asset")
	}

	logger.Debug().
		Str("theme", b.Manifest.Name).
		Str("root", root).
		Int("assets", len(b.Assets)).
		Msg("bundle extracted")

	return root, nil
}

// ReadSidecar returns the manifest bytes stored next to an extracted tree
func ReadSidecar(fs afero.Fs, root string) ([]byte, error) {
	path := filepath.Join(root, SidecarName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.IO(err, "read", path)
	}
	return data, nil
}
