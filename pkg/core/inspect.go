package core

import (
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/bundle"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/extract"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/install"
	"github.com/arthur-debert/reskin/pkg/internal/hashutil"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
)

// AssetInfo is one entry of a bundle listing
type AssetInfo struct {
	Name string
	Size int64
}

// InspectResult describes a bundle without installing it
type InspectResult struct {
	Path     string
	Checksum string
	Manifest types.Manifest
	Assets   []AssetInfo
	Bytes    int64
	// Detection lists the components an install would place
	Detection install.Detection
}

// Inspect decodes the bundle at path and reports its manifest, its assets
// and the components an install would place. Nothing is written to disk.
func (e *Env) Inspect(path string) (*InspectResult, error) {
	log := logging.GetLogger("core.inspect")
	log.Debug().Str("command", "Inspect").Str("path", path).Msg("Executing command")

	b, err := bundle.ReadFile(e.FS, path)
	if err != nil {
		return nil, err
	}

	sum, err := hashutil.FileChecksum(e.FS, path)
	if err != nil {
		return nil, errors.IO(err, "read", path)
	}

	result := &InspectResult{Path: path, Checksum: sum, Manifest: b.Manifest}
	for _, a := range b.Assets {
		result.Assets = append(result.Assets, AssetInfo{Name: a.Name, Size: int64(len(a.Data))})
		result.Bytes += int64(len(a.Data))
	}

	mem := filesystem.NewMemory()
	root, err := extract.Extract(mem, b, filepath.Join("/inspect", b.Manifest.Name))
	if err != nil {
		return nil, err
	}
	result.Detection = install.Detect(mem, e.Installer.Triggers(), root)

	log.Info().
		Str("command", "Inspect").
		Str("theme", b.Manifest.Name).
		Int("assets", len(result.Assets)).
		Msg("Command finished")
	return result, nil
}

// ThemeInfo reads only the manifest of the bundle at path
func (e *Env) ThemeInfo(path string) (types.Manifest, error) {
	return bundle.ReadFileManifest(e.FS, path)
}

// ExtractResult describes an unpacked bundle
type ExtractResult struct {
	Manifest types.Manifest
	Root     string
}

// ExtractFile decodes the bundle at path and unpacks it under root. An
// empty root means <staging>/<name>.
func (e *Env) ExtractFile(path, root string) (*ExtractResult, error) {
	log := logging.GetLogger("core.extract")
	log.Debug().Str("command", "ExtractFile").Str("path", path).Msg("Executing command")

	b, err := bundle.ReadFile(e.FS, path)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = filepath.Join(e.Paths.StagingDir(), b.Manifest.Name)
	}

	dir, err := extract.Extract(e.FS, b, root)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ExtractFile").Str("root", dir).Msg("Command finished")
	return &ExtractResult{Manifest: b.Manifest, Root: dir}, nil
}
