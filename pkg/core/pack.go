package core

import (
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/bundle"
	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/extract"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/arthur-debert/reskin/pkg/types"
)

// PackOptions defines the options for the Pack command.
type PackOptions struct {
	// Dir is the theme directory to pack.
	Dir string
	// Output is the bundle path. Defaults to <name>.reskin next to Dir.
	Output string
	// Manifest overrides the manifest file in Dir. Fields left empty are
	// filled from the manifest file when one exists.
	Manifest types.Manifest
}

// PackResult describes a written bundle
type PackResult struct {
	Manifest     types.Manifest
	ManifestFile string
	Output       string
	Assets       int
	Bytes        int64
}

// Pack collects every file under a theme directory into a bundle.
func (e *Env) Pack(opts PackOptions) (*PackResult, error) {
	log := logging.GetLogger("core.pack")
	log.Debug().Str("command", "Pack").Str("dir", opts.Dir).Msg("Executing command")

	dir := filepath.Clean(opts.Dir)

	manifest, manifestFile, err := config.FindManifest(e.FS, dir)
	if err != nil && !errors.IsErrorCode(err, errors.ErrNotFound) {
		return nil, err
	}
	manifest = mergeManifest(manifest, opts.Manifest)
	if manifest.Name == "" {
		manifest.Name = filepath.Base(dir)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(dir), manifest.Name+paths.BundleExt)
	}

	exclude := append([]string{}, e.Config.Install.PackExclude...)
	exclude = append(exclude, config.ManifestFiles...)
	exclude = append(exclude, extract.SidecarName)
	if filepath.Dir(filepath.Clean(output)) == dir {
		exclude = append(exclude, filepath.Base(output))
	}

	stats, err := bundle.WriteDir(e.FS, dir, manifest, output, exclude...)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Pack").
		Str("theme", manifest.Name).
		Int("assets", stats.Assets).
		Int64("bytes", stats.Bytes).
		Msg("Command finished")

	return &PackResult{
		Manifest:     manifest,
		ManifestFile: manifestFile,
		Output:       output,
		Assets:       stats.Assets,
		Bytes:        stats.Bytes,
	}, nil
}

// mergeManifest overlays the non-empty fields of override onto base
func mergeManifest(base, override types.Manifest) types.Manifest {
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.Author != "" {
		base.Author = override.Author
	}
	if override.Description != "" {
		base.Description = override.Description
	}
	if override.Version != "" {
		base.Version = override.Version
	}
	if override.Preview != "" {
		base.Preview = override.Preview
	}
	if len(override.Tags) > 0 {
		base.Tags = override.Tags
	}
	if override.License != "" {
		base.License = override.License
	}
	return base
}
