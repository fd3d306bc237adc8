package core

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/reskin/pkg/apply"
	"github.com/arthur-debert/reskin/pkg/bundle"
	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/extract"
	"github.com/arthur-debert/reskin/pkg/install"
	"github.com/arthur-debert/reskin/pkg/internal/hashutil"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

// InstallOptions defines the options for the install commands.
type InstallOptions struct {
	// Activate applies the theme after installing it. The configuration's
	// apply.auto setting turns this on as well.
	Activate bool
}

// InstallResult describes an install
type InstallResult struct {
	Manifest types.Manifest
	*install.Result
	// Activation is set when activation ran
	Activation    *apply.Report
	ActivationErr error
	// Warnings are failures that did not undo the install
	Warnings []string
}

// Message renders the install summary followed by the activation outcome
func (r *InstallResult) Message() string {
	var b strings.Builder
	b.WriteString(r.Summary())
	if r.ActivationErr != nil {
		b.WriteString("\n\nFailed to auto-apply: ")
		b.WriteString(r.ActivationErr.Error())
		if r.Activation != nil && len(r.Activation.Warnings) > 0 {
			b.WriteString("\n")
			b.WriteString(r.Activation.String())
		}
	} else if r.Activation != nil {
		b.WriteString("\n\n")
		b.WriteString(r.Activation.String())
	}
	return b.String()
}

// InstallFile decodes the bundle at path and installs it.
func (e *Env) InstallFile(ctx context.Context, path string, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("core.install")
	logger.Debug().Str("command", "InstallFile").Str("path", path).Msg("Executing command")

	b, err := bundle.ReadFile(e.FS, path)
	if err != nil {
		return nil, err
	}
	return e.installBundle(ctx, b, opts)
}

// InstallData installs a bundle held in memory.
func (e *Env) InstallData(ctx context.Context, data []byte, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("core.install")
	logger.Debug().Str("command", "InstallData").Int("bytes", len(data)).Msg("Executing command")

	b, err := bundle.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return e.installBundle(ctx, b, opts)
}

// InstallDir installs an already unpacked theme directory. The theme is
// named after the directory; its manifest comes from the extraction
// sidecar or a manifest file when either exists.
func (e *Env) InstallDir(ctx context.Context, dir string, opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("core.install")
	log.Debug().Str("command", "InstallDir").Str("dir", dir).Msg("Executing command")

	dir = filepath.Clean(dir)
	name := filepath.Base(dir)

	manifest := e.dirManifest(dir)
	manifest.Name = name

	return e.install(ctx, dir, manifest, opts)
}

func (e *Env) dirManifest(dir string) types.Manifest {
	var m types.Manifest
	if raw, err := extract.ReadSidecar(e.FS, dir); err == nil {
		if json.Unmarshal(raw, &m) == nil {
			return m
		}
	}
	if found, _, err := config.FindManifest(e.FS, dir); err == nil {
		return found
	}
	return m
}

// installBundle stages b under a fresh directory, installs from there and
// removes the staging copy
func (e *Env) installBundle(ctx context.Context, b *types.Bundle, opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("core.install")

	run := filepath.Join(e.Paths.StagingDir(), ulid.Make().String())
	defer func() {
		if err := e.FS.RemoveAll(run); err != nil {
			log.Warn().Err(err).Str("path", run).Msg("failed to remove staging directory")
		}
	}()

	root, err := extract.Extract(e.FS, b, filepath.Join(run, b.Manifest.Name))
	if err != nil {
		return nil, err
	}
	return e.install(ctx, root, b.Manifest, opts)
}

func (e *Env) install(ctx context.Context, tree string, manifest types.Manifest, opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("core.install")

	res, err := e.Installer.Install(tree, manifest.Name)
	if err != nil {
		return nil, err
	}
	result := &InstallResult{Manifest: manifest, Result: res}

	if _, err := e.Recent.Upsert(manifest); err != nil {
		log.Warn().Err(err).Msg("failed to record install")
		result.Warnings = append(result.Warnings, "recent installs not updated: "+err.Error())
	}

	if (opts.Activate || e.Config.Apply.Auto) && e.Activator != nil && len(res.Placed) > 0 {
		result.Activation, result.ActivationErr = e.Activator.Activate(ctx, manifest.Name, res.Components()...)
	}

	log.Info().
		Str("command", "Install").
		Str("theme", manifest.Name).
		Int("components", len(res.Placed)).
		Bool("activated", result.Activation != nil && result.ActivationErr == nil).
		Msg("Command finished")
	return result, nil
}

// RecentThemes lists the recently installed themes, newest first
func (e *Env) RecentThemes() []types.RecentTheme {
	return e.Recent.List()
}

// DownloadResult describes a saved catalog bundle
type DownloadResult struct {
	Manifest types.Manifest
	Path     string
	Bytes    int
	Checksum string
}

// Download fetches bundle fileID from the catalog and saves it under the
// downloads directory as <name>.reskin. An empty name uses the manifest
// name. The payload is checked to be a bundle before it is saved.
func (e *Env) Download(ctx context.Context, fileID, name string) (*DownloadResult, error) {
	log := logging.GetLogger("core.download")
	log.Debug().Str("command", "Download").Str("file", fileID).Msg("Executing command")

	data, manifest, err := e.fetch(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = manifest.Name
	}
	if err := types.ValidateThemeName(name); err != nil {
		return nil, err
	}

	path := e.Paths.DownloadPath(name)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.IO(err, "create directory", filepath.Dir(path))
	}
	if err := e.writeFile(path, data); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Download").Str("path", path).Int("bytes", len(data)).Msg("Command finished")
	return &DownloadResult{Manifest: manifest, Path: path, Bytes: len(data), Checksum: hashutil.BytesChecksum(data)}, nil
}

// DownloadAndInstall fetches bundle fileID from the catalog and installs
// it without saving the file.
func (e *Env) DownloadAndInstall(ctx context.Context, fileID string, opts InstallOptions) (*InstallResult, error) {
	data, _, err := e.fetch(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return e.InstallData(ctx, data, opts)
}

func (e *Env) fetch(ctx context.Context, fileID string) ([]byte, types.Manifest, error) {
	c, err := e.catalog()
	if err != nil {
		return nil, types.Manifest{}, err
	}
	data, err := c.Download(ctx, fileID)
	if err != nil {
		return nil, types.Manifest{}, err
	}
	manifest, err := bundle.ReadManifest(bytes.NewReader(data))
	if err != nil {
		return nil, types.Manifest{}, err
	}
	return data, manifest, nil
}

func (e *Env) writeFile(path string, data []byte) error {
	tmp := path + ".part"
	if err := afero.WriteFile(e.FS, tmp, data, 0644); err != nil {
		return errors.IO(err, "write", tmp)
	}
	if err := e.FS.Rename(tmp, path); err != nil {
		_ = e.FS.Remove(tmp)
		return errors.IO(err, "rename", tmp)
	}
	return nil
}
