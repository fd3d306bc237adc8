package install

import (
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

const (
	stageInfix = ".reskin-stage-"
	oldInfix   = ".reskin-old-"
)

// stageName returns the hidden sibling names used while replacing name
func stageName(name, id string) (stage, old string) {
	return "." + name + stageInfix + id, "." + name + oldInfix + id
}

// replace fills a staged copy of root/name with fill, then swaps it in
// place of whatever root/name held before. It returns the destination.
func replace(fs afero.Fs, root, name string, fill func(stage string) error) (string, error) {
	logger := logging.GetLogger("install")

	dest := filepath.Join(root, name)
	if err := fs.MkdirAll(root, 0755); err != nil {
		return "", errors.IO(err, "create directory", root)
	}

	stageBase, oldBase := stageName(name, ulid.Make().String())
	stage := filepath.Join(root, stageBase)
	old := filepath.Join(root, oldBase)

	if err := fill(stage); err != nil {
		_ = fs.RemoveAll(stage)
		return "", err
	}

	hadOld := filesystem.Exists(fs, dest)
	if hadOld {
		if err := fs.Rename(dest, old); err != nil {
			_ = fs.RemoveAll(stage)
			return "", errors.IO(err, "move aside", dest)
		}
	}

	if err := fs.Rename(stage, dest); err != nil {
		if hadOld {
			if rerr := fs.Rename(old, dest); rerr != nil {
				logger.Error().Err(rerr).Str("path", old).Msg("failed to restore previous install")
			}
		}
		_ = fs.RemoveAll(stage)
		return "", errors.IO(err, "rename", stage)
	}

	if hadOld {
		if err := fs.RemoveAll(old); err != nil {
			// The new tree is in place; a leftover hidden copy is only clutter.
			logger.Warn().Err(err).Str("path", old).Msg("failed to remove previous install")
		}
	}

	logger.Debug().Str("dest", dest).Bool("replaced", hadOld).Msg("swapped in")
	return dest, nil
}
