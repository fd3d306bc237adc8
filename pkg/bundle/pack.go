package bundle

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// Source is a file found in a theme directory, named by its
// slash-separated path relative to that directory.
type Source struct {
	Name string
	Path string
	Size int64
}

// Stats describes a written bundle
type Stats struct {
	Assets int
	Bytes  int64
}

// Collect walks dir and returns every regular file in lexical order.
// Entries whose relative path appears in exclude are skipped, directories
// with all their contents; this keeps manifest source files and VCS
// metadata out of the bundle.
func Collect(fs afero.Fs, dir string, exclude ...string) ([]Source, error) {
	logger := logging.GetLogger("bundle.collect")

	if !filesystem.IsDir(fs, dir) {
		return nil, errors.Newf(errors.ErrNotFound, "theme directory '%s' does not exist", dir).
			WithDetail("path", dir)
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var sources []Source
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, statErr := fs.Stat(path)
			if statErr != nil {
				logger.Warn().Str("path", path).Err(statErr).Msg("skipping dangling symlink")
				return nil
			}
			info = target
			if info.IsDir() {
				logger.Debug().Str("path", path).Msg("not following directory symlink")
				return nil
			}
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if _, ok := skip[name]; ok {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		sources = append(sources, Source{Name: name, Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.IO(err, "walk", dir)
	}

	if len(sources) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "no files found in theme directory '%s'", dir).
			WithDetail("path", dir)
	}

	logger.Debug().Str("dir", dir).Int("files", len(sources)).Msg("collected theme files")
	return sources, nil
}

// WriteDir packs every file under dir into a bundle at output, streaming
// each file from disk.
func WriteDir(fs afero.Fs, dir string, manifest types.Manifest, output string, exclude ...string) (Stats, error) {
	sources, err := Collect(fs, dir, exclude...)
	if err != nil {
		return Stats{}, err
	}

	f, err := fs.Create(output)
	if err != nil {
		return Stats{}, errors.IO(err, "create", output)
	}
	defer func() {
		_ = f.Close()
	}()

	buf := bufio.NewWriter(f)
	bw, err := newWriter(buf, manifest, output)
	if err != nil {
		return Stats{}, err
	}

	for _, src := range sources {
		if err := writeSource(fs, bw, src); err != nil {
			return Stats{}, err
		}
	}

	if err := bw.Close(); err != nil {
		return Stats{}, err
	}
	if err := f.Close(); err != nil {
		return Stats{}, errors.IO(err, "close", output)
	}

	return Stats{Assets: bw.Count(), Bytes: bw.Size()}, nil
}

func writeSource(fs afero.Fs, bw *Writer, src Source) error {
	in, err := fs.Open(src.Path)
	if err != nil {
		return errors.IO(err, "open", src.Path)
	}
	defer func() {
		_ = in.Close()
	}()

	return bw.WriteAssetFrom(src.Name, src.Size, in)
}
