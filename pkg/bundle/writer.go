package bundle

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"path"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/rs/zerolog"
)

// Writer streams a bundle to an underlying writer. The header is written
// by NewWriter and each WriteAsset call appends one entry. Close flushes
// the underlying writer when it buffers; it does not close it.
//
// Entry names must be extractable side by side: a name may not repeat,
// may not be both a file and a directory of another entry, and may not
// be the manifest sidecar.
type Writer struct {
	w      io.Writer
	label  string
	names  map[string]struct{}
	dirs   map[string]struct{}
	count  int
	size   int64
	closed bool
	logger zerolog.Logger
}

type flusher interface {
	Flush() error
}

// NewWriter validates the manifest and writes the bundle header to w
func NewWriter(w io.Writer, manifest types.Manifest) (*Writer, error) {
	return newWriter(w, manifest, "bundle")
}

func newWriter(w io.Writer, manifest types.Manifest, label string) (*Writer, error) {
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(manifest)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrBadManifest, "failed to serialize manifest")
	}

	bw := &Writer{
		w:      w,
		label:  label,
		names:  make(map[string]struct{}),
		dirs:   make(map[string]struct{}),
		logger: logging.GetLogger("bundle.writer"),
	}

	var header [HeaderSize]byte
	copy(header[:MagicSize], Magic[:])
	binary.LittleEndian.PutUint64(header[MagicSize:], uint64(len(raw)))

	if err := bw.write(header[:], "write header"); err != nil {
		return nil, err
	}
	if err := bw.write(raw, "write manifest"); err != nil {
		return nil, err
	}

	bw.logger.Debug().
		Str("theme", manifest.Name).
		Int("manifestBytes", len(raw)).
		Msg("wrote bundle header")

	return bw, nil
}

// WriteAsset appends one entry
func (w *Writer) WriteAsset(asset types.Asset) error {
	if err := w.begin(asset.Name, int64(len(asset.Data))); err != nil {
		return err
	}
	if err := w.write(asset.Data, "write asset"); err != nil {
		return err
	}
	w.finish(asset.Name, int64(len(asset.Data)))
	return nil
}

// WriteAssetFrom appends one entry of exactly size bytes read from r
func (w *Writer) WriteAssetFrom(name string, size int64, r io.Reader) error {
	if err := w.begin(name, size); err != nil {
		return err
	}

	copied, err := io.CopyN(w.w, r, size)
	if err == io.EOF {
		return errors.Newf(errors.ErrIO, "asset %s shrank while packing: read %d of %d bytes", name, copied, size).
			WithDetail("op", "read asset").
			WithDetail("path", name)
	}
	if err != nil {
		return errors.IO(err, "write asset", w.label)
	}

	w.finish(name, size)
	return nil
}

// Close finishes the bundle. Later writes fail.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if f, ok := w.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.IO(err, "flush", w.label)
		}
	}

	w.logger.Debug().
		Int("assets", w.count).
		Int64("size", w.size).
		Msg("bundle closed")
	return nil
}

// Count returns the number of entries written so far
func (w *Writer) Count() int { return w.count }

// Size returns the number of blob bytes written so far
func (w *Writer) Size() int64 { return w.size }

func (w *Writer) begin(name string, size int64) error {
	if w.closed {
		return errors.Newf(errors.ErrInternal, "asset %s written after the bundle was closed", name)
	}
	if err := w.checkName(name); err != nil {
		return err
	}
	if uint64(len(name)) > MaxEntryLength {
		return errors.Newf(errors.ErrInvalidInput, "asset name is %d bytes, limit is %d", len(name), MaxEntryLength)
	}
	if size < 0 || size > MaxEntryLength {
		return errors.Newf(errors.ErrInvalidInput, "asset %s is %d bytes, limit is %d", name, size, MaxEntryLength).
			WithDetail("name", name)
	}

	var nameLen [NameLengthSize]byte
	binary.LittleEndian.PutUint32(nameLen[:], uint32(len(name)))
	if err := w.write(nameLen[:], "write asset name length"); err != nil {
		return err
	}
	if err := w.write([]byte(name), "write asset name"); err != nil {
		return err
	}

	var blobLen [BlobLengthSize]byte
	binary.LittleEndian.PutUint32(blobLen[:], uint32(size))
	return w.write(blobLen[:], "write asset length")
}

// checkName rejects names that could not be extracted next to the
// entries already written.
func (w *Writer) checkName(name string) error {
	if err := types.ValidateAssetName(name); err != nil {
		return err
	}

	bad := func(format string, args ...interface{}) error {
		return errors.Newf(errors.ErrBadAssetName, format, args...).WithDetail("name", name)
	}

	if name == types.SidecarName {
		return bad("asset %q collides with the manifest sidecar", name)
	}
	if _, dup := w.names[name]; dup {
		return bad("asset %q appears twice in the bundle", name)
	}
	if _, dir := w.dirs[name]; dir {
		return bad("asset %q is already a directory in the bundle", name)
	}
	for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
		if _, file := w.names[dir]; file {
			return bad("asset %q is inside %q, which is a file in the bundle", name, dir)
		}
	}
	return nil
}

func (w *Writer) finish(name string, size int64) {
	w.names[name] = struct{}{}
	for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
		w.dirs[dir] = struct{}{}
	}
	w.count++
	w.size += size

	w.logger.Trace().
		Str("name", name).
		Int64("size", size).
		Msg("wrote asset")
}

func (w *Writer) write(p []byte, op string) error {
	if _, err := w.w.Write(p); err != nil {
		return errors.IO(err, op, w.label)
	}
	return nil
}
