package bundle

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/rs/zerolog"
)

// Reader streams a bundle. NewReader consumes the header and manifest;
// Next returns entries in stream order until io.EOF.
type Reader struct {
	r        io.Reader
	manifest types.Manifest
	raw      []byte
	offset   int64
	done     bool
	logger   zerolog.Logger
}

// NewReader reads and validates the bundle header and manifest from r
func NewReader(r io.Reader) (*Reader, error) {
	br := &Reader{
		r:      r,
		logger: logging.GetLogger("bundle.reader"),
	}

	var magic [MagicSize]byte
	n, err := io.ReadFull(r, magic[:])
	br.offset += int64(n)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		// A short stream that could still grow into a bundle is truncated;
		// anything else is simply not a bundle.
		if bytes.HasPrefix(Magic[:], magic[:n]) {
			return nil, br.truncated("magic", MagicSize, n)
		}
		return nil, errors.New(errors.ErrBadMagic, "not a reskin bundle: missing RSKN header")
	case err != nil:
		return nil, errors.IO(err, "read magic", "bundle")
	}
	if magic != Magic {
		return nil, errors.Newf(errors.ErrBadMagic, "not a reskin bundle: header is %q", magic[:]).
			WithDetail("magic", string(magic[:]))
	}

	var lenBuf [ManifestLengthSize]byte
	if err := br.readFull(lenBuf[:], "manifest length"); err != nil {
		return nil, err
	}
	manifestLen := binary.LittleEndian.Uint64(lenBuf[:])

	raw, err := br.readN(manifestLen, "manifest")
	if err != nil {
		return nil, err
	}

	var manifest types.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, errors.Wrap(err, errors.ErrBadManifest, "failed to parse manifest")
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	br.manifest = manifest
	br.raw = raw

	br.logger.Debug().
		Str("theme", manifest.Name).
		Uint64("manifestBytes", manifestLen).
		Msg("read bundle header")

	return br, nil
}

// Manifest returns the decoded manifest
func (r *Reader) Manifest() types.Manifest { return r.manifest }

// RawManifest returns the manifest bytes exactly as stored in the bundle
func (r *Reader) RawManifest() []byte { return r.raw }

// Next returns the next entry. It returns io.EOF only when the stream ends
// exactly on an entry boundary.
func (r *Reader) Next() (types.Asset, error) {
	if r.done {
		return types.Asset{}, io.EOF
	}

	var nameLen [NameLengthSize]byte
	n, err := io.ReadFull(r.r, nameLen[:])
	r.offset += int64(n)
	switch {
	case err == io.EOF:
		r.done = true
		return types.Asset{}, io.EOF
	case err == io.ErrUnexpectedEOF:
		return types.Asset{}, r.truncated("asset name length", NameLengthSize, n)
	case err != nil:
		return types.Asset{}, errors.IO(err, "read asset name length", "bundle")
	}

	nameBytes, err := r.readN(uint64(binary.LittleEndian.Uint32(nameLen[:])), "asset name")
	if err != nil {
		return types.Asset{}, err
	}
	name := string(nameBytes)
	if err := types.ValidateAssetName(name); err != nil {
		return types.Asset{}, err
	}

	var blobLen [BlobLengthSize]byte
	if err := r.readFull(blobLen[:], "asset length"); err != nil {
		return types.Asset{}, err
	}

	data, err := r.readN(uint64(binary.LittleEndian.Uint32(blobLen[:])), "asset data")
	if err != nil {
		return types.Asset{}, err
	}

	r.logger.Trace().
		Str("name", name).
		Int("size", len(data)).
		Msg("read asset")

	return types.Asset{Name: name, Data: data}, nil
}

func (r *Reader) readFull(buf []byte, field string) error {
	n, err := io.ReadFull(r.r, buf)
	r.offset += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return r.truncated(field, len(buf), n)
	}
	if err != nil {
		return errors.IO(err, "read "+field, "bundle")
	}
	return nil
}

// readN reads exactly n bytes, growing the buffer as data arrives
func (r *Reader) readN(n uint64, field string) ([]byte, error) {
	if n > math.MaxInt64 {
		return nil, errors.Newf(errors.ErrTruncated, "bundle truncated: %s declares %d bytes", field, n).
			WithDetail("offset", r.offset)
	}

	if n == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	if n < readChunk {
		buf.Grow(int(n))
	} else {
		buf.Grow(readChunk)
	}

	copied, err := io.CopyN(&buf, r.r, int64(n))
	r.offset += copied
	if err == io.EOF {
		return nil, errors.Newf(errors.ErrTruncated, "bundle truncated: %s declares %d bytes, %d available", field, n, copied).
			WithDetail("offset", r.offset)
	}
	if err != nil {
		return nil, errors.IO(err, "read "+field, "bundle")
	}

	return buf.Bytes(), nil
}

func (r *Reader) truncated(field string, want, got int) error {
	return errors.Newf(errors.ErrTruncated, "bundle truncated: %s needs %d bytes, %d available", field, want, got).
		WithDetail("offset", r.offset)
}
