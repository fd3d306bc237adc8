package bundle

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// Encode writes manifest and assets, in order, as a bundle to w
func Encode(w io.Writer, manifest types.Manifest, assets []types.Asset) error {
	return encode(w, manifest, assets, "bundle")
}

func encode(w io.Writer, manifest types.Manifest, assets []types.Asset, label string) error {
	bw, err := newWriter(w, manifest, label)
	if err != nil {
		return err
	}
	for _, asset := range assets {
		if err := bw.WriteAsset(asset); err != nil {
			return err
		}
	}
	return bw.Close()
}

// EncodeBytes returns the encoded bundle
func EncodeBytes(manifest types.Manifest, assets []types.Asset) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, manifest, assets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a whole bundle from r
func Decode(r io.Reader) (*types.Bundle, error) {
	br, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	b := &types.Bundle{
		Manifest:    br.Manifest(),
		RawManifest: br.RawManifest(),
	}
	for {
		asset, err := br.Next()
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
		b.Assets = append(b.Assets, asset)
	}
}

// DecodeBytes decodes an in-memory bundle
func DecodeBytes(data []byte) (*types.Bundle, error) {
	return Decode(bytes.NewReader(data))
}

// ReadManifest reads only the header of a bundle and returns its manifest
func ReadManifest(r io.Reader) (types.Manifest, error) {
	br, err := NewReader(r)
	if err != nil {
		return types.Manifest{}, err
	}
	return br.Manifest(), nil
}

// WriteFile encodes a bundle into the file at path. A failed write leaves
// a partial file behind; callers must treat it as invalid.
func WriteFile(fs afero.Fs, path string, manifest types.Manifest, assets []types.Asset) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.IO(err, "create", path)
	}

	bw := bufio.NewWriter(f)
	if err := encode(bw, manifest, assets, path); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.IO(err, "close", path)
	}
	return nil
}

// ReadFile decodes the bundle stored at path
func ReadFile(fs afero.Fs, path string) (*types.Bundle, error) {
	f, err := openBundle(fs, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(bufio.NewReader(f))
}

// ReadFileManifest reads only the manifest of the bundle stored at path
func ReadFileManifest(fs afero.Fs, path string) (types.Manifest, error) {
	f, err := openBundle(fs, path)
	if err != nil {
		return types.Manifest{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadManifest(bufio.NewReader(f))
}

func openBundle(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Newf(errors.ErrNotFound, "bundle %s does not exist", path).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.IO(err, "open", path)
	}
	return f, nil
}
