package bundle_test

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	"github.com/arthur-debert/reskin/pkg/bundle"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nord() types.Manifest {
	return types.Manifest{Name: "Nord", Author: "x", Version: "1.0"}
}

func sampleAssets() []types.Asset {
	return []types.Asset{
		{Name: "gtk-3.0/gtk.css", Data: []byte("body{}")},
		{Name: "index.theme", Data: []byte("[Icon Theme]\nName=Nord\n")},
		{Name: "Nord.ttf", Data: bytes.Repeat([]byte{0x00, 0x01, 0xff}, 100)},
	}
}

// entry builds the raw bytes of one container entry
func entry(name string, data []byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(name)))
	buf.WriteString(name)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	return buf.Bytes()
}

func header(manifestJSON string) []byte {
	var buf bytes.Buffer
	buf.WriteString("RSKN")
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(manifestJSON)))
	buf.WriteString(manifestJSON)
	return buf.Bytes()
}

func TestEncode_Layout(t *testing.T) {
	data, err := bundle.EncodeBytes(nord(), []types.Asset{{Name: "gtk.css", Data: []byte("body{}")}})
	require.NoError(t, err)

	manifestJSON := `{"name":"Nord","author":"x","description":"","version":"1.0","preview":""}`
	want := append(header(manifestJSON), entry("gtk.css", []byte("body{}"))...)
	assert.Equal(t, want, data)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		manifest types.Manifest
		assets   []types.Asset
	}{
		{
			name:     "no assets",
			manifest: nord(),
		},
		{
			name:     "several assets keep order",
			manifest: nord(),
			assets:   sampleAssets(),
		},
		{
			name: "full manifest",
			manifest: types.Manifest{
				Name:        "Dracula",
				Author:      "Zeno <zeno@example.com>",
				Description: "A dark theme with **bold** colors & more",
				Version:     "4.0.1",
				Preview:     "preview.png",
				Tags:        []string{"dark", "purple"},
				License:     "MIT",
			},
			assets: []types.Asset{{Name: "gtk-4.0/gtk.css", Data: []byte("* {}")}},
		},
		{
			name:     "empty asset",
			manifest: nord(),
			assets:   []types.Asset{{Name: "empty", Data: []byte{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bundle.EncodeBytes(tt.manifest, tt.assets)
			require.NoError(t, err)

			b, err := bundle.DecodeBytes(data)
			require.NoError(t, err)

			assert.Equal(t, tt.manifest, b.Manifest)
			assert.Equal(t, tt.assets, b.Assets)
			assert.Equal(t, data[bundle.HeaderSize:bundle.HeaderSize+len(b.RawManifest)], b.RawManifest)
		})
	}
}

func TestDecode_Truncation(t *testing.T) {
	data, err := bundle.EncodeBytes(nord(), sampleAssets())
	require.NoError(t, err)

	// Offsets where an entry ends (or the manifest ends) are valid shorter
	// bundles: the format carries no entry count.
	manifestEnd := bundle.HeaderSize + int(binary.LittleEndian.Uint64(data[4:12]))
	boundaries := map[int]int{manifestEnd: 0}
	offset := manifestEnd
	for i, a := range sampleAssets() {
		offset += len(entry(a.Name, a.Data))
		boundaries[offset] = i + 1
	}
	require.Equal(t, len(data), offset)

	for cut := 0; cut < len(data); cut++ {
		b, err := bundle.DecodeBytes(data[:cut])

		if n, ok := boundaries[cut]; ok {
			require.NoError(t, err, "cut at %d", cut)
			assert.Equal(t, sampleAssets()[:n], nilToEmpty(b.Assets), "cut at %d", cut)
			continue
		}

		require.Error(t, err, "cut at %d", cut)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTruncated), "cut at %d: %v", cut, err)
		assert.Nil(t, b)
	}
}

func nilToEmpty(a []types.Asset) []types.Asset {
	if a == nil {
		return []types.Asset{}
	}
	return a
}

func TestDecode_MagicRejection(t *testing.T) {
	valid, err := bundle.EncodeBytes(nord(), sampleAssets())
	require.NoError(t, err)

	for _, magic := range []string{"RSKX", "rskn", "PK\x03\x04", "\x00\x00\x00\x00", "NKSR"} {
		t.Run(fmt.Sprintf("%q", magic), func(t *testing.T) {
			data := append([]byte(magic), valid[4:]...)
			_, err := bundle.DecodeBytes(data)
			assert.True(t, errors.IsErrorCode(err, errors.ErrBadMagic), "got %v", err)
		})
	}

	t.Run("short non-prefix", func(t *testing.T) {
		_, err := bundle.DecodeBytes([]byte("PK"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrBadMagic), "got %v", err)
	})
}

func TestDecode_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		b, err := bundle.DecodeBytes(nil)
		assert.Nil(t, b)
		code := errors.GetErrorCode(err)
		assert.Contains(t, []errors.ErrorCode{errors.ErrBadMagic, errors.ErrTruncated}, code)
	})
}

func TestDecode_BadManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"not json", "{name:"},
		{"wrong type", `{"name":42}`},
		{"empty name", `{"name":""}`},
		{"path in name", `{"name":"../etc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bundle.DecodeBytes(header(tt.manifest))
			assert.True(t, errors.IsErrorCode(err, errors.ErrBadManifest), "got %v", err)
		})
	}
}

func TestDecode_HugeDeclaredLength(t *testing.T) {
	data := []byte("RSKN")
	data = binary.LittleEndian.AppendUint64(data, 1<<62)
	data = append(data, []byte(`{"name":"x"}`)...)

	_, err := bundle.DecodeBytes(data)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTruncated), "got %v", err)

	data = header(`{"name":"x"}`)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = append(data, 'a')
	data = binary.LittleEndian.AppendUint32(data, 0xffffffff)
	_, err = bundle.DecodeBytes(data)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTruncated), "got %v", err)
}

func TestDecode_DuplicatesPreserveOrder(t *testing.T) {
	data := header(`{"name":"Nord"}`)
	data = append(data, entry("gtk.css", []byte("first"))...)
	data = append(data, entry("other", []byte("x"))...)
	data = append(data, entry("gtk.css", []byte("second"))...)

	b, err := bundle.DecodeBytes(data)
	require.NoError(t, err)
	require.Len(t, b.Assets, 3)
	assert.Equal(t, "first", string(b.Assets[0].Data))
	assert.Equal(t, "second", string(b.Assets[2].Data))
}

func TestDecode_UnsafeAssetName(t *testing.T) {
	data := append(header(`{"name":"Nord"}`), entry("../../.bashrc", []byte("evil"))...)

	_, err := bundle.DecodeBytes(data)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadAssetName), "got %v", err)
	assert.True(t, errors.IsInvalidBundle(err))
}

func TestEncode_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		manifest types.Manifest
		assets   []types.Asset
		code     errors.ErrorCode
	}{
		{
			name:     "invalid manifest name",
			manifest: types.Manifest{Name: "a/b"},
			code:     errors.ErrBadManifest,
		},
		{
			name:     "duplicate asset",
			manifest: nord(),
			assets:   []types.Asset{{Name: "gtk.css"}, {Name: "gtk.css"}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "absolute asset",
			manifest: nord(),
			assets:   []types.Asset{{Name: "/etc/passwd"}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "file then nested asset",
			manifest: nord(),
			assets:   []types.Asset{{Name: "gtk-3.0", Data: []byte("x")}, {Name: "gtk-3.0/gtk.css", Data: []byte("y")}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "file under deeper file",
			manifest: nord(),
			assets:   []types.Asset{{Name: "a/b"}, {Name: "a/b/c/d"}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "nested asset then file",
			manifest: nord(),
			assets:   []types.Asset{{Name: "gtk-3.0/gtk.css"}, {Name: "gtk-3.0"}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "ancestor directory as file",
			manifest: nord(),
			assets:   []types.Asset{{Name: "a/b/c"}, {Name: "a"}},
			code:     errors.ErrBadAssetName,
		},
		{
			name:     "manifest sidecar",
			manifest: nord(),
			assets:   []types.Asset{{Name: types.SidecarName, Data: []byte(`{"name":"Evil"}`)}},
			code:     errors.ErrBadAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bundle.EncodeBytes(tt.manifest, tt.assets)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEncode_NameLayouts(t *testing.T) {
	tests := []struct {
		name   string
		assets []types.Asset
	}{
		{
			name:   "siblings sharing a directory",
			assets: []types.Asset{{Name: "gtk-3.0/gtk.css"}, {Name: "gtk-3.0/gtk-dark.css"}},
		},
		{
			name:   "similar prefixes",
			assets: []types.Asset{{Name: "gtk-3.0.bak"}, {Name: "gtk-3.0/gtk.css"}},
		},
		{
			name:   "nested sidecar name",
			assets: []types.Asset{{Name: "gnome-shell/" + types.SidecarName}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bundle.EncodeBytes(nord(), tt.assets)
			require.NoError(t, err)

			b, err := bundle.DecodeBytes(data)
			require.NoError(t, err)
			assert.Len(t, b.Assets, len(tt.assets))
		})
	}
}

func TestWriter_Close(t *testing.T) {
	var out bytes.Buffer
	buf := bufio.NewWriter(&out)

	w, err := bundle.NewWriter(buf, nord())
	require.NoError(t, err)
	require.NoError(t, w.WriteAsset(types.Asset{Name: "gtk.css", Data: []byte("body{}")}))
	assert.Zero(t, out.Len(), "nothing reaches the file before Close")

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	b, err := bundle.DecodeBytes(out.Bytes())
	require.NoError(t, err)
	require.Len(t, b.Assets, 1)

	err = w.WriteAsset(types.Asset{Name: "late.css"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal), "got %v", err)
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, io.ErrShortWrite
	}
	w.after--
	return len(p), nil
}

func TestEncode_WriteFailure(t *testing.T) {
	for after := 0; after < 4; after++ {
		err := bundle.Encode(&failingWriter{after: after}, nord(), sampleAssets())
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO), "after %d: %v", after, err)
	}
}

func TestReader_Streaming(t *testing.T) {
	data, err := bundle.EncodeBytes(nord(), sampleAssets())
	require.NoError(t, err)

	r, err := bundle.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Nord", r.Manifest().Name)

	var names []string
	for {
		a, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"gtk-3.0/gtk.css", "index.theme", "Nord.ttf"}, names)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReadManifest_IgnoresBody(t *testing.T) {
	// A corrupt body does not matter when only the manifest is read
	data := append(header(`{"name":"Nord","author":"x"}`), 0x01, 0x00)

	m, err := bundle.ReadManifest(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "x", m.Author)
}
