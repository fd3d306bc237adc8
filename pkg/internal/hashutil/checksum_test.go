package hashutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", BytesChecksum(nil))
	assert.Len(t, BytesChecksum([]byte("RSKN")), 71)
	assert.Equal(t, BytesChecksum([]byte("RSKN")), BytesChecksum([]byte("RSKN")))
	assert.NotEqual(t, BytesChecksum([]byte("RSKN")), BytesChecksum([]byte("RSKX")))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/b.reskin", []byte("RSKN"), 0644))
	sum, err := FileChecksum(fs, "/b.reskin")
	require.NoError(t, err)
	assert.Equal(t, BytesChecksum([]byte("RSKN")), sum)
}

func TestFileChecksum_Missing(t *testing.T) {
	_, err := FileChecksum(afero.NewMemMapFs(), "/missing")
	assert.Error(t, err)
}
