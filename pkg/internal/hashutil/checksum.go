// Package hashutil computes the checksums reskin reports for bundles.
package hashutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Prefix marks the algorithm of a checksum string
const Prefix = "sha256:"

// Checksum returns the SHA256 checksum of everything read from r
func Checksum(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", Prefix, hash.Sum(nil)), nil
}

// BytesChecksum returns the SHA256 checksum of data
func BytesChecksum(data []byte) string {
	sum, _ := Checksum(bytes.NewReader(data))
	return sum
}

// FileChecksum returns the SHA256 checksum of the file at path
func FileChecksum(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()
	return Checksum(file)
}
