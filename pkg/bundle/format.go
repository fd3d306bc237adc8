package bundle

import "math"

// Magic identifies a reskin bundle
var Magic = [4]byte{'R', 'S', 'K', 'N'}

// Fixed sizes of the container fields
const (
	MagicSize          = 4
	ManifestLengthSize = 8
	NameLengthSize     = 4
	BlobLengthSize     = 4

	// HeaderSize is the offset of the manifest bytes
	HeaderSize = MagicSize + ManifestLengthSize

	// MaxEntryLength bounds names and blobs, both carried as u32
	MaxEntryLength = math.MaxUint32
)

// readChunk caps how much buffer is reserved ahead of a declared length, so
// a corrupt length fails as truncated rather than as an allocation.
const readChunk = 1 << 20
