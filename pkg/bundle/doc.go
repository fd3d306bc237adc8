// Package bundle implements the .reskin container format.
//
// A bundle is a 4-byte magic tag, a length-prefixed JSON manifest, and a
// sequence of length-prefixed (name, blob) entries running to end of
// stream. All integers are little-endian:
//
//	offset 0   : 4 bytes   magic "RSKN"
//	offset 4   : 8 bytes   u64 manifest length
//	offset 12  : manifest length bytes of JSON
//	repeated until EOF:
//	  4 bytes  u32 name length
//	  name     UTF-8 slash-separated relative path
//	  4 bytes  u32 blob length
//	  blob     raw bytes
//
// There is no entry count and no terminator: reaching end of stream exactly
// where a name length would start is the only clean end. Any other short
// read is reported as ErrTruncated.
//
// Writer and Reader stream entries so packing and unpacking never need the
// whole bundle in memory; Encode and Decode are the whole-bundle wrappers.
package bundle
