// Package testutil provides fixtures for testing reskin components.
//
// Tests run against an in-memory afero filesystem with every reskin
// directory relocated through the RESKIN_*_DIR overrides, so nothing in
// the real home directory is read or written:
//
//	dirs := testutil.IsolatePaths(t)
//	fs := filesystem.NewMemory()
//	testutil.WriteFiles(t, fs, testutil.NordTheme("/src/Nord"))
package testutil
