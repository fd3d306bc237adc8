// Package filesystem provides filesystem implementations for reskin.
//
// Every component that touches disk takes an afero.Fs, so production code
// runs on the OS filesystem and tests run on an in-memory one. The package
// also holds the tree copy helpers used by extraction and installation.
package filesystem
