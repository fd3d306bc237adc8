// Package core implements reskin's operations on top of the codec,
// extraction, installer and ledger packages:
//
//   - Pack turns a theme directory into a bundle file
//   - Inspect decodes a bundle in memory and reports what it would install
//   - ExtractFile unpacks a bundle into a directory
//   - InstallFile, InstallData and InstallDir install a theme and record it
//     in the recent ledger, optionally activating it
//   - Download fetches a bundle from the remote catalog
//
// Every operation runs against an Env, which carries the filesystem, the
// resolved paths and configuration, and the collaborators. Invalid bundles
// are rejected before anything is written.
package core
