// Package install classifies an unpacked theme tree and replace-installs
// each detected component into its destination root.
//
// Every destination is written through a staged swap: the new content is
// copied into a hidden sibling of the destination, the existing directory
// is moved aside, the staged copy is renamed into place and the old copy
// removed. A failed swap puts the old copy back.
package install
