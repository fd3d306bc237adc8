// Package types defines the core types shared across reskin: the theme
// Manifest, bundle Assets, installable Components, recent-install entries,
// and the Trigger interface used to classify unpacked theme trees.
package types
