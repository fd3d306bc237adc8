// Package triggers implements the presence checks used to classify an
// unpacked theme tree. Each trigger looks only at the top level of the
// tree: a directory trigger fires when a named directory exists, a
// filename trigger when a named file exists, an extension trigger when any
// file carries a given extension.
//
// A Set groups triggers by the component they detect and is built from the
// marker lists in the configuration.
package triggers
