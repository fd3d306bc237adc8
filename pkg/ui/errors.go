package ui

import (
	"github.com/arthur-debert/reskin/pkg/errors"
)

// errorText is the message shown for err. Malformed bundles of every kind
// read as "invalid bundle" followed by the cause.
func errorText(err error) string {
	if errors.IsInvalidBundle(err) {
		return "invalid bundle: " + err.Error()
	}
	return err.Error()
}
