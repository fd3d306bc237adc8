// Package picker opens native file dialogs through zenity.
package picker

import (
	"context"
	"fmt"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/logging"
)

// BundleFilter restricts the file dialog to theme bundles
const BundleFilter = "Reskin Files (*.reskin) | *.reskin"

var (
	// ErrNothingSelected is returned when the dialog was dismissed
	ErrNothingSelected = errors.New(errors.ErrCancelled, "nothing selected")

	// ErrUnavailable is returned when no dialog tool can be run
	ErrUnavailable = errors.New(errors.ErrUnavailable, "no file dialog available, pass a path instead")
)

// Picker shows selection dialogs
type Picker struct {
	runner executor.Runner
}

// New creates a Picker
func New(runner executor.Runner) *Picker {
	return &Picker{runner: runner}
}

// SelectFile asks for a bundle file and returns its path
func (p *Picker) SelectFile(ctx context.Context, title string) (string, error) {
	return p.run(ctx, "--file-selection", "--title="+title, "--file-filter="+BundleFilter)
}

// SelectFolder asks for a theme directory and returns its path
func (p *Picker) SelectFolder(ctx context.Context, title string) (string, error) {
	return p.run(ctx, "--file-selection", "--directory", "--title="+title)
}

func (p *Picker) run(ctx context.Context, args ...string) (string, error) {
	logger := logging.GetLogger("picker")

	out, err := p.runner.Run(ctx, "zenity", args...)
	if err != nil {
		logger.Debug().Err(err).Msg("zenity not available")
		return "", ErrUnavailable
	}

	switch out.ExitCode {
	case 0:
		path := out.StdoutText()
		if path == "" {
			return "", ErrNothingSelected
		}
		return path, nil
	case 1:
		// zenity exits 1 on Cancel or when the window is closed
		return "", ErrNothingSelected
	default:
		return "", errors.Wrap(fmt.Errorf("zenity exited with status %d: %s", out.ExitCode, out.StderrText()),
			errors.ErrUnavailable, "failed to open file dialog")
	}
}
