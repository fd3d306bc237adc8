package executor

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/arthur-debert/reskin/pkg/errors"
)

// Fake is a scripted Runner. Commands are matched by their full command
// line ("gsettings set org.gnome.desktop.interface gtk-theme Nord"); any
// command without a script succeeds with empty output.
type Fake struct {
	mu      sync.Mutex
	calls   []string
	outputs map[string]Output
	missing map[string]bool
}

// NewFake creates a Fake where every command succeeds
func NewFake() *Fake {
	return &Fake{
		outputs: make(map[string]Output),
		missing: make(map[string]bool),
	}
}

// On scripts the output of a command line
func (f *Fake) On(cmdline string, out Output) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[cmdline] = out
	return f
}

// Missing makes every invocation of the named program fail to start
func (f *Fake) Missing(name string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing[name] = true
	return f
}

// Calls returns the command lines run so far
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Run records the command line and returns its scripted output
func (f *Fake) Run(ctx context.Context, name string, args ...string) (Output, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmdline)

	if err := ctx.Err(); err != nil {
		return Output{}, errors.Wrap(err, errors.ErrCancelled, "command cancelled")
	}
	if f.missing[name] {
		return Output{}, errors.Wrapf(exec.ErrNotFound, errors.ErrUnavailable, "command %s not available", name)
	}
	return f.outputs[cmdline], nil
}
