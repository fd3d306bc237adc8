package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/rs/zerolog"
)

// Output is the captured result of a command that ran
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status zero
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// StdoutText returns stdout with surrounding whitespace trimmed
func (o Output) StdoutText() string {
	return strings.TrimSpace(string(o.Stdout))
}

// StderrText returns stderr with surrounding whitespace trimmed
func (o Output) StderrText() string {
	return strings.TrimSpace(string(o.Stderr))
}

// Runner runs a command to completion. A non-zero exit is reported through
// Output.ExitCode; the error is reserved for commands that could not run
// at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// New creates an ExecRunner
func New() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("executor")}
}

// Run executes name with args
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		r.logger.Debug().
			Str("command", name).
			Int("exit_code", out.ExitCode).
			Str("stderr", out.StderrText()).
			Msg("command failed")
		return out, nil
	}

	if stderrors.Is(err, exec.ErrNotFound) {
		return out, errors.Wrapf(err, errors.ErrUnavailable, "command %s not available", name).
			WithDetail("command", name)
	}
	return out, errors.Wrapf(err, errors.ErrInternal, "failed to run %s", name).
		WithDetail("command", name)
}
