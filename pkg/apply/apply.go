package apply

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

const (
	interfaceSchema = "org.gnome.desktop.interface"
	userThemeSchema = "org.gnome.shell.extensions.user-theme"
	userThemeUUID   = "user-theme@gnome-shell-extensions.gcampax.github.com"
)

// ErrNothingApplied is returned when no activation step succeeded
var ErrNothingApplied = errors.New(errors.ErrApply, "failed to apply any theme components")

// Report lists the outcome of an activation
type Report struct {
	Applied  []string
	Warnings []string
}

func (r *Report) applied(item string) {
	r.Applied = append(r.Applied, item)
}

func (r *Report) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// String renders the report as multi-line text
func (r *Report) String() string {
	var b strings.Builder
	if len(r.Applied) > 0 {
		fmt.Fprintf(&b, "Applied: %s\n", strings.Join(r.Applied, ", "))
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings:\n%s", strings.Join(r.Warnings, "\n"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Activator applies themes through desktop tools
type Activator struct {
	runner      executor.Runner
	fs          afero.Fs
	configHome  string
	settingsINI bool
	settle      time.Duration
}

// Option configures an Activator
type Option func(*Activator)

// WithSettingsINI enables writing gtk-3.0/gtk-4.0 settings.ini under
// configHome ($XDG_CONFIG_HOME)
func WithSettingsINI(fs afero.Fs, configHome string) Option {
	return func(a *Activator) {
		a.fs = fs
		a.configHome = configHome
		a.settingsINI = true
	}
}

// WithSettleDelay sets how long to wait for the user-theme extension to
// load after enabling it
func WithSettleDelay(d time.Duration) Option {
	return func(a *Activator) { a.settle = d }
}

// New creates an Activator
func New(runner executor.Runner, opts ...Option) *Activator {
	a := &Activator{runner: runner, settle: 500 * time.Millisecond}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Activate applies theme name. Icon and cursor themes are switched only
// when components lists them; with no components only the theme steps
// run.
func (a *Activator) Activate(ctx context.Context, name string, components ...types.Component) (*Report, error) {
	logger := logging.GetLogger("apply")

	if err := types.ValidateThemeName(name); err != nil {
		return nil, err
	}

	want := map[types.Component]bool{}
	for _, c := range components {
		want[c] = true
	}
	themeSteps := len(components) == 0 || want[types.ComponentTheme]

	r := &Report{}
	if themeSteps {
		a.gtkTheme(ctx, r, name)
		a.shellTheme(ctx, r, name)
	}
	if want[types.ComponentIcons] {
		a.interfaceKey(ctx, r, "icon-theme", "Icon theme", name)
	}
	if want[types.ComponentCursors] {
		a.interfaceKey(ctx, r, "cursor-theme", "Cursor theme", name)
	}
	if themeSteps {
		a.windowManagerTheme(ctx, r, name)
	}
	if a.settingsINI {
		a.writeSettings(r, name, themeSteps, want[types.ComponentIcons], want[types.ComponentCursors])
	}

	logger.Info().
		Str("theme", name).
		Strs("applied", r.Applied).
		Int("warnings", len(r.Warnings)).
		Msg("activation finished")

	if len(r.Applied) == 0 {
		return r, ErrNothingApplied
	}
	return r, nil
}

func (a *Activator) gtkTheme(ctx context.Context, r *Report, name string) {
	a.interfaceKey(ctx, r, "gtk-theme", "GTK theme", name)
}

func (a *Activator) interfaceKey(ctx context.Context, r *Report, key, label, name string) {
	out, err := a.runner.Run(ctx, "gsettings", "set", interfaceSchema, key, name)
	switch {
	case err != nil:
		r.warn("%s failed: %v", label, err)
	case !out.Success():
		r.warn("%s failed: %s", label, out.StderrText())
	default:
		r.applied(label)
	}
}

func (a *Activator) shellTheme(ctx context.Context, r *Report, name string) {
	schemas, err := a.runner.Run(ctx, "gsettings", "list-schemas")
	if err == nil && schemas.Success() && hasLine(schemas.StdoutText(), userThemeSchema) {
		out, err := a.runner.Run(ctx, "gsettings", "set", userThemeSchema, "name", name)
		switch {
		case err != nil:
			r.warn("Shell theme failed: %v", err)
		case !out.Success():
			r.warn("Shell theme failed: %s", out.StderrText())
		default:
			r.applied("Shell theme")
		}
		return
	}

	if err := a.enableUserTheme(ctx, name); err != nil {
		r.warn("Shell theme not applied: user-theme extension not found. "+
			"Install it with: `gnome-extensions install %s` or via the GNOME Extensions app. Error: %v",
			userThemeUUID, err)
		return
	}
	r.applied("Shell theme (via auto-enabled user-theme extension)")
}

func (a *Activator) enableUserTheme(ctx context.Context, name string) error {
	out, err := a.runner.Run(ctx, "gnome-extensions", "enable", userThemeUUID)
	if err != nil || !out.Success() {
		return fmt.Errorf("user-theme extension not available and auto-enable failed")
	}

	if a.settle > 0 {
		select {
		case <-time.After(a.settle):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	out, err = a.runner.Run(ctx, "gsettings", "set", userThemeSchema, "name", name)
	if err != nil || !out.Success() {
		return fmt.Errorf("user-theme extension enabled but the theme could not be set")
	}
	return nil
}

// windowManagerTheme tries XFCE, then KDE. Failure is not reported.
func (a *Activator) windowManagerTheme(ctx context.Context, r *Report, name string) {
	attempts := []struct {
		label string
		cmd   string
		args  []string
	}{
		{"XFCE window manager theme", "xfconf-query", []string{"-c", "xfwm4", "-p", "/general/theme", "-s", name}},
		{"KDE window manager theme", "kwriteconfig5", []string{"--file", "kwinrc", "--group", "org.kde.kdecoration2", "--key", "theme", name}},
	}

	for _, at := range attempts {
		out, err := a.runner.Run(ctx, at.cmd, at.args...)
		if err == nil && out.Success() {
			r.applied(at.label)
			return
		}
	}
	logger := logging.GetLogger("apply")
	logger.Debug().Str("theme", name).Msg("no compatible window manager found")
}

func hasLine(text, line string) bool {
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
