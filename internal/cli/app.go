package cli

import (
	"io"

	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/paths"
	"github.com/arthur-debert/reskin/pkg/picker"
	"github.com/arthur-debert/reskin/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app holds the global flags and builds the environment commands run in
type app struct {
	fs     afero.Fs
	runner executor.Runner

	verbosity  int
	format     string
	configFile string

	// configure adjusts a fresh environment before use
	configure func(*core.Env)

	env *core.Env
}

func newApp(fs afero.Fs, runner executor.Runner) *app {
	return &app{fs: fs, runner: runner}
}

// environment loads the configuration and builds the environment once
func (a *app) environment() (*core.Env, error) {
	if a.env != nil {
		return a.env, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	env, err := core.NewEnv(a.fs, cfg)
	if err != nil {
		return nil, err
	}
	if a.configure != nil {
		a.configure(env)
	}
	a.env = env
	return env, nil
}

func (a *app) loadConfig() (*config.Config, error) {
	file := a.configFile
	if file == "" {
		file = paths.New(paths.Options{}).ConfigFile()
	}
	logger := logging.GetLogger("cli")
	logger.Debug().Str("file", file).Msg("Loading configuration")
	return config.Load(config.Options{File: file, Env: true})
}

func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

func (a *app) message(cmd *cobra.Command, msg string) error {
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderMessage(msg)
}

func (a *app) picker() *picker.Picker {
	return picker.New(a.runner)
}
