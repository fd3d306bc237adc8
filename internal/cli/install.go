package cli

import (
	"strings"

	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/cobra"
)

const (
	msgNothingSelected = "Nothing selected"
	pickFileTitle      = "Select a theme bundle"
	pickFolderTitle    = "Select a theme folder"
)

func newInstallCmd(a *app) *cobra.Command {
	var (
		activate   bool
		pick       bool
		pickFolder bool
	)

	cmd := &cobra.Command{
		Use:   "install [bundle|dir]",
		Short: "Install a theme bundle or an unpacked theme directory",
		Long: `Install classifies a theme and copies each component it holds into the
per-user directories: GTK and window-manager themes into ~/.themes, icon
and cursor themes into the icons directory, fonts into the fonts
directory. An earlier install of the same theme is replaced.

Without an argument, --pick or --pick-folder opens a file chooser.`,
		Example: `  reskin install Nord.reskin
  reskin install ~/Downloads/Dracula --apply
  reskin install --pick`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}

			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			dir := pickFolder
			if target == "" {
				switch {
				case pickFolder:
					target, err = a.picker().SelectFolder(cmd.Context(), pickFolderTitle)
				case pick:
					target, err = a.picker().SelectFile(cmd.Context(), pickFileTitle)
				default:
					return errors.New(errors.ErrInvalidInput, "a bundle or directory is required (or use --pick)")
				}
				if errors.IsErrorCode(err, errors.ErrCancelled) {
					return a.message(cmd, msgNothingSelected)
				}
				if err != nil {
					return err
				}
			} else {
				dir = filesystem.IsDir(env.FS, target)
			}

			opts := core.InstallOptions{Activate: activate}
			var result *core.InstallResult
			if dir {
				result, err = env.InstallDir(cmd.Context(), target, opts)
			} else {
				result, err = env.InstallFile(cmd.Context(), target, opts)
			}
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&activate, "apply", false, "Activate the theme after installing it")
	cmd.Flags().BoolVar(&pick, "pick", false, "Choose the bundle with a file chooser")
	cmd.Flags().BoolVar(&pickFolder, "pick-folder", false, "Choose a theme folder with a folder chooser")
	cmd.MarkFlagsMutuallyExclusive("pick", "pick-folder")
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var components []string

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Activate an installed theme",
		Long: `Apply switches the desktop to an installed theme through gsettings, the
GNOME user-theme extension, xfconf-query or kwriteconfig5, whichever are
available. Without --components the GTK, shell and window-manager theme
are set.`,
		Example: `  reskin apply Nord
  reskin apply Nord --components icons,cursors`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			parsed, err := parseComponents(components)
			if err != nil {
				return err
			}
			report, err := env.Activate(cmd.Context(), args[0], parsed...)
			if report != nil {
				if rerr := a.render(cmd, report); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&components, "components", nil, "Components to activate: theme, icons, cursors")
	return cmd
}

func parseComponents(names []string) ([]types.Component, error) {
	var components []types.Component
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, err := types.ParseComponent(name)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

func newRecentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently installed themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			return a.render(cmd, env.RecentThemes())
		},
	}
}
