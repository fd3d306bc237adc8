package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/reskin/internal/version"
	"github.com/arthur-debert/reskin/pkg/cobrax/topics"
	"github.com/arthur-debert/reskin/pkg/executor"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp(filesystem.NewOS(), executor.New()))
}

// Run executes the CLI with args and returns the process exit code.
// Errors are rendered to stderr in the selected output format.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(newApp(filesystem.NewOS(), executor.New()), args, stdout, stderr)
}

func run(a *app, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		r, rerr := a.renderer(stderr)
		if rerr != nil {
			r = ui.NewText(stderr)
		}
		_ = r.RenderError(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reskin",
		Short: "Pack, inspect and install desktop theme bundles",
		Long: `reskin packs desktop themes into single-file .reskin bundles and installs
them into the per-user theme, icon, cursor and font directories.

A bundle is classified by what it contains: a GTK or window-manager theme,
an icon or cursor theme, fonts, or any mix of these. Each component is
installed under the theme's name, replacing an earlier install in place.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", "Output format: auto, term, text or json")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Configuration file (default $XDG_CONFIG_HOME/reskin/config.toml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newPackCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newRecentCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	topicsFS, err := fs.Sub(helpFS, "help")
	if err == nil {
		_ = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(reskin completion bash)

Zsh:
  $ reskin completion zsh > "${fpath[1]}/_reskin"

Fish:
  $ reskin completion fish | source

PowerShell:
  PS> reskin completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
