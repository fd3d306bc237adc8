package cli

import (
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/cobra"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		output   string
		manifest types.Manifest
	)

	cmd := &cobra.Command{
		Use:   "pack <dir>",
		Short: "Pack a theme directory into a bundle",
		Long: `Pack collects every file under a theme directory into a .reskin bundle.

The manifest is read from reskin.yaml, reskin.toml or reskin.json in the
directory when present; flags override its fields. Without a manifest the
theme is named after the directory.`,
		Example: `  # Pack ./Nord into ./Nord.reskin
  reskin pack ./Nord

  # Override the name and write elsewhere
  reskin pack ./nord-src --name Nord -o dist/Nord.reskin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			result, err := env.Pack(core.PackOptions{Dir: args[0], Output: output, Manifest: manifest})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Bundle path (default <name>.reskin next to the directory)")
	cmd.Flags().StringVar(&manifest.Name, "name", "", "Theme name")
	cmd.Flags().StringVar(&manifest.Author, "author", "", "Theme author")
	cmd.Flags().StringVar(&manifest.Description, "description", "", "Theme description")
	cmd.Flags().StringVar(&manifest.Version, "theme-version", "", "Theme version")
	cmd.Flags().StringVar(&manifest.Preview, "preview", "", "Preview image URL or asset name")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Show a bundle's manifest, assets and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			result, err := env.Inspect(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <bundle>",
		Short: "Show a bundle's manifest without reading its assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			manifest, err := env.ThemeInfo(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, manifest)
		},
	}
}

func newExtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <bundle> [dir]",
		Short: "Unpack a bundle into a directory",
		Long: `Extract writes every asset of a bundle under dir, together with a
reskin.json copy of its manifest. The default directory is the staging
area of the cache directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			root := ""
			if len(args) == 2 {
				root = args[1]
			}
			result, err := env.ExtractFile(args[0], root)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}
