package cli

import (
	"github.com/arthur-debert/reskin/pkg/core"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and download themes from the online catalog",
		Long: `The catalog is an Appwrite project holding theme documents and their
bundles. Configure it in the [catalog] section of the configuration or
with RESKIN_CATALOG__* environment variables.`,
	}
	cmd.AddCommand(newCatalogListCmd(a), newCatalogShowCmd(a), newCatalogDownloadCmd(a))
	return cmd
}

func newCatalogListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			list, err := env.CatalogThemes(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd, list)
		},
	}
}

func newCatalogShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			theme, err := env.CatalogTheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, theme)
		},
	}
}

func newCatalogDownloadCmd(a *app) *cobra.Command {
	var (
		name     string
		install  bool
		activate bool
	)

	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a bundle from the catalog",
		Long: `Download saves the bundle stored under file-id in the downloads
directory. With --install the bundle is installed instead of saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			if install {
				result, err := env.DownloadAndInstall(cmd.Context(), args[0], core.InstallOptions{Activate: activate})
				if err != nil {
					return err
				}
				return a.render(cmd, result)
			}
			result, err := env.Download(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Save as <name>.reskin (default the manifest name)")
	cmd.Flags().BoolVar(&install, "install", false, "Install the bundle instead of saving it")
	cmd.Flags().BoolVar(&activate, "apply", false, "Activate the theme after installing it")
	return cmd
}
