package cli

import (
	"github.com/spf13/cobra"

	"reqpin/internal/app"
)

type pinOptions struct {
	Manifest     string
	Python       string
	SitePackages []string
	Registry     string
	DryRun       bool
}

func newPinCommand() *cobra.Command {
	opts := pinOptions{}
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Rewrite the manifest with installed versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPin(cmd, opts)
		},
	}
	addPinFlags(cmd, &opts)
	return cmd
}

func addPinFlags(cmd *cobra.Command, opts *pinOptions) {
	addRegistryFlags(cmd, &opts.Manifest, &opts.Python, &opts.SitePackages, &opts.Registry)
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the pinned manifest instead of writing it")
}

func addRegistryFlags(cmd *cobra.Command, manifest *string, python *string, sitePackages *[]string, registry *string) {
	cmd.Flags().StringVar(manifest, "manifest", app.DefaultManifestPath, "Requirements manifest path")
	cmd.Flags().StringVar(python, "python", "python3", "Python interpreter whose packages are read")
	cmd.Flags().StringSliceVar(sitePackages, "site-packages", nil, "Site-packages directories (skips interpreter discovery)")
	cmd.Flags().StringVar(registry, "registry", "", "Registry snapshot file to read versions from")
}

func runPin(cmd *cobra.Command, opts pinOptions) error {
	service := newAppService()
	_, err := service.Pin(commandContext(cmd), app.PinRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Registry: app.RegistryRequest{
			Python:       resolveString(cmd, opts.Python, "python", "python"),
			SitePackages: resolveStrings(cmd, opts.SitePackages, "site_packages", "site-packages"),
			Registry:     resolveString(cmd, opts.Registry, "registry", "registry"),
		},
		DryRun: resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	return err
}
