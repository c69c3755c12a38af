package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"reqpin/internal/app"
)

type inspectOptions struct {
	Manifest     string
	Python       string
	SitePackages []string
	Registry     string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how each manifest entry would be pinned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	addRegistryFlags(cmd, &opts.Manifest, &opts.Python, &opts.SitePackages, &opts.Registry)
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(commandContext(cmd), app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Registry: app.RegistryRequest{
			Python:       resolveString(cmd, opts.Python, "python", "python"),
			SitePackages: resolveStrings(cmd, opts.SitePackages, "site_packages", "site-packages"),
			Registry:     resolveString(cmd, opts.Registry, "registry", "registry"),
		},
	})
	if err != nil {
		return err
	}

	printInspect(cmd.OutOrStdout(), result)
	return nil
}

func printInspect(out io.Writer, result app.InspectResult) {
	fmt.Fprintf(out, "%s: %d entries\n", result.ManifestPath, len(result.Records))
	for _, record := range result.Records {
		if record.Version == "" {
			fmt.Fprintf(out, "- %s: %s (%s)\n", record.Name, record.Current, record.Status)
			continue
		}
		fmt.Fprintf(out, "- %s: %s -> %s==%s\n", record.Name, record.Current, record.Name, record.Version)
	}
}
