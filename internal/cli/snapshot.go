package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqpin/internal/app"
)

type snapshotOptions struct {
	Output       string
	Python       string
	SitePackages []string
}

func newSnapshotCommand() *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record installed package versions into a registry snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "registry.yaml", "Registry snapshot output path")
	cmd.Flags().StringVar(&opts.Python, "python", "python3", "Python interpreter whose packages are read")
	cmd.Flags().StringSliceVar(&opts.SitePackages, "site-packages", nil, "Site-packages directories (skips interpreter discovery)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, opts snapshotOptions) error {
	service := newAppService()
	result, err := service.Snapshot(commandContext(cmd), app.SnapshotRequest{
		Output:       opts.Output,
		Python:       resolveString(cmd, opts.Python, "python", "python"),
		SitePackages: resolveStrings(cmd, opts.SitePackages, "site_packages", "site-packages"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("snapshot: %d packages -> %s\n", result.Count, result.OutputPath)
	return nil
}
