package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"reqpin/internal/types"
)

// Snapshot records every installed distribution into a registry snapshot
// file that later runs can read with RegistryRequest.Registry.
func (s Service) Snapshot(ctx context.Context, req SnapshotRequest) (SnapshotResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot output path is required")
	}
	lister, err := s.distributionLister(req.Python, req.SitePackages)
	if err != nil {
		return SnapshotResult{}, err
	}
	dists, err := lister.Distributions()
	if err != nil {
		return SnapshotResult{}, err
	}
	snapshot := types.RegistrySnapshotFile{
		Python:   strings.TrimSpace(req.Python),
		Packages: map[string]string{},
	}
	for _, dist := range dists {
		snapshot.Packages[dist.Name] = dist.Version
	}
	if err := s.Snapshots.WriteSnapshot(output, snapshot); err != nil {
		return SnapshotResult{}, err
	}
	log.Info().
		Str("output", output).
		Int("packages", len(snapshot.Packages)).
		Msg("registry snapshot written")
	return SnapshotResult{OutputPath: output, Count: len(snapshot.Packages)}, nil
}
