package app

import (
	"context"

	"reqpin/internal/core"
	"reqpin/internal/types"
)

// Inspect reports how each manifest entry would be pinned without
// touching the manifest.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	manifest, err := s.loadManifest(req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	resolver, err := s.resolverFor(req.Registry)
	if err != nil {
		return InspectResult{}, err
	}
	entries, resolutions := core.NewManifestPinner(resolver).Pin(ctx, manifest)
	records := make([]types.InspectRecord, 0, len(entries))
	for i, entry := range entries {
		record := types.InspectRecord{
			Name:    entry.Name,
			Current: entry.Raw,
			Version: entry.Version,
			Status:  types.EntryStatusUnresolved,
			Source:  resolutions[i].Source,
		}
		if entry.Pinned() {
			record.Status = types.EntryStatusPinned
		}
		records = append(records, record)
	}
	return InspectResult{ManifestPath: manifest.Path, Records: records}, nil
}
