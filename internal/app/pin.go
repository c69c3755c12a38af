package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"reqpin/internal/core"
	"reqpin/internal/types"
)

// Pin rewrites the manifest with the installed version of every entry.
// Unresolved entries keep their original text and produce a warning; they
// never fail the run.
func (s Service) Pin(ctx context.Context, req PinRequest) (PinResult, error) {
	manifest, err := s.loadManifest(req.ManifestPath)
	if err != nil {
		return PinResult{}, err
	}
	resolver, err := s.resolverFor(req.Registry)
	if err != nil {
		return PinResult{}, err
	}

	entries, resolutions := core.NewManifestPinner(resolver).Pin(ctx, manifest)
	report := types.PinReport{
		ManifestPath: manifest.Path,
		Entries:      entries,
	}
	for _, resolution := range resolutions {
		if resolution.Found {
			continue
		}
		report.Unresolved = append(report.Unresolved, resolution.Name)
		s.Notifier.Warn(fmt.Sprintf("%s not installed, keeping original entry", resolution.Name))
	}
	report.Content = core.RenderManifest(entries)

	if req.DryRun {
		s.Notifier.Info(strings.TrimSuffix(report.Content, "\n"))
		return PinResult{Report: report}, nil
	}
	if err := s.Manifest.WriteContent(manifest.Path, report.Content); err != nil {
		return PinResult{}, err
	}
	report.Written = true
	log.Debug().
		Str("manifest", manifest.Path).
		Int("entries", len(entries)).
		Int("unresolved", len(report.Unresolved)).
		Msg("manifest written")
	s.Notifier.Info(fmt.Sprintf("%s updated with installed versions", manifest.Path))
	return PinResult{Report: report}, nil
}

func (s Service) loadManifest(path string) (types.Manifest, error) {
	path = manifestPath(path)
	lines, err := s.Manifest.ReadLines(path)
	if err != nil {
		return types.Manifest{}, err
	}
	return types.Manifest{
		Path:    path,
		Entries: core.ParseManifest(lines),
	}, nil
}
