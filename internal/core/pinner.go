package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"reqpin/internal/ports"
	"reqpin/internal/types"
)

type ManifestPinner struct {
	resolver ports.VersionResolverPort
}

func NewManifestPinner(resolver ports.VersionResolverPort) ManifestPinner {
	return ManifestPinner{resolver: resolver}
}

// Pin resolves every entry in order and returns the entries with their
// installed versions set, together with the per-entry resolutions.
// Entries whose name cannot be resolved keep an empty version.
func (p ManifestPinner) Pin(ctx context.Context, manifest types.Manifest) ([]types.ManifestEntry, []types.Resolution) {
	assert.NotEmpty(ctx, manifest.Path, "manifest path must be set")

	pinned := make([]types.ManifestEntry, 0, len(manifest.Entries))
	resolutions := make([]types.Resolution, 0, len(manifest.Entries))
	for _, entry := range manifest.Entries {
		resolution := p.resolve(entry.Name)
		if resolution.Found {
			entry.Version = resolution.Version
			log.Debug().
				Str("package", entry.Name).
				Str("version", resolution.Version).
				Str("source", resolution.Source).
				Msg("resolved installed version")
		} else {
			entry.Version = ""
			log.Debug().
				Str("package", entry.Name).
				Msg("package not found in registry")
		}
		pinned = append(pinned, entry)
		resolutions = append(resolutions, resolution)
	}
	assert.Assert(ctx, len(pinned) == len(manifest.Entries), "every manifest entry must produce one output entry")
	return pinned, resolutions
}

func (p ManifestPinner) resolve(name string) types.Resolution {
	if name == "" || p.resolver == nil {
		return types.NotFound(name)
	}
	return p.resolver.Resolve(name)
}
