package app

import "reqpin/internal/types"

const DefaultManifestPath = "requirements.txt"

// RegistryRequest selects where installed versions are read from. A
// registry snapshot wins over explicit site-packages directories, which
// win over asking the interpreter for its path.
type RegistryRequest struct {
	Python       string
	SitePackages []string
	Registry     string
}

type PinRequest struct {
	ManifestPath string
	Registry     RegistryRequest
	DryRun       bool
}

type PinResult struct {
	Report types.PinReport
}

type InspectRequest struct {
	ManifestPath string
	Registry     RegistryRequest
}

type InspectResult struct {
	ManifestPath string
	Records      []types.InspectRecord
}

type SnapshotRequest struct {
	Output       string
	Python       string
	SitePackages []string
}

type SnapshotResult struct {
	OutputPath string
	Count      int
}
