package app

import (
	"os"

	"reqpin/internal/adapters"
	"reqpin/internal/ports"
)

type Service struct {
	Manifest  ports.ManifestPort
	SitePaths ports.SitePathsPort
	Snapshots ports.RegistrySnapshotWriterPort
	Notifier  ports.NotifierPort

	// Resolver, when set, replaces the registry chosen from the request.
	Resolver ports.VersionResolverPort

	// Lister, when set, replaces the site-packages scan used by Snapshot.
	Lister ports.DistributionListerPort
}

func NewService() Service {
	return Service{
		Manifest:  adapters.NewManifestFileAdapter(),
		SitePaths: adapters.NewPythonPathAdapter(),
		Snapshots: adapters.NewRegistrySnapshotWriterAdapter(),
		Notifier:  adapters.NewConsoleNotifier(os.Stdout),
	}
}
