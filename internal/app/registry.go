package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"reqpin/internal/adapters"
	"reqpin/internal/ports"
)

const defaultPython = "python3"

func (s Service) resolverFor(req RegistryRequest) (ports.VersionResolverPort, error) {
	if s.Resolver != nil {
		return s.Resolver, nil
	}
	if registry := strings.TrimSpace(req.Registry); registry != "" {
		adapter := adapters.NewRegistryFileAdapter(registry)
		if err := adapter.Load(); err != nil {
			return nil, err
		}
		log.Debug().Str("registry", registry).Msg("using registry snapshot")
		return adapter, nil
	}
	adapter, err := s.sitePackages(req.Python, req.SitePackages)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func (s Service) sitePackages(python string, dirs []string) (*adapters.SitePackagesAdapter, error) {
	dirs = trimmedValues(dirs)
	if len(dirs) == 0 {
		if s.SitePaths == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("no site-packages directories configured")
		}
		if strings.TrimSpace(python) == "" {
			python = defaultPython
		}
		discovered, err := s.SitePaths.SitePaths(python)
		if err != nil {
			return nil, err
		}
		dirs = discovered
	}
	log.Debug().Strs("dirs", dirs).Msg("using site-packages directories")
	return adapters.NewSitePackagesAdapter(dirs), nil
}

func (s Service) distributionLister(python string, dirs []string) (ports.DistributionListerPort, error) {
	if s.Lister != nil {
		return s.Lister, nil
	}
	adapter, err := s.sitePackages(python, dirs)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func trimmedValues(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func manifestPath(path string) string {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return trimmed
	}
	return DefaultManifestPath
}
