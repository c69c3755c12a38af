package ports

import "reqpin/internal/types"

// VersionResolverPort looks up the installed version of a package.
// A name the registry does not know yields a Resolution with Found unset;
// it is never reported as an error.
type VersionResolverPort interface {
	Resolve(name string) types.Resolution
}

// DistributionListerPort enumerates every installed distribution.
type DistributionListerPort interface {
	Distributions() ([]types.Distribution, error)
}

// SitePathsPort discovers the metadata directories of an interpreter.
type SitePathsPort interface {
	SitePaths(python string) ([]string, error)
}
