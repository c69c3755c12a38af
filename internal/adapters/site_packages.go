package adapters

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"reqpin/internal/ports"
	"reqpin/internal/shared"
	"reqpin/internal/types"
)

// SitePackagesAdapter answers version lookups from the distribution
// metadata (*.dist-info, *.egg-info) found in a list of directories.
// Directories are searched in order and the first one holding a
// distribution for a name wins.
type SitePackagesAdapter struct {
	Dirs   []string
	index  map[string]types.Distribution
	loaded bool
}

func NewSitePackagesAdapter(dirs []string) *SitePackagesAdapter {
	return &SitePackagesAdapter{Dirs: dirs}
}

func (a *SitePackagesAdapter) Resolve(name string) types.Resolution {
	index := a.load()
	dist, ok := index[shared.NormalizePipName(name)]
	if !ok {
		return types.NotFound(name)
	}
	return types.Resolution{
		Name:    name,
		Version: dist.Version,
		Found:   true,
		Source:  dist.Path,
	}
}

func (a *SitePackagesAdapter) Distributions() ([]types.Distribution, error) {
	if len(a.Dirs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no site-packages directories configured")
	}
	index := a.load()
	out := make([]types.Distribution, 0, len(index))
	for _, dist := range index {
		out = append(out, dist)
	}
	sort.Slice(out, func(i, j int) bool {
		return shared.NormalizePipName(out[i].Name) < shared.NormalizePipName(out[j].Name)
	})
	return out, nil
}

func (a *SitePackagesAdapter) load() map[string]types.Distribution {
	if a.loaded {
		return a.index
	}
	index := map[string]types.Distribution{}
	for _, dir := range a.Dirs {
		found := scanMetadataDir(dir)
		for name, candidates := range found {
			if _, ok := index[name]; ok {
				continue
			}
			index[name] = newestDistribution(candidates)
		}
		log.Debug().
			Str("dir", dir).
			Int("distributions", len(found)).
			Int("total", len(index)).
			Msg("site-packages directory scanned")
	}
	a.index = index
	a.loaded = true
	return index
}

// scanMetadataDir groups the distributions of one directory by their
// normalized name. Unreadable directories and metadata are skipped.
func scanMetadataDir(dir string) map[string][]types.Distribution {
	found := map[string][]types.Distribution{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return found
	}
	for _, entry := range entries {
		metadataPath, format, ok := metadataFile(dir, entry)
		if !ok {
			continue
		}
		dist, err := readDistribution(metadataPath, entry.Name())
		if err != nil {
			log.Debug().Err(err).Str("path", metadataPath).Msg("skipping unreadable metadata")
			continue
		}
		dist.Format = format
		name := shared.NormalizePipName(dist.Name)
		found[name] = append(found[name], dist)
	}
	return found
}

func metadataFile(dir string, entry os.DirEntry) (string, types.MetadataFormat, bool) {
	name := entry.Name()
	isDir := entryIsDir(dir, entry)
	switch {
	case strings.HasSuffix(name, ".dist-info") && isDir:
		return filepath.Join(dir, name, "METADATA"), types.MetadataFormatDistInfo, true
	case strings.HasSuffix(name, ".egg-info") && isDir:
		return filepath.Join(dir, name, "PKG-INFO"), types.MetadataFormatEggInfo, true
	case strings.HasSuffix(name, ".egg-info"):
		return filepath.Join(dir, name), types.MetadataFormatEggInfo, true
	default:
		return "", "", false
	}
}

// entryIsDir reports whether entry is a directory, following symlinks.
func entryIsDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// readDistribution reads the Name and Version headers of a core metadata
// file. When a header is missing it falls back to the name-version form
// of the metadata directory name.
func readDistribution(path string, dirName string) (types.Distribution, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Distribution{}, err
	}
	name, version := parseMetadataHeaders(content)
	dirDist, dirVersion := splitMetadataDirName(dirName)
	if name == "" {
		name = dirDist
	}
	if version == "" {
		version = dirVersion
	}
	if name == "" || version == "" {
		return types.Distribution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata has no name or version: " + path)
	}
	return types.Distribution{
		Name:    name,
		Version: version,
		Path:    filepath.Dir(path),
	}, nil
}

// parseMetadataHeaders reads the header block of a core metadata file,
// which ends at the first blank line.
func parseMetadataHeaders(content []byte) (string, string) {
	var name string
	var version string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		switch {
		case name == "" && strings.HasPrefix(line, "Name:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
		case version == "" && strings.HasPrefix(line, "Version:"):
			version = strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		}
		if name != "" && version != "" {
			break
		}
	}
	return name, version
}

func splitMetadataDirName(dirName string) (string, string) {
	stem := strings.TrimSuffix(strings.TrimSuffix(dirName, ".dist-info"), ".egg-info")
	parts := strings.SplitN(stem, "-", 3)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// newestDistribution picks the highest PEP 440 version among candidates
// found in the same directory. Unparsable versions rank below parsable ones.
func newestDistribution(candidates []types.Distribution) types.Distribution {
	best := candidates[0]
	bestParsed, bestErr := pep440.Parse(best.Version)
	for _, candidate := range candidates[1:] {
		parsed, err := pep440.Parse(candidate.Version)
		if err != nil {
			continue
		}
		if bestErr != nil || parsed.Compare(bestParsed) > 0 {
			best, bestParsed, bestErr = candidate, parsed, nil
		}
	}
	if len(candidates) > 1 {
		log.Debug().
			Str("package", best.Name).
			Str("version", best.Version).
			Int("candidates", len(candidates)).
			Msg("multiple distributions installed, using newest")
	}
	return best
}

var _ ports.VersionResolverPort = (*SitePackagesAdapter)(nil)
var _ ports.DistributionListerPort = (*SitePackagesAdapter)(nil)
