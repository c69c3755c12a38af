package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"reqpin/internal/ports"
	"reqpin/internal/shared"
	"reqpin/internal/types"
)

// RegistryFileAdapter serves version lookups from a registry snapshot file
// instead of scanning an interpreter's metadata directories.
type RegistryFileAdapter struct {
	Path     string
	versions map[string]string
	loaded   bool
}

func NewRegistryFileAdapter(path string) *RegistryFileAdapter {
	return &RegistryFileAdapter{Path: path}
}

// Load reads and validates the snapshot. Resolve calls it lazily; callers
// that want a malformed snapshot to fail the run call it up front.
func (a *RegistryFileAdapter) Load() error {
	if a.loaded {
		return nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry snapshot file not found").
			WithCause(err)
	}
	var snapshot types.RegistrySnapshotFile
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid registry snapshot format").
			WithCause(err)
	}
	versions := map[string]string{}
	for name, version := range snapshot.Packages {
		normalized := shared.NormalizePipName(name)
		version = strings.TrimSpace(version)
		if normalized == "" || version == "" {
			continue
		}
		if _, err := pep440.Parse(version); err != nil {
			log.Warn().
				Str("package", name).
				Str("version", version).
				Msg("registry snapshot version is not PEP 440")
		}
		versions[normalized] = version
	}
	a.versions = versions
	a.loaded = true
	return nil
}

func (a *RegistryFileAdapter) Resolve(name string) types.Resolution {
	if err := a.Load(); err != nil {
		log.Debug().Err(err).Str("path", a.Path).Msg("registry snapshot unavailable")
		return types.NotFound(name)
	}
	version, ok := a.versions[shared.NormalizePipName(name)]
	if !ok {
		return types.NotFound(name)
	}
	return types.Resolution{Name: name, Version: version, Found: true, Source: a.Path}
}

type RegistrySnapshotWriterAdapter struct{}

func NewRegistrySnapshotWriterAdapter() RegistrySnapshotWriterAdapter {
	return RegistrySnapshotWriterAdapter{}
}

func (a RegistrySnapshotWriterAdapter) WriteSnapshot(path string, snapshot types.RegistrySnapshotFile) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("registry snapshot path is empty")
	}
	if snapshot.Packages == nil {
		snapshot.Packages = map[string]string{}
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode registry snapshot").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create registry snapshot directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write registry snapshot").
			WithCause(err)
	}
	return nil
}

var _ ports.VersionResolverPort = (*RegistryFileAdapter)(nil)
var _ ports.RegistrySnapshotWriterPort = RegistrySnapshotWriterAdapter{}
