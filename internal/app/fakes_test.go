package app

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqpin/internal/types"
)

type memoryManifest struct {
	files  map[string]string
	writes int
}

func newMemoryManifest(files map[string]string) *memoryManifest {
	return &memoryManifest{files: files}
}

func (m *memoryManifest) ReadLines(path string) ([]string, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + path)
	}
	return splitLines(content), nil
}

func (m *memoryManifest) WriteContent(path string, content string) error {
	m.files[path] = content
	m.writes++
	return nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	return append(lines, content[start:])
}

type fakeResolver map[string]string

func (f fakeResolver) Resolve(name string) types.Resolution {
	version, ok := f[name]
	if !ok {
		return types.NotFound(name)
	}
	return types.Resolution{Name: name, Version: version, Found: true, Source: "fake"}
}

type recordingNotifier struct {
	warnings []string
	infos    []string
}

func (n *recordingNotifier) Warn(message string) { n.warnings = append(n.warnings, message) }
func (n *recordingNotifier) Info(message string) { n.infos = append(n.infos, message) }

type fixedSitePaths struct {
	dirs   []string
	err    error
	python string
}

func (f *fixedSitePaths) SitePaths(python string) ([]string, error) {
	f.python = python
	return f.dirs, f.err
}

func writeDistInfo(dir string, name string, version string) error {
	infoDir := filepath.Join(dir, name+"-"+version+".dist-info")
	if err := os.MkdirAll(infoDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(infoDir, "METADATA"), []byte("Metadata-Version: 2.1\nName: "+name+"\nVersion: "+version+"\n"), 0644)
}
