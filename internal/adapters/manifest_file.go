package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqpin/internal/ports"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) ReadLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("manifest file not found: " + path).
				WithCause(err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read manifest file").
			WithCause(err)
	}
	content := strings.TrimPrefix(string(data), "\ufeff")
	if content == "" {
		return nil, nil
	}
	return strings.Split(lineEndings.Replace(content), "\n"), nil
}

func (a ManifestFileAdapter) WriteContent(path string, content string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest file").
			WithCause(err)
	}
	return nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
