package adapters

import (
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqpin/internal/ports"
	"reqpin/internal/shared"
)

const sysPathScript = "import sys\nfor entry in sys.path:\n    print(entry)\n"

// PythonPathAdapter asks an interpreter for its import path and keeps the
// entries that are existing directories, in the interpreter's order.
type PythonPathAdapter struct{}

func NewPythonPathAdapter() PythonPathAdapter {
	return PythonPathAdapter{}
}

func (a PythonPathAdapter) SitePaths(python string) ([]string, error) {
	python = strings.TrimSpace(python)
	if python == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("python interpreter is empty")
	}
	cmd := exec.Command(python, "-c", sysPathScript)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("python path query failed").
			WithCause(shared.CommandError([]byte(stderr.String()), err))
	}
	return existingDirs(strings.Split(string(output), "\n")), nil
}

func existingDirs(values []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, value := range values {
		dir := strings.TrimSpace(value)
		if dir == "" {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}

var _ ports.SitePathsPort = PythonPathAdapter{}
