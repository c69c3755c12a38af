package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreter stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "python")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestPythonPathAdapter_SitePaths(t *testing.T) {
	siteA := t.TempDir()
	siteB := t.TempDir()
	file := filepath.Join(siteA, "python311.zip")
	require.NoError(t, os.WriteFile(file, []byte("zip"), 0644))

	python := fakeInterpreter(t, fmt.Sprintf("echo ''\necho '%s'\necho '%s'\necho '/nonexistent/lib'\necho '%s'\necho '%s'\n", siteA, file, siteB, siteA))

	dirs, err := NewPythonPathAdapter().SitePaths(python)
	require.NoError(t, err)
	assert.Equal(t, []string{siteA, siteB}, dirs)
}

func TestPythonPathAdapter_InterpreterFails(t *testing.T) {
	python := fakeInterpreter(t, "echo 'no module named sys' >&2\nexit 1\n")

	_, err := NewPythonPathAdapter().SitePaths(python)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "python path query failed")
}

func TestPythonPathAdapter_MissingInterpreter(t *testing.T) {
	_, err := NewPythonPathAdapter().SitePaths(filepath.Join(t.TempDir(), "no-python"))
	require.Error(t, err)
}

func TestPythonPathAdapter_EmptyInterpreter(t *testing.T) {
	_, err := NewPythonPathAdapter().SitePaths(" ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
