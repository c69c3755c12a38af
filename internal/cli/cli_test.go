package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqpin/internal/app"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"pin", "inspect", "snapshot"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestPinFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{newRootCommand(), newPinCommand()} {
		for _, name := range []string{"manifest", "python", "site-packages", "registry", "dry-run"} {
			assert.NotNil(t, cmd.Flags().Lookup(name), "%s: missing flag: %s", cmd.Name(), name)
		}
	}
	flag := newPinCommand().Flags().Lookup("manifest")
	require.NotNil(t, flag)
	assert.Equal(t, "requirements.txt", flag.DefValue)
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	for _, name := range []string{"manifest", "python", "site-packages", "registry"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
	assert.Nil(t, cmd.Flags().Lookup("dry-run"))
}

func TestSnapshotCommandFlags(t *testing.T) {
	cmd := newSnapshotCommand()
	for _, name := range []string{"output", "python", "site-packages"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

// ---------- End-to-end command tests ----------

func writeInstalled(t *testing.T, dir string, name string, version string) {
	t.Helper()
	infoDir := filepath.Join(dir, name+"-"+version+".dist-info")
	require.NoError(t, os.MkdirAll(infoDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(infoDir, "METADATA"), []byte("Name: "+name+"\nVersion: "+version+"\n"), 0644))
}

func TestRootCommandPinsManifest(t *testing.T) {
	site := t.TempDir()
	writeInstalled(t, site, "flask", "3.0.1")
	writeInstalled(t, site, "requests", "2.31.0")
	manifest := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("flask\nrequests==2.0.0\n# comment\n\nghost\n"), 0644))

	root := newRootCommand()
	root.SetArgs([]string{"--manifest", manifest, "--site-packages", site})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, "flask==3.0.1\nrequests==2.31.0\nghost\n", string(data))
}

func TestPinCommandDryRun(t *testing.T) {
	site := t.TempDir()
	writeInstalled(t, site, "flask", "3.0.1")
	manifest := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("flask\n"), 0644))

	root := newRootCommand()
	root.SetArgs([]string{"pin", "--manifest", manifest, "--site-packages", site, "--dry-run"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, "flask\n", string(data))
}

func TestPinCommandMissingManifest(t *testing.T) {
	root := newRootCommand()
	root.SilenceErrors = true
	root.SetArgs([]string{"pin", "--manifest", filepath.Join(t.TempDir(), "missing.txt"), "--site-packages", t.TempDir()})
	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestSnapshotThenInspect(t *testing.T) {
	site := t.TempDir()
	writeInstalled(t, site, "numpy", "1.26.4")
	registry := filepath.Join(t.TempDir(), "registry.yaml")
	manifest := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("numpy\nghost==0.1\n"), 0644))

	root := newRootCommand()
	root.SetArgs([]string{"snapshot", "--output", registry, "--site-packages", site})
	require.NoError(t, root.Execute())
	_, err := os.Stat(registry)
	require.NoError(t, err)

	var out bytes.Buffer
	root = newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"inspect", "--manifest", manifest, "--registry", registry})
	require.NoError(t, root.Execute())

	want := manifest + ": 2 entries\n" +
		"- numpy: numpy -> numpy==1.26.4\n" +
		"- ghost: ghost==0.1 (not installed)\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("unexpected inspect output (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, "numpy\nghost==0.1\n", string(data))
}

func TestPrintInspectEmptyManifest(t *testing.T) {
	var out bytes.Buffer
	printInspect(&out, app.InspectResult{ManifestPath: "requirements.txt"})
	assert.Equal(t, "requirements.txt: 0 entries\n", out.String())
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStringFallsBackToFlagDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("test-flag", "default", "test flag")
	assert.Equal(t, "default", resolveString(cmd, "default", "unset_test_key", "test-flag"))

	require.NoError(t, cmd.Flags().Set("test-flag", "changed"))
	assert.Equal(t, "changed", resolveString(cmd, "changed", "unset_test_key", "test-flag"))
}

func TestResolveStrings(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		values   []string
		expected []string
	}{
		{
			name:     "nil cmd with values returns values",
			cmd:      nil,
			values:   []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil cmd empty returns nil",
			cmd:      nil,
			values:   nil,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStrings(tt.cmd, tt.values, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBool(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")

	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("manifest path is empty"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("no site-packages directories configured"),
			expected: 3,
		},
		{
			name: "manifest not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("manifest file not found: requirements.txt"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write manifest file"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}
