package core

import (
	"strings"

	"reqpin/internal/types"
)

const (
	commentMarker  = "#"
	exactSeparator = "=="
)

// ParseManifest turns raw manifest lines into entries. Blank lines and
// lines starting with a comment marker are dropped; the remaining lines
// keep their order.
func ParseManifest(lines []string) []types.ManifestEntry {
	entries := make([]types.ManifestEntry, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
			continue
		}
		entries = append(entries, types.ManifestEntry{
			Raw:  trimmed,
			Name: DeriveName(trimmed),
		})
	}
	return entries
}

// DeriveName returns the package name of a requirement line: the text
// before the first exact-version separator, or the whole line.
func DeriveName(line string) string {
	if idx := strings.Index(line, exactSeparator); idx != -1 {
		return strings.TrimSpace(line[:idx])
	}
	return strings.TrimSpace(line)
}

// RenderEntry formats an entry for output. Pinned entries become
// name==version; unresolved ones are emitted as originally written.
func RenderEntry(entry types.ManifestEntry) string {
	if !entry.Pinned() {
		return entry.Raw
	}
	return entry.Name + exactSeparator + entry.Version
}

// RenderManifest joins the rendered entries with newlines and appends a
// single trailing newline.
func RenderManifest(entries []types.ManifestEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, RenderEntry(entry))
	}
	return strings.Join(lines, "\n") + "\n"
}
