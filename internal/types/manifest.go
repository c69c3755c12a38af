package types

// ManifestEntry is a single requirement line of a manifest.
type ManifestEntry struct {
	// Raw is the trimmed line as read from the manifest.
	Raw string
	// Name is the package name derived from Raw.
	Name string
	// Version is the resolved installed version, empty when unresolved.
	Version string
}

// Pinned reports whether the entry carries a resolved version.
func (e ManifestEntry) Pinned() bool {
	return e.Version != ""
}

// Manifest is the ordered list of entries read from a manifest file.
type Manifest struct {
	Path    string
	Entries []ManifestEntry
}
