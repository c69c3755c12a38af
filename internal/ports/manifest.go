package ports

// ManifestPort reads and rewrites requirement manifests.
type ManifestPort interface {
	// ReadLines returns every line of the manifest, untrimmed and in order.
	ReadLines(path string) ([]string, error)
	// WriteContent overwrites the manifest with content.
	WriteContent(path string, content string) error
}
