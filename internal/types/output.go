package types

// PinReport summarises one pin run.
type PinReport struct {
	ManifestPath string
	Entries      []ManifestEntry
	Unresolved   []string
	Content      string
	Written      bool
}

// InspectRecord describes one manifest entry without rewriting it.
type InspectRecord struct {
	Name    string
	Current string
	Version string
	Status  EntryStatus
	Source  string
}
