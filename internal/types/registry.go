package types

// RegistrySnapshotFile is the on-disk form of a registry snapshot.
type RegistrySnapshotFile struct {
	Python   string            `yaml:"python,omitempty"`
	Packages map[string]string `yaml:"packages"`
}
