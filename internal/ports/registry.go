package ports

import "reqpin/internal/types"

type RegistrySnapshotWriterPort interface {
	WriteSnapshot(path string, snapshot types.RegistrySnapshotFile) error
}
