package types

type MetadataFormat string

const (
	MetadataFormatDistInfo MetadataFormat = "dist-info"
	MetadataFormatEggInfo  MetadataFormat = "egg-info"
)

type EntryStatus string

const (
	EntryStatusPinned     EntryStatus = "pinned"
	EntryStatusUnresolved EntryStatus = "not installed"
)
