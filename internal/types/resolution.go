package types

// Resolution is the outcome of looking up an installed package.
// Found is false when the registry does not know the name.
type Resolution struct {
	Name    string
	Version string
	Found   bool
	Source  string
}

// NotFound returns a Resolution for a name the registry does not know.
func NotFound(name string) Resolution {
	return Resolution{Name: name}
}

// Distribution is an installed package as recorded in a metadata directory.
type Distribution struct {
	Name    string
	Version string
	Path    string
	Format  MetadataFormat
}
