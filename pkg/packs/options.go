package packs

import "github.com/arthur-debert/home-symlink/pkg/paths"

// Options controls discovery and loading
type Options struct {
	// DeclarationFile is the name of the file listing a package's symlinks
	DeclarationFile string

	// IgnoreMarker makes discovery skip a directory containing it
	IgnoreMarker string

	// Ignore holds glob patterns matched against directory names
	Ignore []string

	// CreateParents is copied onto every loaded symlink
	CreateParents bool
}

// DefaultOptions returns the options used when no configuration applies
func DefaultOptions() Options {
	return Options{
		DeclarationFile: paths.DeclarationFile,
		IgnoreMarker:    paths.IgnoreMarker,
		Ignore:          []string{".git"},
		CreateParents:   true,
	}
}
