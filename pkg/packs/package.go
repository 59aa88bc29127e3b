package packs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/symlink"
)

// Package is one package directory and the symlinks it declares, in
// declaration order.
type Package struct {
	Name     string
	Path     string
	Symlinks []*symlink.Symlink
}

// Load reads the declaration file of the package at dir and probes every
// symlink it declares. A missing or unreadable declaration file yields a
// package without symlinks.
func Load(fsys filesystem.FS, dir string, opts Options) *Package {
	logger := logging.GetLogger("packs.load")

	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	pkg := &Package{
		Name: filepath.Base(dir),
		Path: dir,
	}

	declPath := filepath.Join(dir, opts.DeclarationFile)
	content, err := fsys.ReadFile(declPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", declPath).Msg("Cannot read declaration file, treating it as empty")
		}
		return pkg
	}

	symlinks, err := symlink.ParseDeclarations(fsys, dir, bytes.NewReader(content))
	if err != nil {
		logger.Warn().Err(err).Str("path", declPath).Msg("Declaration file only partially read")
	}

	for _, s := range symlinks {
		s.CreateParents = opts.CreateParents
		s.Probe()
	}
	pkg.Symlinks = symlinks

	logger.Trace().
		Str("package", pkg.Name).
		Int("symlinks", len(symlinks)).
		Msg("Loaded package")

	return pkg
}

// Statuses returns the status of every symlink, in declaration order
func (p *Package) Statuses() []symlink.Status {
	statuses := make([]symlink.Status, len(p.Symlinks))
	for i, s := range p.Symlinks {
		statuses[i] = s.Status
	}
	return statuses
}

// Status aggregates the statuses of the package's symlinks
func (p *Package) Status() Summary {
	return Aggregate(p.Statuses())
}
