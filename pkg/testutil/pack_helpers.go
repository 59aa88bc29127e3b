package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/home-symlink/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestPackage is a package directory inside a TestEnvironment
type TestPackage struct {
	Name string
	Dir  string

	t *testing.T
}

// AddPackage creates an empty package directory
func (e *TestEnvironment) AddPackage(name string) *TestPackage {
	e.t.Helper()

	dir := filepath.Join(e.Root, name)
	require.NoError(e.t, os.MkdirAll(dir, 0755))

	return &TestPackage{Name: name, Dir: dir, t: e.t}
}

// AddFile adds a file to the package and returns its path
func (p *TestPackage) AddFile(rel, content string) string {
	p.t.Helper()

	path := filepath.Join(p.Dir, rel)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Declare writes the declaration file, one line per argument
func (p *TestPackage) Declare(lines ...string) *TestPackage {
	p.t.Helper()

	p.AddFile(paths.DeclarationFile, strings.Join(lines, "\n")+"\n")
	return p
}

// Ignore drops the ignore marker into the package
func (p *TestPackage) Ignore() *TestPackage {
	p.t.Helper()

	p.AddFile(paths.IgnoreMarker, "")
	return p
}
