package symlink

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/paths"
)

// Kind is the declared shape of a symlink: Whole or Mapped.
type Kind interface {
	// Destination returns where the symlink lives
	Destination() string
	isKind()
}

// Whole links the package directory itself to Target.
type Whole struct {
	Target string
}

// Mapped links From, relative to the package directory, to To.
type Mapped struct {
	From string
	To   string
}

func (w Whole) Destination() string  { return w.Target }
func (m Mapped) Destination() string { return m.To }

func (Whole) isKind()  {}
func (Mapped) isKind() {}

const separator = "="

// ParseKind parses one declaration line. A line without "=" is Whole, any
// other line is Mapped, split on the first "=". Only blank lines report
// false. Empty halves are kept as empty paths and fail later, when the
// symlink is resolved or created.
func ParseKind(line string) (Kind, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	from, to, mapped := strings.Cut(line, separator)
	if !mapped {
		return Whole{Target: paths.ExpandHome(line)}, true
	}

	return Mapped{
		From: paths.ExpandHome(strings.TrimSpace(from)),
		To:   paths.ExpandHome(strings.TrimSpace(to)),
	}, true
}

// ParseDeclaration parses one declaration line of the package at base.
// The returned symlink is Unlinked and has not been probed.
func ParseDeclaration(fsys filesystem.FS, base, line string) (*Symlink, bool) {
	kind, ok := ParseKind(line)
	if !ok {
		return nil, false
	}
	return New(fsys, base, kind), true
}

// ParseDeclarations parses a whole declaration file, skipping the lines
// that declare nothing. Order follows the file.
func ParseDeclarations(fsys filesystem.FS, base string, r io.Reader) ([]*Symlink, error) {
	var symlinks []*Symlink

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s, ok := ParseDeclaration(fsys, base, scanner.Text()); ok {
			symlinks = append(symlinks, s)
		}
	}

	return symlinks, scanner.Err()
}
