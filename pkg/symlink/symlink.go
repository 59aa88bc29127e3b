package symlink

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/rs/zerolog"
)

// NotOwnedReason is the status reason of an unlink that was refused
// because the destination is not the symlink home-symlink created.
const NotOwnedReason = "Symlink wasn't created by home-symlink."

// Symlink is one declared symlink of a package together with its live
// status.
type Symlink struct {
	Kind Kind

	// Base is the package directory. It is a copy of the path, not a
	// reference to the package.
	Base string

	Status Status

	// CreateParents makes Link create missing parent directories of the
	// destination.
	CreateParents bool

	fs     filesystem.FS
	logger zerolog.Logger
}

// New creates an Unlinked symlink of the given kind for the package at
// base.
func New(fsys filesystem.FS, base string, kind Kind) *Symlink {
	return &Symlink{
		Kind:   kind,
		Base:   base,
		Status: Unlinked(),
		fs:     fsys,
		logger: logging.GetLogger("symlink"),
	}
}

// Source returns the declared source path, before canonicalization. This
// is the path shown in reports.
func (s *Symlink) Source() string {
	switch k := s.Kind.(type) {
	case Mapped:
		if filepath.IsAbs(k.From) {
			return k.From
		}
		return filepath.Join(s.Base, k.From)
	default:
		return s.Base
	}
}

// FromPath returns the canonical source path. When the source cannot be
// resolved the status becomes an error and FromPath returns "", so
// callers have to check Status rather than trust the path.
func (s *Symlink) FromPath() string {
	from, err := s.fs.Canonicalize(s.Source())
	if err != nil {
		s.fail(errors.ErrSymlinkResolve, err)
		return ""
	}
	return from
}

// ToPath returns the destination exactly as declared. It is never
// canonicalized since it may not exist yet.
func (s *Symlink) ToPath() string {
	return s.Kind.Destination()
}

// Probe sets the status from the filesystem: Linked when the destination
// is a symlink to the canonical source, otherwise Unlinked, or an error if
// the source cannot be resolved. Probe does not modify the filesystem.
func (s *Symlink) Probe() {
	s.Status = Unlinked()

	from := s.FromPath()
	if s.pointsTo(s.ToPath(), from) {
		s.Status = Linked()
	}

	s.logger.Trace().
		Str("from", from).
		Str("to", s.ToPath()).
		Str("status", s.Status.State.String()).
		Msg("Probed symlink")
}

// Link creates the destination symlink. With force, whatever occupies the
// destination is removed first: a directory tree, or failing that a file.
// A failed removal is recorded but the creation is still attempted.
func (s *Symlink) Link(force bool) {
	from := s.FromPath()
	if from == "" {
		return
	}
	to := s.ToPath()

	if force {
		if err := s.removeDirectory(to); err != nil {
			if err := s.fs.Remove(to); err != nil {
				s.fail(errors.ErrSymlinkRemove, err)
			} else {
				s.logger.Debug().Str("path", to).Msg("Removed file at destination")
			}
		} else {
			s.logger.Debug().Str("path", to).Msg("Removed directory at destination")
		}
	}

	if s.CreateParents {
		if err := s.fs.MkdirAll(filepath.Dir(to), 0755); err != nil {
			s.fail(errors.ErrSymlinkCreate, err)
			return
		}
	}

	if err := s.fs.Symlink(from, to); err != nil {
		s.fail(errors.ErrSymlinkCreate, err)
		return
	}

	s.logger.Debug().Str("from", from).Str("to", to).Msg("Created symlink")
	s.Status = Linked()
}

// Unlink removes the destination symlink, but only after verifying it
// points at the canonical source. With force the destination is removed
// without that check.
func (s *Symlink) Unlink(force bool) {
	from := s.FromPath()
	to := s.ToPath()

	if force {
		s.remove(to)
		return
	}

	if !s.pointsTo(to, from) {
		s.fail(errors.ErrSymlinkNotOwned, errors.New(errors.ErrSymlinkNotOwned, NotOwnedReason))
		return
	}

	s.remove(to)
}

func (s *Symlink) remove(to string) {
	if err := s.fs.Remove(to); err != nil {
		s.fail(errors.ErrSymlinkRemove, err)
		return
	}

	s.logger.Debug().Str("to", to).Msg("Removed symlink")
	s.Status = Unlinked()
}

// pointsTo reports whether to is a symlink whose recorded target is
// exactly from.
func (s *Symlink) pointsTo(to, from string) bool {
	if from == "" {
		return false
	}
	target, err := s.fs.Readlink(to)
	return err == nil && target == from
}

// removeDirectory removes a real directory tree at path. Symlinks and
// files are not directories and fail with ENOTDIR.
func (s *Symlink) removeDirectory(path string) error {
	info, err := s.fs.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "remove", Path: path, Err: syscall.ENOTDIR}
	}
	return s.fs.RemoveAll(path)
}

func (s *Symlink) fail(code errors.ErrorCode, err error) {
	s.Status = StatusFromError(err)
	s.logger.Warn().
		Str("code", string(code)).
		Str("source", s.Source()).
		Str("to", s.ToPath()).
		Err(err).
		Msg("Symlink operation failed")
}
