package symlink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture is a package directory "fish" holding config.fish, and an
// empty home directory.
type fixture struct {
	pkg  string
	home string
	file string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	f := fixture{
		pkg:  filepath.Join(tmp, "dots", "fish"),
		home: filepath.Join(tmp, "home"),
	}
	f.file = filepath.Join(f.pkg, "config.fish")

	require.NoError(t, os.MkdirAll(f.pkg, 0755))
	require.NoError(t, os.MkdirAll(f.home, 0755))
	require.NoError(t, os.WriteFile(f.file, []byte("set -x EDITOR vim\n"), 0644))
	return f
}

func (f fixture) mapped(to string) *Symlink {
	return New(filesystem.NewOS(), f.pkg, Mapped{From: "config.fish", To: to})
}

func readlink(t *testing.T, path string) string {
	t.Helper()
	target, err := os.Readlink(path)
	require.NoError(t, err)
	return target
}

func TestFromPath(t *testing.T) {
	f := newFixture(t)

	t.Run("mapped resolves relative to base", func(t *testing.T) {
		s := f.mapped(filepath.Join(f.home, "config.fish"))
		assert.Equal(t, f.file, s.FromPath())
		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("whole resolves to the package directory", func(t *testing.T) {
		s := New(filesystem.NewOS(), f.pkg, Whole{Target: filepath.Join(f.home, "fish")})
		assert.Equal(t, f.pkg, s.FromPath())
	})

	t.Run("absolute source ignores base", func(t *testing.T) {
		s := New(filesystem.NewOS(), "/elsewhere", Mapped{From: f.file, To: "/x"})
		assert.Equal(t, f.file, s.Source())
		assert.Equal(t, f.file, s.FromPath())
	})

	t.Run("source through a symlinked directory is canonical", func(t *testing.T) {
		alias := filepath.Join(f.home, "alias")
		require.NoError(t, os.Symlink(f.pkg, alias))
		s := New(filesystem.NewOS(), alias, Mapped{From: "config.fish", To: "/x"})
		assert.Equal(t, f.file, s.FromPath())
	})

	t.Run("missing source sets an error and returns empty", func(t *testing.T) {
		s := New(filesystem.NewOS(), f.pkg, Mapped{From: "missing.fish", To: "/x"})
		assert.Equal(t, "", s.FromPath())
		assert.True(t, s.Status.IsError())
		assert.Contains(t, s.Status.Reason, "no such file or directory")
	})

	t.Run("destination is returned verbatim", func(t *testing.T) {
		s := f.mapped("/does/not/../exist")
		assert.Equal(t, "/does/not/../exist", s.ToPath())
	})
}

func TestProbe(t *testing.T) {
	t.Run("nothing at destination", func(t *testing.T) {
		f := newFixture(t)
		s := f.mapped(filepath.Join(f.home, "config.fish"))
		s.Probe()
		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("symlink to the source", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.Symlink(f.file, to))

		s := f.mapped(to)
		s.Probe()
		assert.Equal(t, Linked(), s.Status)
	})

	t.Run("symlink elsewhere", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.Symlink("/etc/hosts", to))

		s := f.mapped(to)
		s.Probe()
		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("relative symlink does not count", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.pkg, "alias.fish")
		require.NoError(t, os.Symlink("config.fish", to))

		s := f.mapped(to)
		s.Probe()
		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("regular file", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.WriteFile(to, []byte("mine"), 0644))

		s := f.mapped(to)
		s.Probe()
		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("missing source", func(t *testing.T) {
		f := newFixture(t)
		s := New(filesystem.NewOS(), f.pkg, Mapped{From: "gone", To: filepath.Join(f.home, "gone")})
		s.Probe()
		assert.True(t, s.Status.IsError())
	})

	t.Run("idempotent", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.Symlink(f.file, to))

		s := f.mapped(to)
		s.Probe()
		first := s.Status
		s.Probe()
		assert.Equal(t, first, s.Status)

		other := New(filesystem.NewOS(), f.pkg, Mapped{From: "gone", To: to})
		other.Probe()
		firstErr := other.Status
		other.Probe()
		assert.Equal(t, firstErr, other.Status)
	})
}

func TestLink(t *testing.T) {
	t.Run("creates the symlink", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		s := f.mapped(to)

		s.Link(false)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.file, readlink(t, to))

		s.Probe()
		assert.Equal(t, Linked(), s.Status)
	})

	t.Run("whole package", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "fish")
		s := New(filesystem.NewOS(), f.pkg, Whole{Target: to})

		s.Link(false)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.pkg, readlink(t, to))
	})

	t.Run("occupied destination without force", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.WriteFile(to, []byte("mine"), 0644))
		s := f.mapped(to)

		s.Link(false)

		assert.True(t, s.Status.IsError())
		assert.Contains(t, s.Status.Reason, "file exists")
		content, err := os.ReadFile(to)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(content))
	})

	t.Run("force replaces a file", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.WriteFile(to, []byte("mine"), 0644))
		s := f.mapped(to)

		s.Link(true)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.file, readlink(t, to))
	})

	t.Run("force replaces a directory tree", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "fish")
		require.NoError(t, os.MkdirAll(filepath.Join(to, "functions"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(to, "functions", "ls.fish"), nil, 0644))
		s := New(filesystem.NewOS(), f.pkg, Whole{Target: to})

		s.Link(true)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.pkg, readlink(t, to))
	})

	t.Run("force replaces a foreign symlink without following it", func(t *testing.T) {
		f := newFixture(t)
		foreign := filepath.Join(f.home, "foreign")
		require.NoError(t, os.MkdirAll(foreign, 0755))
		to := filepath.Join(f.home, "fish")
		require.NoError(t, os.Symlink(foreign, to))
		s := New(filesystem.NewOS(), f.pkg, Whole{Target: to})

		s.Link(true)

		assert.Equal(t, Linked(), s.Status)
		_, err := os.Stat(foreign)
		assert.NoError(t, err, "the directory behind the old link must survive")
	})

	t.Run("force with an empty destination still links", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		s := f.mapped(to)

		s.Link(true)

		assert.Equal(t, Linked(), s.Status)
	})

	t.Run("missing source creates nothing", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "gone")
		s := New(filesystem.NewOS(), f.pkg, Mapped{From: "gone", To: to})

		s.Link(false)

		assert.True(t, s.Status.IsError())
		_, err := os.Lstat(to)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("force with a missing source keeps the destination", func(t *testing.T) {
		f := newFixture(t)
		file := filepath.Join(f.home, "gone")
		require.NoError(t, os.WriteFile(file, []byte("mine"), 0644))
		dir := filepath.Join(f.home, "gone.d")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))

		for _, to := range []string{file, dir} {
			s := New(filesystem.NewOS(), f.pkg, Mapped{From: "gone", To: to})

			s.Link(true)

			assert.True(t, s.Status.IsError())
			assert.Contains(t, s.Status.Reason, "no such file or directory")
		}

		content, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(content))
		_, err = os.Stat(filepath.Join(dir, "nested"))
		assert.NoError(t, err)
	})

	t.Run("empty destination is an error", func(t *testing.T) {
		f := newFixture(t)
		s := f.mapped("")

		s.Probe()
		assert.Equal(t, Unlinked(), s.Status)

		s.Link(false)
		assert.True(t, s.Status.IsError())
	})

	t.Run("empty source links the package directory", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "fish")
		s := New(filesystem.NewOS(), f.pkg, Mapped{From: "", To: to})

		s.Link(false)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.pkg, readlink(t, to))
	})

	t.Run("missing parent without CreateParents", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, ".config", "fish", "config.fish")
		s := f.mapped(to)

		s.Link(false)

		assert.True(t, s.Status.IsError())
		assert.Contains(t, s.Status.Reason, "no such file or directory")
	})

	t.Run("missing parent with CreateParents", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, ".config", "fish", "config.fish")
		s := f.mapped(to)
		s.CreateParents = true

		s.Link(false)

		assert.Equal(t, Linked(), s.Status)
		assert.Equal(t, f.file, readlink(t, to))
	})
}

func TestUnlink(t *testing.T) {
	t.Run("removes its own symlink", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		s := f.mapped(to)
		s.Link(false)
		require.Equal(t, Linked(), s.Status)

		s.Unlink(false)

		assert.Equal(t, Unlinked(), s.Status)
		_, err := os.Lstat(to)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(f.file)
		assert.NoError(t, err, "the source must survive")
	})

	t.Run("refuses a symlink pointing elsewhere", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.Symlink("/etc/hosts", to))
		s := f.mapped(to)

		s.Unlink(false)

		assert.Equal(t, Errored(NotOwnedReason), s.Status)
		assert.Equal(t, "/etc/hosts", readlink(t, to))
	})

	t.Run("refuses a regular file", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.WriteFile(to, []byte("mine"), 0644))
		s := f.mapped(to)

		s.Unlink(false)

		assert.Equal(t, Errored(NotOwnedReason), s.Status)
		content, err := os.ReadFile(to)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(content))
	})

	t.Run("refuses when nothing is there", func(t *testing.T) {
		f := newFixture(t)
		s := f.mapped(filepath.Join(f.home, "config.fish"))

		s.Unlink(false)

		assert.Equal(t, Errored(NotOwnedReason), s.Status)
	})

	t.Run("refuses when the source is gone", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		s := f.mapped(to)
		s.Link(false)
		require.NoError(t, os.Remove(f.file))

		s.Unlink(false)

		assert.Equal(t, Errored(NotOwnedReason), s.Status)
		_, err := os.Lstat(to)
		assert.NoError(t, err)
	})

	t.Run("force removes a regular file", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		require.NoError(t, os.WriteFile(to, []byte("mine"), 0644))
		s := f.mapped(to)

		s.Unlink(true)

		assert.Equal(t, Unlinked(), s.Status)
		_, err := os.Lstat(to)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("force removes its own symlink", func(t *testing.T) {
		f := newFixture(t)
		to := filepath.Join(f.home, "config.fish")
		s := f.mapped(to)
		s.Link(false)

		s.Unlink(true)

		assert.Equal(t, Unlinked(), s.Status)
	})

	t.Run("force on a missing destination reports the removal error", func(t *testing.T) {
		f := newFixture(t)
		s := f.mapped(filepath.Join(f.home, "config.fish"))

		s.Unlink(true)

		assert.True(t, s.Status.IsError())
		assert.Contains(t, s.Status.Reason, "no such file or directory")
	})
}
