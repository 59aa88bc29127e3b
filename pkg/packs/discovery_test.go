package packs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddPackage("zsh").Declare("~/.zsh")
	env.AddPackage("fish")
	env.AddPackage("vim").Ignore()
	env.AddPackage(".git")
	env.WriteRootFile("README.md", "# dotfiles")

	elsewhere := filepath.Join(filepath.Dir(env.Root), "shared")
	require.NoError(t, os.MkdirAll(elsewhere, 0755))
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(env.Root, "shared")))

	found, err := packs.Discover(filesystem.NewOS(), env.Root, packs.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"fish", "shared", "zsh"}, packs.Names(found))
	assert.Len(t, found[2].Symlinks, 1)
}

func TestDiscoverIgnorePatterns(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddPackage("fish")
	env.AddPackage("old-fish")
	env.AddPackage("old-vim")

	opts := packs.DefaultOptions()
	opts.Ignore = []string{"old-*"}

	found, err := packs.Discover(filesystem.NewOS(), env.Root, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"fish"}, packs.Names(found))
}

func TestDiscoverEmptyRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	found, err := packs.Discover(filesystem.NewOS(), env.Root, packs.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscoverRootErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("missing root", func(t *testing.T) {
		_, err := packs.Discover(filesystem.NewOS(), filepath.Join(env.Root, "nope"), packs.DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootAccess))
	})

	t.Run("root is a file", func(t *testing.T) {
		file := env.WriteRootFile("file", "")
		_, err := packs.Discover(filesystem.NewOS(), file, packs.DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootAccess))
		assert.Equal(t, file, errors.GetErrorDetails(err)["path"])
	})
}
