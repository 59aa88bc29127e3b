package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/home-symlink/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is a packages root and a home directory in a temporary
// directory.
type TestEnvironment struct {
	Root string
	Home string

	t       *testing.T
	tempDir string
}

// NewTestEnvironment creates the directories and sets HOME,
// HOME_SYMLINK_DIR and the config and state overrides for the duration of
// the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	// Canonical, so expectations compare equal to canonicalized sources.
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &TestEnvironment{
		Root:    filepath.Join(tempDir, "dotfiles"),
		Home:    filepath.Join(tempDir, "home"),
		t:       t,
		tempDir: tempDir,
	}

	require.NoError(t, os.MkdirAll(env.Root, 0755))
	require.NoError(t, os.MkdirAll(env.Home, 0755))

	t.Setenv(paths.EnvHome, env.Home)
	t.Setenv(paths.EnvRootDir, env.Root)
	t.Setenv(paths.EnvConfigDir, filepath.Join(tempDir, "config"))
	t.Setenv(paths.EnvStateDir, filepath.Join(tempDir, "state"))

	return env
}

// HomePath joins elem onto the home directory
func (e *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{e.Home}, elem...)...)
}

// WriteHomeFile creates a regular file under the home directory, creating
// parents as needed.
func (e *TestEnvironment) WriteHomeFile(rel, content string) string {
	e.t.Helper()
	path := e.HomePath(rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteRootFile creates a file directly in the packages root
func (e *TestEnvironment) WriteRootFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Root, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}
