package homesymlink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/paths"
	"github.com/arthur-debert/home-symlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func setupFish(t *testing.T) (*testutil.TestEnvironment, string) {
	t.Helper()

	env := testutil.NewTestEnvironment(t)
	fish := env.AddPackage("fish")
	source := fish.AddFile("config.fish", "set -x EDITOR vim")
	fish.Declare("config.fish = ~/.config/fish/config.fish")
	return env, source
}

func TestLinkCmd(t *testing.T) {
	env, source := setupFish(t)

	out, err := run(t, "--format", "text", "link")
	require.NoError(t, err)

	assert.Contains(t, out, "fish - (✓) Linked")
	assert.Contains(t, out, "1 changed, 0 failed, 0 skipped")

	target, err := os.Readlink(env.HomePath(".config", "fish", "config.fish"))
	require.NoError(t, err)
	assert.Equal(t, source, target)
}

func TestLinkCmdAlias(t *testing.T) {
	env, _ := setupFish(t)

	_, err := run(t, "--format", "text", "l", "fish")
	require.NoError(t, err)

	_, err = os.Lstat(env.HomePath(".config", "fish", "config.fish"))
	assert.NoError(t, err)
}

func TestLinkCmdDryRun(t *testing.T) {
	env, _ := setupFish(t)

	out, err := run(t, "--format", "text", "--dry-run", "link")
	require.NoError(t, err)

	assert.Contains(t, out, "(would link)")
	_, err = os.Lstat(env.HomePath(".config", "fish", "config.fish"))
	assert.True(t, os.IsNotExist(err))
}

func TestLinkCmdForce(t *testing.T) {
	env, source := setupFish(t)
	env.WriteHomeFile(".config/fish/config.fish", "old")

	out, err := run(t, "--format", "text", "link")
	require.NoError(t, err, "per-symlink failures are not command errors")
	assert.Contains(t, out, "(X) Error:")

	_, err = run(t, "--format", "text", "link", "--force")
	require.NoError(t, err)

	target, err := os.Readlink(env.HomePath(".config", "fish", "config.fish"))
	require.NoError(t, err)
	assert.Equal(t, source, target)
}

func TestUnlinkCmd(t *testing.T) {
	env, source := setupFish(t)
	require.NoError(t, os.MkdirAll(env.HomePath(".config", "fish"), 0755))
	require.NoError(t, os.Symlink(source, env.HomePath(".config", "fish", "config.fish")))

	out, err := run(t, "--format", "text", "unlink", "fish")
	require.NoError(t, err)
	assert.Contains(t, out, "fish - (X) Unlinked")

	_, err = os.Lstat(env.HomePath(".config", "fish", "config.fish"))
	assert.True(t, os.IsNotExist(err))
}

func TestStatusCmd(t *testing.T) {
	env, _ := setupFish(t)

	out, err := run(t, "--format", "text", "status")
	require.NoError(t, err)

	expected := "fish - (X) Unlinked\n" +
		"  " + filepath.Join(env.Root, "fish", "config.fish") + " -> " +
		env.HomePath(".config", "fish", "config.fish") + " - (X) Unlinked\n"
	assert.Equal(t, expected, out)
}

func TestStatusCmdJSON(t *testing.T) {
	setupFish(t)

	out, err := run(t, "--format", "json", "s")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "status", doc["command"])
}

func TestStatusCmdFormatFromConfig(t *testing.T) {
	env, _ := setupFish(t)
	env.WriteRootFile(paths.RootConfigFile, "[output]\nformat = \"yaml\"\n")

	out, err := run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "command: status")
}

func TestListCmd(t *testing.T) {
	env, _ := setupFish(t)
	env.AddPackage("vim")

	out, err := run(t, "--format", "text", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "fish")
	assert.Contains(t, out, "vim")
	assert.Contains(t, out, "empty")
}

func TestDirFlag(t *testing.T) {
	env, _ := setupFish(t)
	other := filepath.Join(filepath.Dir(env.Root), "other")
	require.NoError(t, os.MkdirAll(filepath.Join(other, "zsh"), 0755))

	out, err := run(t, "--format", "text", "--dir", other, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "zsh")
	assert.NotContains(t, out, "fish")
}

func TestConfigCmd(t *testing.T) {
	env, _ := setupFish(t)

	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, env.Root)
	assert.Contains(t, out, "declaration_file")
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "home-symlink version")
}

func TestCompletionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "home-symlink")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestFatalErrors(t *testing.T) {
	t.Run("unknown package", func(t *testing.T) {
		setupFish(t)
		_, err := run(t, "--format", "text", "link", "emacs")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPackageNotFound))
	})

	t.Run("unknown format", func(t *testing.T) {
		setupFish(t)
		_, err := run(t, "--format", "xml", "status")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("root unset", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		t.Setenv(paths.EnvRootDir, "")
		_, err := run(t, "status")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootUnset))
	})

	t.Run("missing root", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		_, err := run(t, "--dir", filepath.Join(env.Root, "missing"), "status")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootAccess))
	})

	t.Run("no command", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := run(t)
		assert.Error(t, err)
	})
}
