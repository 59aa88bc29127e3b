// Package paths provides centralized path handling for home-symlink.
// It resolves the packages root directory, expands the home shorthand in
// declared paths and locates the XDG directories used for configuration
// and logs.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/home-symlink/pkg/errors"
)

// Environment variable names
const (
	// EnvRootDir names the packages root when --dir is not given
	EnvRootDir = "HOME_SYMLINK_DIR"

	// EnvConfigDir overrides the XDG config directory for home-symlink
	EnvConfigDir = "HOME_SYMLINK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for home-symlink
	EnvStateDir = "HOME_SYMLINK_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG directories
	AppDirName = "home-symlink"

	// DeclarationFile is the default name of a package's declaration file
	DeclarationFile = ".symlink"

	// IgnoreMarker makes discovery skip the package directory holding it
	IgnoreMarker = ".home-symlink-ignore"

	// RootConfigFile is the optional configuration file inside the root
	RootConfigFile = ".home-symlink.toml"

	// UserConfigFile is the configuration file inside the config directory
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "home-symlink.log"
)

// homePrefix is the shorthand replaced by ExpandHome
const homePrefix = "~/"

// ExpandHome replaces a leading "~/" with the value of $HOME. The rest of
// the path is appended verbatim, not cleaned. When the path has no such
// prefix, or HOME is unset, the path is returned as is.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, homePrefix) {
		return path
	}

	home := os.Getenv(EnvHome)
	if home == "" {
		return path
	}

	return home + string(filepath.Separator) + path[len(homePrefix):]
}

// ResolveRoot determines the packages root directory using the following
// priority:
//  1. the explicit value (usually the --dir flag)
//  2. the HOME_SYMLINK_DIR environment variable
//  3. the configured value (the "root" configuration key)
//
// The result is home-expanded and absolute. It is an error for all three
// to be empty.
func ResolveRoot(explicit, configured string) (string, error) {
	root := explicit
	if root == "" {
		root = os.Getenv(EnvRootDir)
	}
	if root == "" {
		root = configured
	}
	if root == "" {
		return "", errors.Newf(errors.ErrRootUnset,
			"no packages root: pass --dir or set %s", EnvRootDir)
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootAccess, "failed to get absolute path for root").
			WithDetail("path", root)
	}
	return abs, nil
}

// ConfigDir returns the configuration directory for home-symlink
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory for home-symlink
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the path of the per-user configuration file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// RootConfigPath returns the path of the configuration file inside root
func RootConfigPath(root string) string {
	return filepath.Join(root, RootConfigFile)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
