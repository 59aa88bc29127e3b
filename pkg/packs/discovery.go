package packs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
)

// Discover loads one Package per immediate subdirectory of root, sorted
// by name. Directories matching an ignore pattern or holding the ignore
// marker are skipped. An unreadable root is the only error.
func Discover(fsys filesystem.FS, root string, opts Options) ([]*Package, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", root).Msg("Discovering packages")

	candidates, err := candidates(fsys, root, opts)
	if err != nil {
		return nil, err
	}

	packages := make([]*Package, 0, len(candidates))
	for _, dir := range candidates {
		packages = append(packages, Load(fsys, dir, opts))
	}

	logger.Info().Int("count", len(packages)).Str("root", root).Msg("Discovered packages")
	return packages, nil
}

// candidates returns the package directories under root
func candidates(fsys filesystem.FS, root string, opts Options) ([]string, error) {
	logger := logging.GetLogger("packs.discovery")

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrRootAccess, "packages root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrRootAccess, "cannot access packages root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrRootAccess, "packages root is not a directory").
			WithDetail("path", root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRootAccess, "cannot read packages root").
			WithDetail("path", root)
	}

	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		if shouldIgnoreWithPatterns(name, opts.Ignore) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}

		if !isDir(fsys, entry, path) {
			logger.Trace().Str("name", name).Msg("Skipping non-directory entry")
			continue
		}

		if hasIgnoreMarker(fsys, path, opts.IgnoreMarker) {
			logger.Info().Str("package", name).Msg("Package is skipped due to ignore marker")
			continue
		}

		dirs = append(dirs, path)
	}

	sort.Strings(dirs)
	return dirs, nil
}

// isDir reports whether entry is a directory, following a symlinked entry
// to its target.
func isDir(fsys filesystem.FS, entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// shouldIgnoreWithPatterns checks if a name matches any ignore pattern
func shouldIgnoreWithPatterns(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// hasIgnoreMarker checks if a directory contains the ignore marker
func hasIgnoreMarker(fsys filesystem.FS, dir, marker string) bool {
	if marker == "" {
		return false
	}
	_, err := fsys.Stat(filepath.Join(dir, marker))
	return err == nil
}
