package packs

import (
	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/logging"
)

// Select filters packages by name. No names selects every package. The
// result keeps the order of all.
func Select(all []*Package, names []string) ([]*Package, error) {
	logger := logging.GetLogger("packs.selection")

	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []*Package
	for _, pkg := range all {
		if wanted[pkg.Name] {
			selected = append(selected, pkg)
			delete(wanted, pkg.Name)
			logger.Trace().Str("name", pkg.Name).Msg("Selected package")
		}
	}

	if len(wanted) > 0 {
		var notFound []string
		for _, name := range names {
			if wanted[name] {
				notFound = append(notFound, name)
				delete(wanted, name)
			}
		}
		return nil, errors.New(errors.ErrPackageNotFound, "package(s) not found").
			WithDetail("notFound", notFound).
			WithDetail("available", Names(all))
	}

	logger.Info().
		Int("selected", len(selected)).
		Int("total", len(all)).
		Msg("Selected packages")

	return selected, nil
}

// Names returns the names of packages
func Names(packages []*Package) []string {
	names := make([]string, len(packages))
	for i, pkg := range packages {
		names[i] = pkg.Name
	}
	return names
}
