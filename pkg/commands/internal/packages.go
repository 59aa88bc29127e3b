package internal

import (
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
)

// LoadOptions selects the packages a command works on
type LoadOptions struct {
	// FS defaults to the real filesystem
	FS filesystem.FS
	// Root is the packages root directory
	Root string
	// PackNames restricts the command to these packages. Empty means all.
	PackNames []string
	// Packs controls discovery and loading
	Packs packs.Options
}

// LoadPackages discovers every package under the root, then keeps the
// requested ones. The returned packages are probed.
func LoadPackages(opts LoadOptions) ([]*packs.Package, error) {
	logger := logging.GetLogger("commands.internal")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	all, err := packs.Discover(fsys, opts.Root, opts.Packs)
	if err != nil {
		return nil, err
	}

	selected, err := packs.Select(all, opts.PackNames)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("discovered", len(all)).
		Int("selected", len(selected)).
		Strs("requested", opts.PackNames).
		Msg("Packages loaded")

	return selected, nil
}
