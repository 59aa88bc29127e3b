package list

import (
	"github.com/arthur-debert/home-symlink/pkg/commands/internal"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// ListPacksOptions defines the options for the ListPacks command.
type ListPacksOptions struct {
	FS filesystem.FS
	// Root is the path to the packages root directory.
	Root  string
	Packs packs.Options
}

// ListPacks finds all packages in the root directory.
func ListPacks(opts ListPacksOptions) (*types.ListPacksResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListPacks").Msg("Executing command")

	pkgs, err := internal.LoadPackages(internal.LoadOptions{
		FS:    opts.FS,
		Root:  opts.Root,
		Packs: opts.Packs,
	})
	if err != nil {
		return nil, err
	}

	result := &types.ListPacksResult{
		Packs: make([]types.PackInfo, len(pkgs)),
	}

	for i, p := range pkgs {
		result.Packs[i] = types.PackInfo{
			Name:     p.Name,
			Path:     p.Path,
			Symlinks: len(p.Symlinks),
			Status:   p.Status().Label(),
		}
	}

	log.Info().Str("command", "ListPacks").Int("packCount", len(result.Packs)).Msg("Command finished")
	return result, nil
}
