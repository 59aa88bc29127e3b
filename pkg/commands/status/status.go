package status

import (
	"github.com/arthur-debert/home-symlink/pkg/commands/internal"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// StatusPacksOptions defines the options for the StatusPacks command.
type StatusPacksOptions struct {
	FS        filesystem.FS
	Root      string
	PackNames []string
	Packs     packs.Options
}

// StatusPacks reports the probed status of every declared symlink. It
// never modifies the filesystem.
func StatusPacks(opts StatusPacksOptions) (*types.DisplayResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "StatusPacks").Msg("Executing command")

	pkgs, err := internal.LoadPackages(internal.LoadOptions{
		FS:        opts.FS,
		Root:      opts.Root,
		PackNames: opts.PackNames,
		Packs:     opts.Packs,
	})
	if err != nil {
		return nil, err
	}

	result := internal.NewDisplayResult("status", pkgs, nil, false)
	for _, pkg := range pkgs {
		for _, s := range pkg.Symlinks {
			if s.Status.IsError() {
				result.Failed++
			}
		}
	}

	log.Info().Str("command", "StatusPacks").Int("packCount", len(pkgs)).Msg("Command finished")
	return result, nil
}
