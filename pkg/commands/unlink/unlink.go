package unlink

import (
	"github.com/arthur-debert/home-symlink/pkg/commands/internal"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/symlink"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// UnlinkPacksOptions defines the options for the UnlinkPacks command.
type UnlinkPacksOptions struct {
	// FS defaults to the real filesystem.
	FS filesystem.FS
	// Root is the path to the packages root directory.
	Root string
	// PackNames is a list of specific packages to unlink. If empty, all packages are unlinked.
	PackNames []string
	// Packs controls package discovery and loading.
	Packs packs.Options
	// Force removes destinations without checking they point at the source.
	Force bool
	// DryRun reports what would be unlinked without touching the filesystem.
	DryRun bool
}

// UnlinkPacks removes every declared symlink that is not already
// unlinked. Destinations not created by home-symlink are left alone
// unless Force is set.
func UnlinkPacks(opts UnlinkPacksOptions) (*types.DisplayResult, error) {
	log := logging.GetLogger("commands.unlink")
	log.Debug().Str("command", "UnlinkPacks").Bool("force", opts.Force).Msg("Executing command")
	defer logging.LogOperationStart(log, "unlink")()

	pkgs, err := internal.LoadPackages(internal.LoadOptions{
		FS:        opts.FS,
		Root:      opts.Root,
		PackNames: opts.PackNames,
		Packs:     opts.Packs,
	})
	if err != nil {
		log.Error().Err(err).Msg("Unlink failed")
		return nil, err
	}

	return internal.Run(pkgs, internal.Transition{
		Command: "unlink",
		Action:  types.ActionUnlink,
		Skip:    symlink.Status.IsUnlinked,
		Apply: func(s *symlink.Symlink) {
			s.Unlink(opts.Force)
		},
	}, opts.DryRun), nil
}
