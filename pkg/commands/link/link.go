package link

import (
	"github.com/arthur-debert/home-symlink/pkg/commands/internal"
	"github.com/arthur-debert/home-symlink/pkg/filesystem"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/symlink"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// LinkPacksOptions defines the options for the LinkPacks command.
type LinkPacksOptions struct {
	// FS defaults to the real filesystem.
	FS filesystem.FS
	// Root is the path to the packages root directory.
	Root string
	// PackNames is a list of specific packages to link. If empty, all packages are linked.
	PackNames []string
	// Packs controls package discovery and loading.
	Packs packs.Options
	// Force removes whatever occupies a destination before linking.
	Force bool
	// DryRun reports what would be linked without touching the filesystem.
	DryRun bool
}

// LinkPacks creates every declared symlink that is not already linked.
func LinkPacks(opts LinkPacksOptions) (*types.DisplayResult, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "LinkPacks").Bool("force", opts.Force).Msg("Executing command")
	defer logging.LogOperationStart(log, "link")()

	pkgs, err := internal.LoadPackages(internal.LoadOptions{
		FS:        opts.FS,
		Root:      opts.Root,
		PackNames: opts.PackNames,
		Packs:     opts.Packs,
	})
	if err != nil {
		log.Error().Err(err).Msg("Link failed")
		return nil, err
	}

	return internal.Run(pkgs, internal.Transition{
		Command: "link",
		Action:  types.ActionLink,
		Skip:    symlink.Status.IsLinked,
		Apply: func(s *symlink.Symlink) {
			s.Link(opts.Force)
		},
	}, opts.DryRun), nil
}
