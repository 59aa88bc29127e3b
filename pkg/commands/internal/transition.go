package internal

import (
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/symlink"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// Transition describes a batch operation over every symlink of the
// selected packages.
type Transition struct {
	Command string
	Action  types.Action

	// Skip reports the symlinks already in the wanted state
	Skip func(symlink.Status) bool

	// Apply performs the operation on one symlink
	Apply func(*symlink.Symlink)
}

// Run applies t to each symlink in package then declaration order. A
// failing symlink is counted and the batch continues. In a dry run
// nothing is applied and statuses are left as probed.
func Run(pkgs []*packs.Package, t Transition, dryRun bool) *types.DisplayResult {
	logger := logging.GetLogger("commands." + t.Command)

	actions := make(map[*symlink.Symlink]types.Action)
	var changed, failed, skipped int

	for _, pkg := range pkgs {
		for _, s := range pkg.Symlinks {
			if t.Skip(s.Status) {
				skipped++
				continue
			}

			actions[s] = t.Action

			if dryRun {
				logger.Info().
					Str("package", pkg.Name).
					Str("source", s.Source()).
					Str("to", s.ToPath()).
					Str("action", string(t.Action)).
					Msg("Dry run, not applying")
				changed++
				continue
			}

			t.Apply(s)

			if s.Status.IsError() {
				failed++
				continue
			}
			changed++
		}
	}

	result := NewDisplayResult(t.Command, pkgs, actions, dryRun)
	result.Changed = changed
	result.Failed = failed
	result.Skipped = skipped

	logger.Info().
		Int("changed", changed).
		Int("failed", failed).
		Int("skipped", skipped).
		Bool("dryRun", dryRun).
		Msg("Command finished")

	return result
}
