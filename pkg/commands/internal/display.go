package internal

import (
	"time"

	"github.com/arthur-debert/home-symlink/pkg/packs"
	"github.com/arthur-debert/home-symlink/pkg/symlink"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// NewDisplayResult converts packages to a DisplayResult. actions holds
// the symlinks the command acted on; it may be nil.
func NewDisplayResult(command string, pkgs []*packs.Package, actions map[*symlink.Symlink]types.Action, dryRun bool) *types.DisplayResult {
	result := &types.DisplayResult{
		Command:   command,
		Packs:     make([]types.DisplayPack, 0, len(pkgs)),
		DryRun:    dryRun,
		Timestamp: time.Now(),
	}

	for _, pkg := range pkgs {
		result.Packs = append(result.Packs, ToDisplayPack(pkg, actions))
	}

	return result
}

// ToDisplayPack converts one package
func ToDisplayPack(pkg *packs.Package, actions map[*symlink.Symlink]types.Action) types.DisplayPack {
	summary := pkg.Status()

	dp := types.DisplayPack{
		Name:     pkg.Name,
		Path:     pkg.Path,
		Status:   summary.Label(),
		Summary:  summary.String(),
		Symlinks: make([]types.DisplaySymlink, 0, len(pkg.Symlinks)),
	}

	for _, s := range pkg.Symlinks {
		dp.Symlinks = append(dp.Symlinks, types.DisplaySymlink{
			Kind:        kindName(s.Kind),
			Source:      s.Source(),
			Destination: s.ToPath(),
			Status:      s.Status.State.String(),
			Reason:      s.Status.Reason,
			Action:      actions[s],
			Label:       s.Status.String(),
		})
	}

	return dp
}

func kindName(kind symlink.Kind) string {
	switch kind.(type) {
	case symlink.Whole:
		return "whole"
	case symlink.Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}
