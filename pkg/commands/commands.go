// Package commands provides high-level command implementations for
// home-symlink.
//
// Each command is implemented in its own subdirectory:
//   - link/     - LinkPacks command
//   - unlink/   - UnlinkPacks command
//   - status/   - StatusPacks command
//   - list/     - ListPacks command
//   - internal/ - package loading and the shared batch loop
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/home-symlink/pkg/commands/link"
	"github.com/arthur-debert/home-symlink/pkg/commands/list"
	"github.com/arthur-debert/home-symlink/pkg/commands/status"
	"github.com/arthur-debert/home-symlink/pkg/commands/unlink"
	"github.com/arthur-debert/home-symlink/pkg/types"
)

// LinkPacks creates the declared symlinks of the selected packages.
type LinkPacksOptions = link.LinkPacksOptions

func LinkPacks(opts LinkPacksOptions) (*types.DisplayResult, error) {
	return link.LinkPacks(opts)
}

// UnlinkPacks removes the declared symlinks of the selected packages.
type UnlinkPacksOptions = unlink.UnlinkPacksOptions

func UnlinkPacks(opts UnlinkPacksOptions) (*types.DisplayResult, error) {
	return unlink.UnlinkPacks(opts)
}

// StatusPacks reports the selected packages without changing anything.
type StatusPacksOptions = status.StatusPacksOptions

func StatusPacks(opts StatusPacksOptions) (*types.DisplayResult, error) {
	return status.StatusPacks(opts)
}

// ListPacks finds all packages in the root directory.
type ListPacksOptions = list.ListPacksOptions

func ListPacks(opts ListPacksOptions) (*types.ListPacksResult, error) {
	return list.ListPacks(opts)
}
