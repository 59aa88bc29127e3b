// Package packs discovers and loads packages.
//
// A package is an immediate subdirectory of the root holding a declaration
// file (".symlink" by default). Loading a package parses every declaration
// and probes the filesystem, so each returned Symlink already carries its
// live status. Aggregate reduces those statuses to the single label shown
// next to the package name.
package packs
