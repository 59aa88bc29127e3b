// Package config loads the home-symlink configuration.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/home-symlink/config.toml
//  3. the root file, <root>/.home-symlink.toml
//  4. HOME_SYMLINK_* environment variables
//
// The root file can only be found once the root is known, so the root is
// resolved from the other layers first.
package config
