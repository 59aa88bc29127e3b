package config

import (
	"github.com/arthur-debert/home-symlink/pkg/packs"
)

// Config is the effective home-symlink configuration
type Config struct {
	// Root is the packages root. Empty until resolved.
	Root string `koanf:"root" toml:"root"`

	DeclarationFile string `koanf:"declaration_file" toml:"declaration_file"`
	IgnoreMarker    string `koanf:"ignore_marker" toml:"ignore_marker"`

	Packs  Packs  `koanf:"packs" toml:"packs"`
	Link   Link   `koanf:"link" toml:"link"`
	Output Output `koanf:"output" toml:"output"`
}

// Packs holds discovery settings
type Packs struct {
	// Ignore holds glob patterns of directory names that are not packages
	Ignore []string `koanf:"ignore" toml:"ignore"`
}

// Link holds settings applied when creating symlinks
type Link struct {
	CreateParents bool `koanf:"create_parents" toml:"create_parents"`
}

// Output holds report settings
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Default returns the configuration from the embedded defaults alone
func Default() *Config {
	k, err := defaultsKoanf()
	if err != nil {
		// The embedded file is part of the binary; a failure here is a
		// build problem.
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

// PackOptions converts the configuration to discovery and load options
func (c *Config) PackOptions() packs.Options {
	opts := packs.DefaultOptions()
	if c.DeclarationFile != "" {
		opts.DeclarationFile = c.DeclarationFile
	}
	if c.IgnoreMarker != "" {
		opts.IgnoreMarker = c.IgnoreMarker
	}
	opts.Ignore = append([]string(nil), c.Packs.Ignore...)
	opts.CreateParents = c.Link.CreateParents
	return opts
}
