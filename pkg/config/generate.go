package config

import (
	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as TOML, in the layout of the defaults file
func Marshal(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}
