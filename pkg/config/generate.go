package config

import (
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// TOML renders the effective configuration in config file syntax.
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
