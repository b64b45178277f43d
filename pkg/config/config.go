package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes every environment variable datename reads.
	EnvPrefix = "DATENAME_"

	// EnvConfigFile points at an explicit config file.
	EnvConfigFile = "DATENAME_CONFIG"

	// ConfigFileName is searched for relative to the XDG config directories.
	ConfigFileName = "datename/config.toml"

	// DefaultDirectory is used when no directory is configured.
	DefaultDirectory = "."
)

// Config is the merged configuration of one run.
type Config struct {
	Directory string    `koanf:"directory" toml:"directory"`
	Simulate  bool      `koanf:"simulate" toml:"simulate"`
	Log       LogConfig `koanf:"log" toml:"log"`

	// File is the user config file that was loaded, if any.
	File string `koanf:"-" toml:"-"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	Level string `koanf:"level" toml:"level"`
	File  string `koanf:"file" toml:"file"`
}

// LoggingOptions converts the log section for pkg/logging.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, File: c.Log.File}
}

// Load merges all configuration layers. flags may be nil; when given, only
// flags the user actually set override the lower layers. Load runs before
// logging is configured and does not log.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	path, err := userConfigPath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", path).
				WithDetail("path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	cfg.File = path

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// userConfigPath returns the config file to load, or "" when there is none.
// An explicit DATENAME_CONFIG must exist; the XDG location is optional.
func userConfigPath() (string, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		expanded, err := homedir.Expand(explicit)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot expand %s", explicit)
		}
		if _, err := os.Stat(expanded); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", expanded)
		}
		return expanded, nil
	}

	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps DATENAME_LOG_LEVEL to log.level. DATENAME_CONFIG is not a
// value and is dropped.
func envKey(name string) string {
	if name == EnvConfigFile {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) normalize() error {
	c.Directory = strings.TrimSpace(c.Directory)
	if c.Directory == "" {
		c.Directory = DefaultDirectory
	}

	var err error
	if c.Directory, err = homedir.Expand(c.Directory); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "cannot expand directory %s", c.Directory)
	}
	if c.Log.File != "" {
		if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "cannot expand log file %s", c.Log.File)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid configuration").
			WithDetail("key", "log.level")
	}
	return nil
}
