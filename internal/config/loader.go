package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Loader reads configuration from a YAML file and CSJA_* environment variables.
type Loader struct {
	// Path is the config file to read. Empty means DefaultPath(), in which
	// case a missing file is not an error.
	Path string
}

// NewLoader creates a Loader for the given path ("" for the default location).
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads, merges and validates configuration.
// Precedence: environment > file > defaults.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := NewDefaultConfig()
	v.SetDefault("package_manager", string(def.PackageManager))
	v.SetDefault("bundler", string(def.Bundler))
	v.SetDefault("framework", string(def.Framework))
	v.SetDefault("exclude", def.Exclude)

	path := l.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(ErrInvalidYAML, "read %s: %v", path, err)
		}
	} else if explicit {
		return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "decode configuration: %v", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
