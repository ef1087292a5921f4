package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/csja-dev/csja/pkg/models"
)

// Default values applied when neither the config file nor the environment set a key.
const (
	DefaultPackageManager = models.DefaultPackageManager
	DefaultBundler        = models.BundlerWebpack
	DefaultFramework      = models.FrameworkNone

	// EnvPrefix is the prefix of environment variables read by the loader
	// (CSJA_PACKAGE_MANAGER, CSJA_BUNDLER, CSJA_FRAMEWORK, CSJA_EXCLUDE).
	EnvPrefix = "CSJA"

	appDir   = "csja"
	fileName = "config.yaml"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		Bundler:        DefaultBundler,
		Framework:      DefaultFramework,
		Exclude:        []string{},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/csja/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, fileName)
}
