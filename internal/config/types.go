package config

import (
	"github.com/csja-dev/csja/pkg/models"
)

// Config holds the user's defaults for scaffolding runs.
// Flags given on the command line always take precedence over these values.
type Config struct {
	PackageManager models.PackageManager `mapstructure:"package_manager"`
	Bundler        models.Bundler        `mapstructure:"bundler"`
	Framework      models.Framework      `mapstructure:"framework"`

	// Exclude lists extra dependency globs that are never installed into
	// generated projects, on top of the built-in exclusion rules.
	Exclude []string `mapstructure:"exclude"`
}
