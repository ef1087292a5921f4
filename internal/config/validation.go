package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/csja-dev/csja/pkg/models"
)

// Validate normalizes option values to their canonical spelling and checks
// them for correctness. All problems are reported together.
func Validate(cfg *Config) error {
	var errs []ValidationError

	pm, err := models.ParsePackageManager(string(cfg.PackageManager))
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   "package_manager",
			Message: "must be one of: npm, yarn, pnpm",
			Value:   string(cfg.PackageManager),
			Wrapped: ErrInvalidConfig,
		})
	} else {
		cfg.PackageManager = pm
	}

	if cfg.Bundler == "" {
		cfg.Bundler = DefaultBundler
	}
	b, err := models.ParseBundler(string(cfg.Bundler))
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   "bundler",
			Message: "must be one of: Webpack, Rollup",
			Value:   string(cfg.Bundler),
			Wrapped: models.ErrUnknownBundler,
		})
	} else {
		cfg.Bundler = b
	}

	f, err := models.ParseFramework(string(cfg.Framework))
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: "must be one of: none, Svelte",
			Value:   string(cfg.Framework),
			Wrapped: models.ErrUnknownFramework,
		})
	} else {
		cfg.Framework = f
	}

	errs = append(errs, validateExclude(cfg.Exclude)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateExclude checks that every exclusion is a well-formed glob.
func validateExclude(patterns []string) []ValidationError {
	var errs []ValidationError
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Message: "pattern must not be empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		if _, err := path.Match(p, ""); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Message: "malformed glob pattern",
				Value:   p,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
