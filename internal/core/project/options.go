package project

import (
	"regexp"

	"github.com/csja-dev/csja/pkg/models"
)

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ScaffoldOptions is the validated input of a run.
type ScaffoldOptions struct {
	ProjectName    string
	Bundler        models.Bundler
	Framework      models.Framework
	PackageManager models.PackageManager
	SkipInstall    bool
}

// withDefaults fills unset enum fields.
func (o ScaffoldOptions) withDefaults() ScaffoldOptions {
	if o.Framework == "" {
		o.Framework = models.FrameworkNone
	}
	if o.PackageManager == "" {
		o.PackageManager = models.DefaultPackageManager
	}
	return o
}

// ValidProjectName reports whether name is non-empty and uses only
// letters, digits, '_' and '-'.
func ValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// ValidateProjectName returns a *ValidationError for an invalid name.
func ValidateProjectName(name string) error {
	if ValidProjectName(name) {
		return nil
	}
	return &ValidationError{
		Field:   "project_name",
		Value:   name,
		Message: InvalidNameMessage,
		Wrapped: ErrInvalidProjectName,
	}
}

// Validate checks every option and cross-option constraint. It performs
// no I/O.
func Validate(o ScaffoldOptions) error {
	o = o.withDefaults()

	if err := ValidateProjectName(o.ProjectName); err != nil {
		return err
	}
	if !o.Bundler.IsValid() {
		return &ValidationError{
			Field:   "bundler",
			Value:   string(o.Bundler),
			Message: "unknown bundler " + quote(string(o.Bundler)),
			Wrapped: models.ErrUnknownBundler,
		}
	}
	if !o.Framework.IsValid() {
		return &ValidationError{
			Field:   "framework",
			Value:   string(o.Framework),
			Message: "unknown framework " + quote(string(o.Framework)),
			Wrapped: models.ErrUnknownFramework,
		}
	}
	if !o.PackageManager.IsValid() {
		return &ValidationError{
			Field:   "package_manager",
			Value:   string(o.PackageManager),
			Message: "unknown package manager " + quote(string(o.PackageManager)),
			Wrapped: models.ErrUnknownPackageManager,
		}
	}
	return CheckCompatibility(o.Bundler, o.Framework)
}

func quote(s string) string {
	return `"` + s + `"`
}
