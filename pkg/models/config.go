package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Sentinel errors for option parsing.
var (
	// ErrUnknownBundler indicates a bundler name outside the supported set.
	ErrUnknownBundler = errors.New("unknown bundler")

	// ErrUnknownFramework indicates a framework name outside the supported set.
	ErrUnknownFramework = errors.New("unknown framework")

	// ErrUnknownPackageManager indicates a package manager outside the supported set.
	ErrUnknownPackageManager = errors.New("unknown package manager")
)

// fold is the case folder used to compare user-provided option values.
var fold = cases.Fold()

// Bundler is the module bundler used by a generated project.
type Bundler string

const (
	BundlerWebpack Bundler = "Webpack"
	BundlerRollup  Bundler = "Rollup"
)

// ValidBundlers returns all supported bundlers in menu order.
func ValidBundlers() []Bundler {
	return []Bundler{BundlerWebpack, BundlerRollup}
}

// IsValid checks if the bundler is one of the supported values.
func (b Bundler) IsValid() bool {
	switch b {
	case BundlerWebpack, BundlerRollup:
		return true
	}
	return false
}

// Key returns the lower-case identifier used in catalogs and config files.
func (b Bundler) Key() string {
	return strings.ToLower(string(b))
}

// ParseBundler converts a user-provided value to a Bundler, ignoring case.
func ParseBundler(s string) (Bundler, error) {
	want := fold.String(strings.TrimSpace(s))
	for _, b := range ValidBundlers() {
		if fold.String(string(b)) == want {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of: Webpack, Rollup", ErrUnknownBundler, s)
}

// Framework is the optional UI framework of a generated project.
type Framework string

const (
	FrameworkNone   Framework = "none"
	FrameworkSvelte Framework = "Svelte"
)

// ValidFrameworks returns all supported frameworks in menu order.
func ValidFrameworks() []Framework {
	return []Framework{FrameworkNone, FrameworkSvelte}
}

// IsValid checks if the framework is one of the supported values.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkNone, FrameworkSvelte:
		return true
	}
	return false
}

// Key returns the lower-case identifier used in catalogs and config files.
func (f Framework) Key() string {
	return strings.ToLower(string(f))
}

// ParseFramework converts a user-provided value to a Framework, ignoring case.
// An empty string means no framework.
func ParseFramework(s string) (Framework, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FrameworkNone, nil
	}
	want := fold.String(trimmed)
	for _, f := range ValidFrameworks() {
		if fold.String(string(f)) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of: none, Svelte", ErrUnknownFramework, s)
}
