// Package deps selects the packages installed into a generated project.
//
// The candidate set is the tool's own declared manifest (package.json,
// embedded at build time). Packages are filtered by bundler ecosystem,
// framework ownership and an exclusion list of the tool's runtime-only
// packages; versions are copied verbatim so generated projects pin exactly
// what the templates were tested against.
package deps

import "github.com/cockroachdb/errors"

// Sentinel errors for the deps package.
var (
	// ErrInvalidTable indicates the declared manifest could not be parsed.
	ErrInvalidTable = errors.New("deps: invalid dependency table")

	// ErrNotPinned indicates a declared version is a range rather than an exact version.
	ErrNotPinned = errors.New("deps: version is not an exact pin")

	// ErrNoRules indicates the rule set has no entry for the selected bundler or framework.
	ErrNoRules = errors.New("deps: no exclusion rules for option")
)
