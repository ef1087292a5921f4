package project

import (
	"fmt"

	"github.com/csja-dev/csja/pkg/models"
)

// compatRule is one row of the bundler/framework compatibility table.
type compatRule struct {
	Bundler   models.Bundler
	Framework models.Framework
	Supported bool
	Reason    string
}

// compatibility lists every known pair. A pair not listed is unsupported.
var compatibility = []compatRule{
	{models.BundlerWebpack, models.FrameworkNone, true, ""},
	{models.BundlerWebpack, models.FrameworkSvelte, false, "Svelte requires Rollup"},
	{models.BundlerRollup, models.FrameworkNone, true, ""},
	{models.BundlerRollup, models.FrameworkSvelte, true, ""},
}

func lookupCompat(b models.Bundler, f models.Framework) (compatRule, bool) {
	for _, r := range compatibility {
		if r.Bundler == b && r.Framework == f {
			return r, true
		}
	}
	return compatRule{}, false
}

// Supported reports whether the pair can be scaffolded.
func Supported(b models.Bundler, f models.Framework) bool {
	r, ok := lookupCompat(b, f)
	return ok && r.Supported
}

// SupportedFrameworks returns the frameworks offered for b, in display order.
func SupportedFrameworks(b models.Bundler) []models.Framework {
	var out []models.Framework
	for _, f := range models.ValidFrameworks() {
		if Supported(b, f) {
			out = append(out, f)
		}
	}
	return out
}

// CheckCompatibility returns a *ValidationError wrapping
// ErrUnsupportedCombination for an unsupported pair.
func CheckCompatibility(b models.Bundler, f models.Framework) error {
	r, ok := lookupCompat(b, f)
	if ok && r.Supported {
		return nil
	}

	msg := fmt.Sprintf("unsupported combination: %s + %s", b, f)
	if ok && r.Reason != "" {
		msg = fmt.Sprintf("unsupported combination: %s (%s + %s is not supported)", r.Reason, b, f)
	}
	return &ValidationError{
		Field:   "framework",
		Value:   string(f),
		Message: msg,
		Wrapped: ErrUnsupportedCombination,
	}
}
