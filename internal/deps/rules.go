package deps

import (
	"path"

	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/pkg/models"
)

// Rules are the declarative exclusion rules of the selector. Every value is
// a list of path.Match globs over package names.
type Rules struct {
	// Bundler lists, per bundler, the packages of the competing ecosystems.
	Bundler map[models.Bundler][]string

	// Framework lists, per framework, the packages only that framework needs.
	// They are dropped unless the framework is selected.
	Framework map[models.Framework][]string

	// Tool lists packages the scaffolding tool itself depends on.
	Tool []string
}

// excluded returns the glob list that applies to one selection.
func (r Rules) excluded(b models.Bundler, f models.Framework) ([]string, error) {
	bundlerGlobs, ok := r.Bundler[b]
	if !ok {
		return nil, errors.Wrapf(ErrNoRules, "bundler %q", b)
	}
	if f != models.FrameworkNone {
		if _, ok := r.Framework[f]; !ok {
			return nil, errors.Wrapf(ErrNoRules, "framework %q", f)
		}
	}

	var globs []string
	globs = append(globs, bundlerGlobs...)
	for fw, owned := range r.Framework {
		if fw != f {
			globs = append(globs, owned...)
		}
	}
	globs = append(globs, r.Tool...)
	return globs, nil
}

// matchAny reports whether name matches one of the globs.
// Malformed globs never match.
func matchAny(name string, globs []string) bool {
	for _, g := range globs {
		if ok, err := path.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}
