package deps

import (
	"maps"
	"slices"
	"strings"

	"github.com/csja-dev/csja/pkg/models"
)

// Selection is the installable outcome of Select.
type Selection struct {
	Dev  []string // name@version tokens for devDependencies
	Prod []string // name@version tokens for dependencies
}

// DevString returns the dev tokens joined by spaces.
func (s Selection) DevString() string {
	return strings.Join(s.Dev, " ")
}

// ProdString returns the runtime tokens joined by spaces.
func (s Selection) ProdString() string {
	return strings.Join(s.Prod, " ")
}

// String returns every token, dev first, joined by spaces.
func (s Selection) String() string {
	return strings.Join(append(slices.Clone(s.Dev), s.Prod...), " ")
}

// Len returns the number of selected packages.
func (s Selection) Len() int {
	return len(s.Dev) + len(s.Prod)
}

// Select filters the table for a bundler/framework pair. Rules are applied
// in order: competing bundler ecosystem, unused framework packages, tool
// runtime packages, then any extra globs. Tokens are sorted by package name.
func Select(t *Table, r Rules, b models.Bundler, f models.Framework, extra ...string) (Selection, error) {
	globs, err := r.excluded(b, f)
	if err != nil {
		return Selection{}, err
	}
	globs = append(globs, extra...)

	return Selection{
		Dev:  tokens(t.DevDependencies, globs),
		Prod: tokens(t.Dependencies, globs),
	}, nil
}

func tokens(m map[string]string, globs []string) []string {
	out := []string{}
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if matchAny(name, globs) {
			continue
		}
		out = append(out, name+"@"+m[name])
	}
	return out
}
