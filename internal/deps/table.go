package deps

import (
	_ "embed"
	"encoding/json"
	"maps"
	"slices"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

//go:embed package.json
var declaredManifest []byte

// Table maps package names to exact versions, split like a package.json.
type Table struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

var (
	defaultTable     *Table
	defaultTableErr  error
	defaultTableOnce sync.Once
)

// DefaultTable returns the table declared by the tool's own manifest.
// It is parsed once per process and must be treated as read-only.
func DefaultTable() (*Table, error) {
	defaultTableOnce.Do(func() {
		defaultTable, defaultTableErr = ParseTable(declaredManifest)
	})
	return defaultTable, defaultTableErr
}

// ParseTable decodes a package.json document and checks that every
// version is an exact semantic version.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(ErrInvalidTable, "decode manifest: %v", err)
	}
	if t.Dependencies == nil {
		t.Dependencies = map[string]string{}
	}
	if t.DevDependencies == nil {
		t.DevDependencies = map[string]string{}
	}
	if err := checkPinned("dependencies", t.Dependencies); err != nil {
		return nil, err
	}
	if err := checkPinned("devDependencies", t.DevDependencies); err != nil {
		return nil, err
	}
	return &t, nil
}

// checkPinned rejects ranges ("^1.2.0", "~1", "latest").
func checkPinned(section string, m map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if _, err := semver.StrictNewVersion(m[name]); err != nil {
			return errors.Wrapf(ErrNotPinned, "%s %s@%s", section, name, m[name])
		}
	}
	return nil
}

// Len returns the number of declared packages across both sections.
func (t *Table) Len() int {
	return len(t.Dependencies) + len(t.DevDependencies)
}
