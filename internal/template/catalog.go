package template

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/csja-dev/csja/internal/defs"
	"github.com/csja-dev/csja/internal/deps"
	"github.com/csja-dev/csja/internal/manifest"
	"github.com/csja-dev/csja/pkg/models"
)

// FileEntry maps one embedded asset to its path in the generated project.
type FileEntry struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// FileSet is an ordered list of files copied together.
type FileSet []FileEntry

// BundlerEntry is everything a bundler contributes to a project.
type BundlerEntry struct {
	Exclude []string          `yaml:"exclude"`
	Scripts []manifest.Script `yaml:"scripts"`
	Configs FileSet           `yaml:"configs"`
	Src     FileSet           `yaml:"src"`
}

// FrameworkEntry is everything a framework contributes to a project.
// Configs replace bundler configs with the same Dest; a non-empty Src
// replaces the bundler's source tree.
type FrameworkEntry struct {
	Packages []string       `yaml:"packages"`
	Fields   map[string]any `yaml:"fields"`
	Configs  FileSet        `yaml:"configs"`
	Src      FileSet        `yaml:"src"`
}

// Catalog is the declarative description of generated projects.
type Catalog struct {
	Version      int                                 `yaml:"version"`
	ToolPackages []string                            `yaml:"tool_packages"`
	Scripts      []manifest.Script                   `yaml:"scripts"`
	Configs      FileSet                             `yaml:"configs"`
	Mocks        FileSet                             `yaml:"mocks"`
	Bundlers     map[models.Bundler]BundlerEntry     `yaml:"bundlers"`
	Frameworks   map[models.Framework]FrameworkEntry `yaml:"frameworks"`
}

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error

	defaultCatalog *Catalog
	defaultOnce    sync.Once
	defaultErr     error

	printer = message.NewPrinter(language.English)
)

// DefaultCatalog returns the embedded catalog, parsed once per process.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseCatalog(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchema))
		if err != nil {
			compileErr = errors.Wrap(err, "unmarshal catalog schema")
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(defs.CatalogSchemaJSON, doc); err != nil {
			compileErr = errors.Wrap(err, "add catalog schema")
			return
		}
		compiledSchema, compileErr = c.Compile(defs.CatalogSchemaJSON)
		if compileErr != nil {
			compileErr = errors.Wrap(compileErr, "compile catalog schema")
		}
	})
	return compiledSchema, compileErr
}

// ParseCatalog validates data against the catalog schema and decodes it.
func ParseCatalog(data []byte) (*Catalog, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(ErrInvalidCatalog, "parse yaml: %v", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCatalog, "convert to json: %v", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCatalog, "prepare json: %v", err)
	}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, errors.Wrapf(ErrInvalidCatalog, "%s", strings.Join(schemaIssues(ve), "; "))
		}
		return nil, errors.Wrap(err, "validate catalog")
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(ErrInvalidCatalog, "decode: %v", err)
	}
	return &c, nil
}

// schemaIssues flattens a validation error tree into "location: message" lines.
func schemaIssues(ve *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := "/" + strings.Join(e.InstanceLocation, "/")
			msg := e.Error()
			if e.ErrorKind != nil {
				msg = e.ErrorKind.LocalizedString(printer)
			}
			out = append(out, loc+": "+msg)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func (c *Catalog) bundler(b models.Bundler) (BundlerEntry, error) {
	e, ok := c.Bundlers[b]
	if !ok {
		return BundlerEntry{}, errors.Wrapf(ErrNotInCatalog, "bundler %q", b)
	}
	return e, nil
}

func (c *Catalog) framework(f models.Framework) (FrameworkEntry, error) {
	if f == models.FrameworkNone {
		return FrameworkEntry{}, nil
	}
	e, ok := c.Frameworks[f]
	if !ok {
		return FrameworkEntry{}, errors.Wrapf(ErrNotInCatalog, "framework %q", f)
	}
	return e, nil
}

// Rules converts the catalog's exclusions into dependency selection rules.
// extra holds additional tool exclusions, typically from user configuration.
func (c *Catalog) Rules(extra ...string) deps.Rules {
	r := deps.Rules{
		Bundler:   make(map[models.Bundler][]string, len(c.Bundlers)),
		Framework: make(map[models.Framework][]string, len(c.Frameworks)),
		Tool:      append(append([]string(nil), c.ToolPackages...), extra...),
	}
	for b, e := range c.Bundlers {
		r.Bundler[b] = e.Exclude
	}
	for f, e := range c.Frameworks {
		r.Framework[f] = e.Packages
	}
	return r
}

// Scripts returns the bundler's scripts followed by the shared ones.
func (c *Catalog) Scripts(b models.Bundler) ([]manifest.Script, error) {
	e, err := c.bundler(b)
	if err != nil {
		return nil, err
	}
	out := make([]manifest.Script, 0, len(e.Scripts)+len(c.Scripts))
	out = append(out, e.Scripts...)
	out = append(out, c.Scripts...)
	return out, nil
}

// Fields returns the extra manifest fields of f sorted by key.
func (c *Catalog) Fields(f models.Framework) ([]manifest.Field, error) {
	e, err := c.framework(f)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]manifest.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, manifest.Field{Key: k, Value: e.Fields[k]})
	}
	return out, nil
}

// ConfigFiles returns the shared and bundler configuration files, with
// framework configs replacing entries that share a destination.
func (c *Catalog) ConfigFiles(b models.Bundler, f models.Framework) (FileSet, error) {
	be, err := c.bundler(b)
	if err != nil {
		return nil, err
	}
	fe, err := c.framework(f)
	if err != nil {
		return nil, err
	}

	set := make(FileSet, 0, len(c.Configs)+len(be.Configs)+len(fe.Configs))
	set = append(set, c.Configs...)
	set = append(set, be.Configs...)
	for _, override := range fe.Configs {
		replaced := false
		for i := range set {
			if set[i].Dest == override.Dest {
				set[i] = override
				replaced = true
			}
		}
		if !replaced {
			set = append(set, override)
		}
	}
	return set, nil
}

// MockFiles returns the Jest mocks copied into __mocks__.
func (c *Catalog) MockFiles() FileSet {
	return append(FileSet(nil), c.Mocks...)
}

// SrcFiles returns the starter source tree for the combination.
func (c *Catalog) SrcFiles(b models.Bundler, f models.Framework) (FileSet, error) {
	be, err := c.bundler(b)
	if err != nil {
		return nil, err
	}
	fe, err := c.framework(f)
	if err != nil {
		return nil, err
	}
	if len(fe.Src) > 0 {
		return append(FileSet(nil), fe.Src...), nil
	}
	return append(FileSet(nil), be.Src...), nil
}

// CheckAssets reports every catalog Source missing from fsys.
func (c *Catalog) CheckAssets(fsys fs.FS) error {
	var sets []FileSet
	sets = append(sets, c.Configs, c.Mocks)
	for _, e := range c.Bundlers {
		sets = append(sets, e.Configs, e.Src)
	}
	for _, e := range c.Frameworks {
		sets = append(sets, e.Configs, e.Src)
	}

	var missing []string
	for _, set := range sets {
		for _, entry := range set {
			if _, err := fs.Stat(fsys, entry.Source); err != nil {
				missing = append(missing, entry.Source)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Wrapf(ErrTemplateNotFound, "%s", strings.Join(missing, ", "))
	}
	return nil
}
