// Package manifest edits the package.json of a generated project.
//
// Edits are structural: the document is parsed, the scripts object is
// replaced as a whole and extra top-level fields are set, while every
// untouched key keeps its original position. A document that is not a JSON
// object is rejected instead of being written back unchanged.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/csja-dev/csja/internal/defs"
)

// ErrInvalidManifest indicates the manifest is missing or is not a JSON object.
var ErrInvalidManifest = errors.New("manifest: not a JSON object")

// Script is one entry of the manifest's scripts object.
type Script struct {
	Name    string `yaml:"name" json:"name"`
	Command string `yaml:"command" json:"command"`
}

// Field is an extra top-level manifest entry, such as browserslist.
type Field struct {
	Key   string
	Value any
}

// Patch describes the edits applied to a manifest.
type Patch struct {
	Scripts []Script
	Fields  []Field
}

// prettyOptions matches the two-space layout written by npm init.
var prettyOptions = &pretty.Options{Width: 1, Prefix: "", Indent: "  ", SortKeys: false}

// ScriptBlock encodes scripts as a JSON object that keeps the given order.
func ScriptBlock(scripts []Script) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range scripts {
		if s.Name == "" {
			return nil, errors.Newf("manifest: script %d has no name", i)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(s.Name)
		v, _ := json.Marshal(s.Command)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Apply returns doc with p applied, re-indented with two spaces.
func Apply(doc []byte, p Patch) ([]byte, error) {
	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return nil, ErrInvalidManifest
	}

	out := doc
	if len(p.Scripts) > 0 {
		block, err := ScriptBlock(p.Scripts)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, "scripts", block)
		if err != nil {
			return nil, errors.Wrap(err, "manifest: set scripts")
		}
	}

	for _, f := range p.Fields {
		var err error
		out, err = sjson.SetBytes(out, escapeKey(f.Key), f.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest: set %s", f.Key)
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

// PatchFile applies p to the manifest at path in place.
func PatchFile(path string, p Patch) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrInvalidManifest, "%s does not exist", path)
		}
		return errors.Wrapf(err, "read %s", path)
	}

	out, err := Apply(doc, p)
	if err != nil {
		return errors.Wrapf(err, "patch %s", path)
	}

	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Scripts returns the scripts object of doc in document order.
func Scripts(doc []byte) ([]Script, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidManifest
	}
	var scripts []Script
	gjson.GetBytes(doc, "scripts").ForEach(func(key, value gjson.Result) bool {
		scripts = append(scripts, Script{Name: key.String(), Command: value.String()})
		return true
	})
	return scripts, nil
}

// escapeKey escapes gjson/sjson path metacharacters in a literal key.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
