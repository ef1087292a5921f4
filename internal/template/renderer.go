package template

import (
	"bytes"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"
)

// templateFuncMap is sprig's text function set, available in all templates.
var templateFuncMap = sprig.TxtFuncMap()

// unexpandedTokenPattern detects leftover template tokens in rendered output.
// Matches ${VAR} and {{VAR}} patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the filesystem and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, errors.Wrapf(ErrTemplateNotFound, "%s", templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "template parse %q", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(ErrMissingTemplateKey, "%v", err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, errors.Wrapf(ErrUnexpandedToken, "found %q", string(loc))
	}
	return result, nil
}

// isTemplate reports whether name is rendered rather than copied verbatim.
func isTemplate(name string) bool {
	return strings.HasSuffix(name, ".tmpl")
}
