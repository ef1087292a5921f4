package template

import (
	"embed"
	"io/fs"

	"github.com/cockroachdb/errors"
)

//go:embed all:assets
var embedded embed.FS

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// EmbeddedAssets returns the template assets rooted at assets/, the
// filesystem every catalog Source is relative to.
func EmbeddedAssets() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return nil, errors.Wrap(err, "template: sub assets")
	}
	return sub, nil
}
