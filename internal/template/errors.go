package template

import "github.com/cockroachdb/errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a catalog entry names an asset that is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a .tmpl file referenced a key absent from the context.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains template tokens.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a destination path would escape the project root.
	ErrPathTraversal = errors.New("template: path traversal")

	// ErrInvalidCatalog indicates the catalog failed schema validation or decoding.
	ErrInvalidCatalog = errors.New("template: invalid catalog")

	// ErrNotInCatalog indicates the catalog has no entry for a bundler or framework.
	ErrNotInCatalog = errors.New("template: not in catalog")
)
