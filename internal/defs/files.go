package defs

import "os"

// Common file names used across the project.
const (
	// PackageJSON is the npm manifest of a generated project.
	PackageJSON = "package.json"

	// ConfigYAML is the csja user configuration file.
	ConfigYAML = "config.yaml"

	// CatalogYAML is the embedded template catalog.
	CatalogYAML = "catalog.yaml"

	// CatalogSchemaJSON is the JSON Schema the catalog is validated against.
	CatalogSchemaJSON = "catalog.schema.json"
)

// Directory names inside a generated project.
const (
	SrcDir   = "src"
	MocksDir = "__mocks__"
)

// Permissions for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// AppName is the directory name used under the XDG config home.
const AppName = "csja"
