package template

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	cp "github.com/otiai10/copy"

	"github.com/csja-dev/csja/internal/defs"
)

// Deployer writes catalog FileSets from an embedded filesystem into a
// project directory.
type Deployer interface {
	// Deploy writes every entry of files under projectRoot. Sources ending
	// in .tmpl are rendered with tmplCtx; all others are copied verbatim.
	Deploy(ctx context.Context, projectRoot string, files FileSet, tmplCtx *TemplateContext) error

	// ExtractTemplate returns the raw content of a single asset by name.
	ExtractTemplate(name string) ([]byte, error)

	// ListTemplates returns the sorted paths of all embedded assets.
	ListTemplates() []string
}

type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from EmbeddedAssets; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return NewDeployerWithRenderer(fsys, NewRenderer(fsys))
}

// NewDeployerWithRenderer creates a Deployer that renders .tmpl files using the given Renderer.
func NewDeployerWithRenderer(fsys fs.FS, renderer Renderer) Deployer {
	return &deployer{fsys: fsys, renderer: renderer}
}

// Deploy writes files in order, stopping at the first failure or when ctx
// is cancelled. Destinations are never allowed outside projectRoot.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, files FileSet, tmplCtx *TemplateContext) error {
	projectRoot = filepath.Clean(projectRoot)

	opts := cp.Options{
		FS:                d.fsys,
		PermissionControl: cp.AddPermission(0o200),
		PreserveTimes:     false,
		PreserveOwner:     false,
	}

	for _, entry := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := validateDeployPath(projectRoot, entry.Dest); err != nil {
			return err
		}
		destPath := filepath.Join(projectRoot, filepath.FromSlash(entry.Dest))

		if !isTemplate(entry.Source) {
			if _, err := fs.Stat(d.fsys, entry.Source); err != nil {
				return errors.Wrapf(ErrTemplateNotFound, "%s", entry.Source)
			}
			if err := cp.Copy(entry.Source, destPath, opts); err != nil {
				return errors.Wrapf(err, "template deploy copy %q", entry.Source)
			}
			continue
		}

		if tmplCtx == nil {
			return errors.Wrapf(ErrMissingTemplateKey, "no context for %q", entry.Source)
		}
		rendered, err := d.renderer.Render(entry.Source, tmplCtx)
		if err != nil {
			return errors.Wrapf(err, "template render %q", entry.Source)
		}

		destDir := filepath.Dir(destPath)
		if err := os.MkdirAll(destDir, defs.DirPerm); err != nil {
			return errors.Wrapf(err, "template deploy mkdir %q", destDir)
		}
		if err := os.WriteFile(destPath, rendered, defs.FilePerm); err != nil {
			return errors.Wrapf(err, "template deploy write %q", destPath)
		}
	}
	return nil
}

// ExtractTemplate returns the content of a single named asset.
func (d *deployer) ExtractTemplate(name string) ([]byte, error) {
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return nil, errors.Wrapf(ErrTemplateNotFound, "%s", name)
	}
	return data, nil
}

// ListTemplates returns sorted relative paths of all files in the filesystem.
func (d *deployer) ListTemplates() []string {
	var list []string
	_ = fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		list = append(list, path)
		return nil
	})
	return list
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return errors.Wrapf(ErrPathTraversal, "absolute path %q", relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return errors.Wrapf(ErrPathTraversal, "parent reference in %q", relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return errors.Wrap(err, "resolve project root")
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return errors.Wrapf(ErrPathTraversal, "%q escapes project root", relPath)
	}
	return nil
}
