package template

import "github.com/csja-dev/csja/pkg/models"

// TemplateContext provides data for rendering .tmpl assets.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	ProjectName    string
	Bundler        string
	Framework      string
	PackageManager string

	// Run is the command prefix that runs a package.json script,
	// e.g. "npm run" or "yarn".
	Run string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults for an npm,
// Webpack, framework-less project, then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Bundler:   string(models.BundlerWebpack),
		Framework: string(models.FrameworkNone),
	}
	WithPackageManager(models.DefaultPackageManager)(ctx)
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProjectName sets the project name.
func WithProjectName(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
	}
}

// WithStack sets the bundler and framework.
func WithStack(b models.Bundler, f models.Framework) ContextOption {
	return func(c *TemplateContext) {
		c.Bundler = string(b)
		c.Framework = string(f)
	}
}

// WithPackageManager sets the package manager and the matching run prefix.
func WithPackageManager(pm models.PackageManager) ContextOption {
	return func(c *TemplateContext) {
		c.PackageManager = string(pm)
		c.Run = RunPrefix(pm)
	}
}

// RunPrefix returns the command that runs a script with pm.
func RunPrefix(pm models.PackageManager) string {
	if pm == models.PackageManagerNPM || pm == "" {
		return "npm run"
	}
	return string(pm)
}
