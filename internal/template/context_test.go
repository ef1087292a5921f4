package template

import (
	"testing"

	"github.com/csja-dev/csja/pkg/models"
)

func TestNewTemplateContext_Defaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.Bundler != "Webpack" {
		t.Errorf("Bundler = %q, want %q", ctx.Bundler, "Webpack")
	}
	if ctx.Framework != "none" {
		t.Errorf("Framework = %q, want %q", ctx.Framework, "none")
	}
	if ctx.PackageManager != "npm" {
		t.Errorf("PackageManager = %q, want %q", ctx.PackageManager, "npm")
	}
	if ctx.Run != "npm run" {
		t.Errorf("Run = %q, want %q", ctx.Run, "npm run")
	}
	if ctx.ProjectName != "" {
		t.Errorf("ProjectName = %q, want empty", ctx.ProjectName)
	}
}

func TestNewTemplateContext_WithOptions(t *testing.T) {
	ctx := NewTemplateContext(
		WithProjectName("demo-app"),
		WithStack(models.BundlerRollup, models.FrameworkSvelte),
		WithPackageManager(models.PackageManagerYarn),
	)

	if ctx.ProjectName != "demo-app" {
		t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, "demo-app")
	}
	if ctx.Bundler != "Rollup" || ctx.Framework != "Svelte" {
		t.Errorf("stack = %s/%s, want Rollup/Svelte", ctx.Bundler, ctx.Framework)
	}
	if ctx.Run != "yarn" {
		t.Errorf("Run = %q, want %q", ctx.Run, "yarn")
	}
}

func TestRunPrefix(t *testing.T) {
	tests := []struct {
		pm   models.PackageManager
		want string
	}{
		{models.PackageManagerNPM, "npm run"},
		{"", "npm run"},
		{models.PackageManagerYarn, "yarn"},
		{models.PackageManagerPNPM, "pnpm"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			if got := RunPrefix(tt.pm); got != tt.want {
				t.Errorf("RunPrefix(%q) = %q, want %q", tt.pm, got, tt.want)
			}
		})
	}
}
