// Package cli provides the Cobra command tree and dependency injection
// wiring for csja. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/config"
	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/internal/deps"
	"github.com/csja-dev/csja/internal/shell"
	"github.com/csja-dev/csja/internal/template"
	"github.com/csja-dev/csja/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Catalog  *template.Catalog
	Table    *deps.Table
	Deployer template.Deployer
	Runner   shell.Runner
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
	WorkDir  string

	// RunOptions are applied to every orchestrator after the defaults.
	RunOptions []project.Option
}

// InitOptions carries the global flags that shape dependency wiring.
type InitOptions struct {
	ConfigPath string
	Verbose    bool
	LogOutput  io.Writer
}

// appDeps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var appDeps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It is called once per invocation, after flags are parsed.
func InitDependencies(opts InitOptions) (*Dependencies, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	logger := newLogger(opts.LogOutput, opts.Verbose)

	cfg, err := config.NewLoader(opts.ConfigPath).Load()
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	catalog, err := template.DefaultCatalog()
	if err != nil {
		return nil, errors.Wrap(err, "load template catalog")
	}
	table, err := deps.DefaultTable()
	if err != nil {
		return nil, errors.Wrap(err, "load dependency table")
	}
	assets, err := template.EmbeddedAssets()
	if err != nil {
		return nil, errors.Wrap(err, "open template assets")
	}
	if err := catalog.CheckAssets(assets); err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "get working directory")
	}

	logger.Debug("dependencies initialized",
		"config", config.DefaultPath(),
		"bundler", cfg.Bundler,
		"framework", cfg.Framework,
		"package_manager", cfg.PackageManager,
	)

	return &Dependencies{
		Config:   cfg,
		Catalog:  catalog,
		Table:    table,
		Deployer: template.NewDeployer(assets),
		Runner:   shell.NewExecRunner(),
		Theme:    ui.NewTheme(),
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
		WorkDir:  wd,
	}, nil
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	appDeps = d
}

// NewOrchestrator builds a project orchestrator from d.
func (d *Dependencies) NewOrchestrator(opts ...project.Option) *project.Orchestrator {
	base := []project.Option{
		project.WithWorkDir(d.WorkDir),
		project.WithExcludes(d.Config.Exclude...),
	}
	base = append(base, d.RunOptions...)
	return project.NewOrchestrator(d.Runner, d.Deployer, d.Catalog, d.Table, d.Logger, append(base, opts...)...)
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler.
// Warnings and errors only, unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "csja",
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}
