package project

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/defs"
	"github.com/csja-dev/csja/internal/deps"
	"github.com/csja-dev/csja/internal/manifest"
	"github.com/csja-dev/csja/internal/shell"
	"github.com/csja-dev/csja/internal/template"
)

// StepFunc performs one transition of a run.
type StepFunc func(ctx context.Context, run *Run) error

// Step is one pipeline entry. On success the run advances to Target.
type Step struct {
	Target State
	Title  string
	Run    StepFunc
}

// Pipeline is the ordered list of steps executed for every run.
type Pipeline []Step

// Run is the record of one invocation shared by its steps.
type Run struct {
	Options   ScaffoldOptions
	Dir       string
	Created   bool // Dir was created by this run and may be removed on failure
	Commands  shell.PackageManagerCommands
	Selection deps.Selection
}

func (r *Run) templateContext() *template.TemplateContext {
	return template.NewTemplateContext(
		template.WithProjectName(r.Options.ProjectName),
		template.WithStack(r.Options.Bundler, r.Options.Framework),
		template.WithPackageManager(r.Options.PackageManager),
	)
}

// DefaultPipeline returns the scaffolding steps in execution order.
func (o *Orchestrator) DefaultPipeline() Pipeline {
	return Pipeline{
		{Target: StateDirCreated, Title: "Creating project directory", Run: o.createDir},
		{Target: StateNPMInit, Title: "Initializing package.json", Run: o.initManifest},
		{Target: StateScriptsInjected, Title: "Injecting scripts", Run: o.injectScripts},
		{Target: StateConfigCopied, Title: "Copying configuration files", Run: o.copyConfig},
		{Target: StateMocksCopied, Title: "Copying mocks", Run: o.copyMocks},
		{Target: StateDepsInstalled, Title: "Installing dependencies", Run: o.installDeps},
		{Target: StateSrcCopied, Title: "Copying source files", Run: o.copySrc},
	}
}

// createDir never reuses an existing directory.
func (o *Orchestrator) createDir(_ context.Context, run *Run) error {
	if err := os.Mkdir(run.Dir, defs.DirPerm); err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(ErrProjectExists, "%s", run.Dir)
		}
		return errors.Wrapf(err, "create %s", run.Dir)
	}
	run.Created = true
	return nil
}

func (o *Orchestrator) initManifest(ctx context.Context, run *Run) error {
	return o.command(ctx, run, run.Commands.Init)
}

func (o *Orchestrator) injectScripts(_ context.Context, run *Run) error {
	scripts, err := o.catalog.Scripts(run.Options.Bundler)
	if err != nil {
		return err
	}
	fields, err := o.catalog.Fields(run.Options.Framework)
	if err != nil {
		return err
	}
	return manifest.PatchFile(filepath.Join(run.Dir, defs.PackageJSON), manifest.Patch{
		Scripts: scripts,
		Fields:  fields,
	})
}

func (o *Orchestrator) copyConfig(ctx context.Context, run *Run) error {
	files, err := o.catalog.ConfigFiles(run.Options.Bundler, run.Options.Framework)
	if err != nil {
		return err
	}
	return o.deployer.Deploy(ctx, run.Dir, files, run.templateContext())
}

func (o *Orchestrator) copyMocks(ctx context.Context, run *Run) error {
	return o.deployer.Deploy(ctx, run.Dir, o.catalog.MockFiles(), run.templateContext())
}

// installDeps installs devDependencies, then dependencies. An empty list
// skips its invocation.
func (o *Orchestrator) installDeps(ctx context.Context, run *Run) error {
	if run.Options.SkipInstall {
		o.logger.Info("dependency installation skipped", "dir", run.Dir)
		return nil
	}
	if len(run.Selection.Dev) > 0 {
		if err := o.command(ctx, run, run.Commands.InstallDevArgs(run.Selection.Dev)); err != nil {
			return err
		}
	}
	if len(run.Selection.Prod) > 0 {
		if err := o.command(ctx, run, run.Commands.InstallArgs(run.Selection.Prod)); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) copySrc(ctx context.Context, run *Run) error {
	files, err := o.catalog.SrcFiles(run.Options.Bundler, run.Options.Framework)
	if err != nil {
		return err
	}
	return o.deployer.Deploy(ctx, run.Dir, files, run.templateContext())
}

// command runs the package manager with args inside the project directory.
func (o *Orchestrator) command(ctx context.Context, run *Run, args []string) error {
	name := run.Commands.Binary
	o.logger.Debug("running command", "cmd", shell.CommandLine(name, args), "dir", run.Dir)
	_, err := shell.RunChecked(ctx, o.runner, name, args, shell.RunOpts{Dir: run.Dir})
	return err
}
