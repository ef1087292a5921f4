package project

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/deps"
	"github.com/csja-dev/csja/internal/shell"
	"github.com/csja-dev/csja/internal/template"
)

// stderrTailLines bounds the command output kept on a StepError.
const stderrTailLines = 20

// Result summarizes a run.
type Result struct {
	Dir       string
	State     State
	Options   ScaffoldOptions
	Selection deps.Selection
	Completed []State
}

// Orchestrator runs the scaffolding pipeline and owns rollback.
type Orchestrator struct {
	runner   shell.Runner
	deployer template.Deployer
	catalog  *template.Catalog
	table    *deps.Table
	reporter Reporter
	logger   *slog.Logger

	workDir   string
	excludes  []string
	pipeline  Pipeline
	removeAll func(string) error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkDir sets the directory the project is created in. Defaults to
// the current working directory.
func WithWorkDir(dir string) Option {
	return func(o *Orchestrator) { o.workDir = dir }
}

// WithExcludes adds dependency exclusion globs on top of the catalog's.
func WithExcludes(globs ...string) Option {
	return func(o *Orchestrator) { o.excludes = append(o.excludes, globs...) }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// WithRemover replaces the function used to delete the project directory
// on rollback. Defaults to os.RemoveAll.
func WithRemover(remove func(string) error) Option {
	return func(o *Orchestrator) { o.removeAll = remove }
}

// WithPipeline replaces the default steps.
func WithPipeline(p Pipeline) Option {
	return func(o *Orchestrator) { o.pipeline = p }
}

// NewOrchestrator creates an Orchestrator with the given dependencies.
func NewOrchestrator(runner shell.Runner, deployer template.Deployer, catalog *template.Catalog, table *deps.Table, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o := &Orchestrator{
		runner:    runner,
		deployer:  deployer,
		catalog:   catalog,
		table:     table,
		reporter:  NopReporter{},
		logger:    logger,
		removeAll: os.RemoveAll,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.pipeline == nil {
		o.pipeline = o.DefaultPipeline()
	}
	return o
}

// Steps returns the number of steps in the pipeline.
func (o *Orchestrator) Steps() int {
	return len(o.pipeline)
}

// SetReporter replaces the progress reporter. Reporters that number their
// lines need Steps, which is only known after construction.
func (o *Orchestrator) SetReporter(r Reporter) {
	if r == nil {
		r = NopReporter{}
	}
	o.reporter = r
}

// Plan validates opts and resolves everything a run needs without
// touching the filesystem.
func (o *Orchestrator) Plan(opts ScaffoldOptions) (*Run, error) {
	opts = opts.withDefaults()
	if err := Validate(opts); err != nil {
		return nil, err
	}

	cmds, err := shell.CommandsFor(opts.PackageManager)
	if err != nil {
		return nil, err
	}
	sel, err := deps.Select(o.table, o.catalog.Rules(o.excludes...), opts.Bundler, opts.Framework)
	if err != nil {
		return nil, errors.Wrap(err, "select dependencies")
	}

	dir, err := filepath.Abs(filepath.Join(o.workDir, opts.ProjectName))
	if err != nil {
		return nil, errors.Wrap(err, "resolve project directory")
	}

	return &Run{
		Options:   opts,
		Dir:       dir,
		Commands:  cmds,
		Selection: sel,
	}, nil
}

// Execute validates opts and runs every step in order. Any failure after
// the directory was created removes it. The returned Result is non-nil
// once validation passed.
func (o *Orchestrator) Execute(ctx context.Context, opts ScaffoldOptions) (*Result, error) {
	run, err := o.Plan(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Dir:       run.Dir,
		State:     StateStart,
		Options:   run.Options,
		Selection: run.Selection,
	}

	o.logger.Debug("scaffolding project",
		"name", run.Options.ProjectName,
		"bundler", run.Options.Bundler,
		"framework", run.Options.Framework,
		"package_manager", run.Options.PackageManager,
		"dir", run.Dir,
	)

	for _, step := range o.pipeline {
		if err := ctx.Err(); err != nil {
			serr := &StepError{State: step.Target, Title: step.Title, Err: err}
			o.reporter.StepFailed(step.Title, serr)
			o.logger.Error("run cancelled", "step", step.Title, "state", step.Target, "dir", run.Dir)
			return result, o.fail(run, result, serr)
		}

		o.reporter.StepStarted(step.Title)
		o.logger.Debug("step started", "step", step.Title, "state", step.Target)

		if err := step.Run(ctx, run); err != nil {
			serr := newStepError(step, err)
			o.reporter.StepFailed(step.Title, serr)
			o.logger.Error("step failed",
				"step", step.Title,
				"state", step.Target,
				"dir", run.Dir,
				"error", err,
				"stderr", serr.Stderr,
			)
			return result, o.fail(run, result, serr)
		}

		result.State = step.Target
		result.Completed = append(result.Completed, step.Target)
		o.reporter.StepSucceeded(step.Title)
		o.logger.Debug("step finished", "step", step.Title, "state", step.Target)
	}

	result.State = StateDone
	o.reporter.Done(result)
	return result, nil
}

func newStepError(step Step, err error) *StepError {
	serr := &StepError{State: step.Target, Title: step.Title, Err: err}
	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		serr.Stderr = shell.Tail(exitErr.Stderr, stderrTailLines)
	}
	return serr
}

// fail moves the run to FAILED and removes the project directory if this
// run created it. Rollback is attempted once.
func (o *Orchestrator) fail(run *Run, result *Result, serr *StepError) error {
	result.State = StateFailed
	if !run.Created {
		return serr
	}

	if err := o.removeAll(run.Dir); err != nil {
		o.logger.Error("rollback failed", "dir", run.Dir, "error", err)
		o.reporter.RollbackFailed(run.Dir, err)
		return errors.WithHintf(&RollbackError{Dir: run.Dir, StepErr: serr, Err: err},
			"remove %s manually", run.Dir)
	}

	o.logger.Debug("rolled back", "dir", run.Dir)
	o.reporter.RollbackSucceeded(run.Dir)
	return serr
}
