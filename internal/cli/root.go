package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/csja-dev/csja/internal/cli/wizard"
	"github.com/csja-dev/csja/internal/config"
	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/internal/ui"
	"github.com/csja-dev/csja/pkg/models"
	"github.com/csja-dev/csja/pkg/version"
)

// CancelledMessage is printed when the user aborts the wizard.
const CancelledMessage = "Scaffolding cancelled."

// ErrProjectNameRequired is returned when no name is given and no prompt can be shown.
var ErrProjectNameRequired = errors.New("project name is required")

var rootCmd = &cobra.Command{
	Use:   "csja [project-name]",
	Short: "Create a simple JavaScript app",
	Long: `csja creates a new JavaScript project: it runs the package manager's init,
adds build, start, lint and test scripts, copies bundler configuration and a
starter source tree, and installs a pinned set of dependencies.

Usage patterns:
  csja <project-name>   Create ./<project-name> using flags and configured defaults
  csja                  Ask for name, bundler and framework interactively

Examples:
  csja my-app
  csja my-app --bundler rollup --framework svelte
  csja my-app --package-manager pnpm --skip-install`,
	Args:              cobra.MaximumNArgs(1),
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initDependencies,
	RunE:              runCreate,
}

// Execute runs the root command and prints any error it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("csja %s\n", version.Get()))

	pf := rootCmd.PersistentFlags()
	pf.Bool("verbose", false, "Log debug output to stderr")
	pf.String("config", "", "Config file (default: "+config.DefaultPath()+")")

	f := rootCmd.Flags()
	f.StringP("bundler", "b", "", "Bundler: Webpack or Rollup (default from config, else Webpack)")
	f.StringP("framework", "f", "", "Framework: none or Svelte (default from config, else none)")
	f.StringP("package-manager", "p", "", "Package manager: npm, yarn or pnpm (default from config, else npm)")
	f.Bool("skip-install", false, "Do not install dependencies")
	f.Bool("non-interactive", false, "Never prompt; the project name argument is required")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// initDependencies wires the composition root unless a test already did.
func initDependencies(cmd *cobra.Command, _ []string) error {
	if appDeps != nil {
		return nil
	}
	d, err := InitDependencies(InitOptions{
		ConfigPath: getStringFlag(cmd, "config"),
		Verbose:    getBoolFlag(cmd, "verbose"),
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	appDeps = d
	return nil
}

// stackFlags parses --bundler, --framework and --package-manager. Unset
// flags yield zero values.
func stackFlags(cmd *cobra.Command) (models.Bundler, models.Framework, models.PackageManager, error) {
	var (
		b   models.Bundler
		f   models.Framework
		pm  models.PackageManager
		err error
	)
	if v := getStringFlag(cmd, "bundler"); v != "" {
		if b, err = models.ParseBundler(v); err != nil {
			return "", "", "", errors.Wrap(err, "--bundler")
		}
	}
	if v := getStringFlag(cmd, "framework"); v != "" {
		if f, err = models.ParseFramework(v); err != nil {
			return "", "", "", errors.Wrap(err, "--framework")
		}
	}
	if v := getStringFlag(cmd, "package-manager"); v != "" {
		if pm, err = models.ParsePackageManager(v); err != nil {
			return "", "", "", errors.Wrap(err, "--package-manager")
		}
	}
	return b, f, pm, nil
}

// resolveOptions merges flags, the wizard and configured defaults, in that
// order of precedence.
func resolveOptions(cmd *cobra.Command, args []string, d *Dependencies) (project.ScaffoldOptions, error) {
	b, f, pm, err := stackFlags(cmd)
	if err != nil {
		return project.ScaffoldOptions{}, err
	}

	preset := wizard.WizardResult{Bundler: b, Framework: f}
	if len(args) == 1 {
		preset.ProjectName = args[0]
	} else {
		if getBoolFlag(cmd, "non-interactive") || d.Headless.IsHeadless() {
			return project.ScaffoldOptions{}, errors.WithHint(ErrProjectNameRequired,
				"usage: csja <project-name>")
		}
		answers, err := wizard.RunWithDefaults(preset)
		if err != nil {
			return project.ScaffoldOptions{}, err
		}
		preset = *answers
	}

	opts := project.ScaffoldOptions{
		ProjectName:    preset.ProjectName,
		Bundler:        preset.Bundler,
		Framework:      preset.Framework,
		PackageManager: pm,
		SkipInstall:    getBoolFlag(cmd, "skip-install"),
	}
	if opts.Bundler == "" {
		opts.Bundler = d.Config.Bundler
	}
	if opts.Framework == "" {
		opts.Framework = d.Config.Framework
	}
	if opts.PackageManager == "" {
		opts.PackageManager = d.Config.PackageManager
	}
	return opts, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	d := appDeps
	out := cmd.OutOrStdout()

	opts, err := resolveOptions(cmd, args, d)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, CancelledMessage)
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := d.NewOrchestrator()
	reporter := ui.NewStepReporter(d.Theme, d.Headless, out, orch.Steps())
	reporter.SetSummary(func(res *project.Result) string {
		return renderMarkdown(nextStepsMarkdown(res, d.WorkDir), d.Theme.NoColor || d.Headless.IsHeadless())
	})
	orch.SetReporter(reporter)

	if _, err := orch.Execute(ctx, opts); err != nil {
		var stepErr *project.StepError
		var rbErr *project.RollbackError
		if errors.As(err, &stepErr) || errors.As(err, &rbErr) {
			return reportedError{err}
		}
		return err
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
