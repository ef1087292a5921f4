package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/internal/deps"
	"github.com/csja-dev/csja/internal/template"
	"github.com/csja-dev/csja/pkg/models"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the dependencies a new project would install",
	Long: `Print the devDependencies and dependencies selected for a bundler and
framework, as name@version tokens, without creating anything.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show the files a new project would receive",
	Long: `Print the configuration, mock and source files copied for a bundler and
framework. --all lists every embedded asset; --show prints one asset.`,
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func init() {
	for _, c := range []*cobra.Command{depsCmd, templatesCmd} {
		c.Flags().StringP("bundler", "b", "", "Bundler: Webpack or Rollup (default from config, else Webpack)")
		c.Flags().StringP("framework", "f", "", "Framework: none or Svelte (default from config, else none)")
		rootCmd.AddCommand(c)
	}
	depsCmd.Flags().Bool("plain", false, "Print two space-separated lines (dev, then runtime) for scripting")
	templatesCmd.Flags().Bool("all", false, "List every embedded asset")
	templatesCmd.Flags().String("show", "", "Print the content of one asset, e.g. webpack/webpack.config.js")
}

// selectedStack resolves --bundler and --framework against configured
// defaults and checks the pair is supported.
func selectedStack(cmd *cobra.Command, d *Dependencies) (models.Bundler, models.Framework, error) {
	b, f, _, err := stackFlags(cmd)
	if err != nil {
		return "", "", err
	}
	if b == "" {
		b = d.Config.Bundler
	}
	if f == "" {
		f = d.Config.Framework
	}
	if err := project.CheckCompatibility(b, f); err != nil {
		return "", "", err
	}
	return b, f, nil
}

func runDeps(cmd *cobra.Command, _ []string) error {
	d := appDeps
	b, f, err := selectedStack(cmd, d)
	if err != nil {
		return err
	}
	sel, err := deps.Select(d.Table, d.Catalog.Rules(d.Config.Exclude...), b, f)
	if err != nil {
		return errors.Wrap(err, "select dependencies")
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "plain") {
		_, _ = fmt.Fprintln(out, sel.DevString())
		_, _ = fmt.Fprintln(out, sel.ProdString())
		return nil
	}
	_, _ = fmt.Fprintln(out, cliPrimary.Render(fmt.Sprintf("%s + %s", b, f)))
	printList(out, "devDependencies", sel.Dev)
	printList(out, "dependencies", sel.Prod)
	return nil
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	d := appDeps
	out := cmd.OutOrStdout()

	if name := getStringFlag(cmd, "show"); name != "" {
		data, err := d.Deployer.ExtractTemplate(name)
		if err != nil {
			return errors.WithHint(err, "csja templates --all lists available assets")
		}
		_, err = out.Write(data)
		return err
	}
	if getBoolFlag(cmd, "all") {
		for _, name := range d.Deployer.ListTemplates() {
			_, _ = fmt.Fprintln(out, name)
		}
		return nil
	}

	b, f, err := selectedStack(cmd, d)
	if err != nil {
		return err
	}
	configs, err := d.Catalog.ConfigFiles(b, f)
	if err != nil {
		return err
	}
	src, err := d.Catalog.SrcFiles(b, f)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, cliPrimary.Render(fmt.Sprintf("%s + %s", b, f)))
	printFiles(out, "config", configs)
	printFiles(out, "mocks", d.Catalog.MockFiles())
	printFiles(out, "src", src)
	return nil
}

func printList(w io.Writer, title string, items []string) {
	_, _ = fmt.Fprintf(w, "\n%s %s\n", cliSuccess.Render(title), cliMuted.Render(fmt.Sprintf("(%d)", len(items))))
	for _, it := range items {
		_, _ = fmt.Fprintf(w, "  %s\n", it)
	}
}

func printFiles(w io.Writer, title string, files template.FileSet) {
	_, _ = fmt.Fprintf(w, "\n%s %s\n", cliSuccess.Render(title), cliMuted.Render(fmt.Sprintf("(%d)", len(files))))
	for _, e := range files {
		if e.Source == e.Dest {
			_, _ = fmt.Fprintf(w, "  %s\n", e.Dest)
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", e.Dest, cliMuted.Render("<- "+e.Source))
	}
}
