package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/internal/template"
)

const nextStepsWidth = 80

// nextStepsMarkdown lists the commands to run in a freshly created project.
func nextStepsMarkdown(res *project.Result, workDir string) string {
	dir := res.Dir
	if rel, err := filepath.Rel(workDir, res.Dir); err == nil && !strings.HasPrefix(rel, "..") {
		dir = rel
	}
	pm := string(res.Options.PackageManager)
	run := template.RunPrefix(res.Options.PackageManager)

	var b strings.Builder
	b.WriteString("## Next steps\n\n```sh\n")
	fmt.Fprintf(&b, "cd %s\n", dir)
	if res.Options.SkipInstall {
		fmt.Fprintf(&b, "%s install\n", pm)
	}
	fmt.Fprintf(&b, "%s start\n", run)
	b.WriteString("```\n\n")
	fmt.Fprintf(&b, "- `%s build` bundles for production\n", run)
	fmt.Fprintf(&b, "- `%s test` runs jest in watch mode\n", run)
	fmt.Fprintf(&b, "- `%s lint` checks `src/` with eslint\n", run)
	return b.String()
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, plain bool) string {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(nextStepsWidth))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
