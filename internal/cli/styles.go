package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}).Bold(true)
)

func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// reportedError marks an error the step reporter already printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// printError writes err and any hints attached to it.
func printError(w io.Writer, err error) {
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", symError(), cliError.Render(err.Error()))
	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "  %s %s\n", symWarning(), cliMuted.Render(hint))
	}
}
