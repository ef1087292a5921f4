// Package ui renders scaffolding progress: an animated spinner per step on
// a terminal, plain lines otherwise.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls how progress output is styled.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme. NO_COLOR in the environment disables color.
func NewTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: Colors{
			Primary:   "#DA7756",
			Secondary: "#C45A3C",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
		},
	}
}

// NewNoColorTheme returns a theme that emits no ANSI styling.
func NewNoColorTheme() *Theme {
	t := NewTheme()
	t.NoColor = true
	return t
}

func (t *Theme) style(color string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Success renders s in the success color.
func (t *Theme) Success(s string) string { return t.style(t.Colors.Success).Render(s) }

// Warn renders s in the warning color.
func (t *Theme) Warn(s string) string { return t.style(t.Colors.Warning).Render(s) }

// Error renders s in the error color.
func (t *Theme) Error(s string) string { return t.style(t.Colors.Error).Render(s) }

// Muted renders s in the muted color.
func (t *Theme) Muted(s string) string { return t.style(t.Colors.Muted).Render(s) }

// Primary renders s in the primary color.
func (t *Theme) Primary(s string) string { return t.style(t.Colors.Primary).Render(s) }
