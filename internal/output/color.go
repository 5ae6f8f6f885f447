// Package output provides styled terminal rendering for nocrux.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorName is used for daemon names in log prefixes.
	ColorName = lipgloss.Color("#64b5f6")

	// ColorStarted is used for the running state.
	ColorStarted = lipgloss.Color("#66bb6a")

	// ColorStopped is used for the not-running state.
	ColorStopped = lipgloss.Color("#888888")

	// ColorError is used for failure messages.
	ColorError = lipgloss.Color("#ef5350")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleName renders daemon names.
	StyleName = lipgloss.NewStyle().
			Foreground(ColorName).
			Bold(true)

	// StyleStarted renders the "started" state.
	StyleStarted = lipgloss.NewStyle().
			Foreground(ColorStarted)

	// StyleStopped renders the "stopped" state.
	StyleStopped = lipgloss.NewStyle().
			Foreground(ColorStopped)

	// StyleDetail renders secondary process details.
	StyleDetail = lipgloss.NewStyle().
			Foreground(ColorStopped)

	// StyleError renders failure messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleName = plain
		StyleStarted = plain
		StyleStopped = plain
		StyleDetail = plain
		StyleError = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoColor disables color output when stdout is not a terminal.
func AutoColor() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}
