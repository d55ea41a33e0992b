// Package styles provides shared lipgloss styles for console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used for console messages
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Checkmark is the prefix for confirmation messages.
func Checkmark() string {
	return SuccessStyle.Render("✓")
}

// Cross is the prefix for failure messages.
func Cross() string {
	return ErrorStyle.Render("✗")
}
