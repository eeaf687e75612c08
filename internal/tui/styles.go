package tui

import "github.com/charmbracelet/lipgloss"

// Styles for operator-facing output.
var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#9ECE6A"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E0AF68"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DCFFF"))

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DCFFF")).
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// OK renders a success status line.
func OK(s string) string { return okStyle.Render(s) }

// Warn renders a warning status line.
func Warn(s string) string { return warnStyle.Render(s) }

// Error renders a failure status line.
func Error(s string) string { return errorStyle.Render(s) }

// Label renders a field label.
func Label(s string) string { return labelStyle.Render(s) }

// Dim renders secondary text such as hints.
func Dim(s string) string { return dimStyle.Render(s) }
