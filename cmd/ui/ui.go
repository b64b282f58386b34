// Package ui holds the terminal styling shared by the vcsgraph commands.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Icons used in command output
const (
	IconCommit  = "●"
	IconWarning = "⚠"
)

var (
	colorEnabled = true

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00D7FF"))
)

// SetColor turns colouring on or off for all helpers
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func paint(text string, color lipgloss.Color) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Yellow renders text in yellow
func Yellow(text string) string { return paint(text, lipgloss.Color("#FFD700")) }

// Cyan renders text in cyan
func Cyan(text string) string { return paint(text, lipgloss.Color("#5FD7FF")) }

// Green renders text in green
func Green(text string) string { return paint(text, lipgloss.Color("#00FF87")) }

// Magenta renders text in magenta
func Magenta(text string) string { return paint(text, lipgloss.Color("#AF87FF")) }

// Red renders text in red
func Red(text string) string { return paint(text, lipgloss.Color("#FF5F87")) }

// Header renders a section title
func Header(text string) string {
	if !colorEnabled {
		return text
	}
	return headerStyle.Render(text)
}
