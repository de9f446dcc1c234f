// Package ui holds the terminal styles shared by burpctl command output.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status colors, kept close to what security tooling conventionally uses.
var (
	successColor = lipgloss.Color("#00D26A")
	warnColor    = lipgloss.Color("#FFB800")
	errorColor   = lipgloss.Color("#FF3838")
	mutedColor   = lipgloss.Color("#6B7280")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warnColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// Okf renders a success line.
func Okf(format string, a ...any) string {
	return successStyle.Render(fmt.Sprintf(format, a...))
}

// Warnf renders a warning line.
func Warnf(format string, a ...any) string {
	return warnStyle.Render(fmt.Sprintf(format, a...))
}

// Errorf renders an error line.
func Errorf(format string, a ...any) string {
	return errorStyle.Render(fmt.Sprintf(format, a...))
}

// Mutedf renders a low-priority progress line.
func Mutedf(format string, a ...any) string {
	return mutedStyle.Render(fmt.Sprintf(format, a...))
}
