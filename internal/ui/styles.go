// Package ui provides consistent styling and components for the waytap CLI
package ui

import (
	"strings"

	"github.com/bnema/waytap/internal/tap"
	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	ColorPrimary   = lipgloss.Color("39")  // Bright blue
	ColorSecondary = lipgloss.Color("205") // Pink/magenta
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
	ColorMuted  = lipgloss.Color("238") // Dark gray

	ColorActive   = ColorSuccess
	ColorRetired  = ColorError
	ColorDetached = ColorSubtle
)

// Base styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ControlKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ControlDescStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Gesture phase styles
var (
	DownStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	MoveStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	UpStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
)

// Icons
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconActive  = "●"
	IconRetired = "○"
	IconSeen    = "◆"
)

// FormatControl renders a key binding hint.
func FormatControl(key, desc string) string {
	return ControlKeyStyle.Render(key) + " - " + ControlDescStyle.Render(desc)
}

// FormatPhase colours a gesture phase name.
func FormatPhase(p tap.Phase) string {
	name := p.String()
	switch p {
	case tap.PhaseDown:
		return DownStyle.Render(name)
	case tap.PhaseUp:
		return UpStyle.Render(name)
	default:
		return MoveStyle.Render(name)
	}
}

// FormatFamily renders a family with its arbitration state.
func FormatFamily(f tap.Family, active, seen bool) string {
	indicator := lipgloss.NewStyle().Foreground(ColorRetired).Render(IconRetired)
	if active {
		indicator = lipgloss.NewStyle().Foreground(ColorActive).Render(IconActive)
	}
	label := f.String()
	if seen {
		label += " " + InfoStyle.Render(IconSeen)
	}
	return indicator + " " + label
}

// FormatResult renders a success or failure line.
func FormatResult(success bool, message string) string {
	if success {
		return SuccessStyle.Render(IconSuccess) + " " + message
	}
	return ErrorStyle.Render(IconError) + " " + message
}

// FormatHeader renders a section title followed by a separator.
func FormatHeader(title string) string {
	return HeaderStyle.Render(title) + "\n" + CreateSeparator(50, "─")
}

// CreateSeparator creates a horizontal line separator
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		width = 50
	}
	if char == "" {
		char = "─"
	}

	return lipgloss.NewStyle().
		Foreground(ColorSubtle).
		Render(strings.Repeat(char, width))
}
