// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     viewer
// Description: Styles for the document viewer
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/felpofo/kfg/internal/printer"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(printer.ColorKey)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(printer.ColorOK)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(printer.ColorError).
				Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(printer.ColorKey).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(printer.ColorMuted)
)

// RenderKeyHint renders a key hint for the help bar
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
