// ============================================================================
// kfg - configuration language tooling
// ============================================================================
//
// Package:     printer
// Description: Color palette and styles for tree and token output
// Author:      felpofo
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package printer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorString = lipgloss.Color("#10B981") // Emerald
	ColorNumber = lipgloss.Color("#F59E0B") // Amber
	ColorBool   = lipgloss.Color("#3B82F6") // Blue
	ColorNull   = lipgloss.Color("#EF4444") // Red
	ColorKey    = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted  = lipgloss.Color("#6B7280") // Gray
	ColorError  = lipgloss.Color("#EF4444") // Red
	ColorOK     = lipgloss.Color("#10B981") // Emerald
)

// styles holds the styles bound to one renderer
type styles struct {
	str     lipgloss.Style
	number  lipgloss.Style
	boolean lipgloss.Style
	null    lipgloss.Style
	key     lipgloss.Style
	punct   lipgloss.Style
	kind    lipgloss.Style
	pos     lipgloss.Style
	ok      lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		str:     r.NewStyle().Foreground(ColorString),
		number:  r.NewStyle().Foreground(ColorNumber),
		boolean: r.NewStyle().Foreground(ColorBool),
		null:    r.NewStyle().Foreground(ColorNull).Italic(true),
		key:     r.NewStyle().Foreground(ColorKey),
		punct:   r.NewStyle().Foreground(ColorMuted),
		kind:    r.NewStyle().Bold(true),
		pos:     r.NewStyle().Foreground(ColorMuted),
		ok:      r.NewStyle().Foreground(ColorOK).Bold(true),
		failure: r.NewStyle().Foreground(ColorError).Bold(true),
	}
}
