// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     bench
// Description: Styles for terminal report output
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bench

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#6B7280") // Gray

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
