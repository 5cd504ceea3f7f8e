// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package preview

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used by the preview. All colors are ANSI
// 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color

	LinkForeground    lipgloss.Color
	MentionForeground lipgloss.Color
	CodeForeground    lipgloss.Color

	// Button colors by style.
	ButtonDefault lipgloss.Color
	ButtonPrimary lipgloss.Color
	ButtonDanger  lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),

	LinkForeground:    lipgloss.Color("75"),  // blue
	MentionForeground: lipgloss.Color("220"), // amber
	CodeForeground:    lipgloss.Color("209"), // salmon

	ButtonDefault: lipgloss.Color("252"),
	ButtonPrimary: lipgloss.Color("114"), // green
	ButtonDanger:  lipgloss.Color("196"), // red
}
