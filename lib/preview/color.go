// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects whether previews carry ANSI styling.
type ColorMode string

const (
	// ColorAuto styles output only when w is a color terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces 256-color styling, for piping into "less -R".
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// ParseColorMode accepts "auto", "always", or "never". Empty is auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(value); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: expected auto, always, or never", value)
	}
}

// NewRenderer returns a lipgloss renderer for output written to w. Auto
// detects the profile from w and the environment; the other modes
// override both, NO_COLOR included.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	var profile termenv.Profile
	switch mode {
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorNever:
		profile = termenv.Ascii
	default:
		return lipgloss.NewRenderer(w)
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}
