// Package styles provides the lipgloss styles used for clg's diagnostics.
//
// Styled strings always carry ANSI sequences. Write them through
// [Writer], which downsamples or strips them to what the destination
// supports, so redirected stderr stays plain text.
package styles

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Colors used throughout the CLI
var (
	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Warning is used for ambiguity and fallback notices (orange)
	Warning = lipgloss.Color("214")

	// Accent highlights repository paths (pink)
	Accent = lipgloss.Color("212")

	// Muted is used for hints (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted).Italic(true)
)

// Writer wraps w so that styled output matches the color profile
// detected for w and the current environment.
func Writer(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}
