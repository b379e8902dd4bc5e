// Package tui hosts the interactive session picker and its shared styling.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a truecolor profile when CLICOLOR_FORCE=1 or
// COLORTERM=truecolor is set, so a picker running inside a tmux popup or
// under a test harness still renders colors.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
