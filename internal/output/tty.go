package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return IsTTY() && term.IsTerminal(int(os.Stdin.Fd()))
}

// DisableColorWhenPiped strips styling when stdout is not a terminal.
func DisableColorWhenPiped() {
	if !IsTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
