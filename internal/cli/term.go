package cli

import (
	"os"

	"golang.org/x/term"
)

// interactive reports whether both ends of the conversation are terminals;
// the bubbletea selector and the spinner only run when they are.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
