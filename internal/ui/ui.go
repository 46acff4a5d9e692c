package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gubarz/deckmd/internal/clipboard"
	"github.com/gubarz/deckmd/internal/parser"
)

// ErrEmptyDeck is returned when there is nothing to present
var ErrEmptyDeck = errors.New("deck has no slides")

// Options controls how the viewer runs
type Options struct {
	CodeIndent int
	AltScreen  bool
	Clipboard  clipboard.Clipboard // nil uses the system clipboard
}

// Run presents the deck until the user quits
func Run(deck *parser.Deck, opts Options) error {
	if deck == nil || deck.Len() == 0 {
		return ErrEmptyDeck
	}

	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer
	defer cleanup()

	programOpts := []tea.ProgramOption{tea.WithOutput(ttyOut), tea.WithInput(ttyIn)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newMainModel(deck, opts), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

// getTTY returns terminal handles for the viewer.
// The deck may arrive on stdin, so keys are read from /dev/tty whenever
// stdin is not a terminal, and output goes there when stdout is captured.
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()
	in, out = os.Stdin, os.Stdout

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0); err == nil {
			in = tty
			closers = append(closers, func() { tty.Close() })
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
			out = tty
			closers = append(closers, func() { tty.Close() })
		} else {
			out = os.Stderr // Last resort fallback
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))
	}

	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}
}
