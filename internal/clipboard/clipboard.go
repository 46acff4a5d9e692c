// Package clipboard copies text to the system clipboard through whichever
// clipboard tool is installed.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed
var ErrUnavailable = errors.New("no clipboard tool found (wl-copy, xclip, xsel, pbcopy)")

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// tool is a clipboard command and its arguments
type tool struct {
	name string
	args []string
}

var tools = []tool{
	{"wl-copy", nil},
	{"xclip", []string{"-selection", "clipboard"}},
	{"xsel", []string{"--clipboard", "--input"}},
	{"pbcopy", nil},
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	lookPath func(string) (string, error)
}

// System returns a Clipboard backed by the first clipboard tool found on PATH
func System() Clipboard {
	return &systemClipboard{lookPath: exec.LookPath}
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		return ErrUnavailable
	}
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard %s: %w", cmd.Path, err)
	}
	return nil
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	for _, t := range tools {
		if path, err := c.lookPath(t.name); err == nil {
			return exec.Command(path, t.args...)
		}
	}
	return nil
}

// Memory is an in-process Clipboard that records what was copied
type Memory struct {
	Text string
	Err  error
}

// Copy stores text unless Err is set
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
