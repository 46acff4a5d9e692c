package clipboard

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClipboardCommand(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		expected  []string
	}{
		{
			name:      "prefers wayland",
			installed: map[string]bool{"wl-copy": true, "xclip": true},
			expected:  []string{"/bin/wl-copy"},
		},
		{
			name:      "xclip arguments",
			installed: map[string]bool{"xclip": true, "pbcopy": true},
			expected:  []string{"/bin/xclip", "-selection", "clipboard"},
		},
		{
			name:      "macos",
			installed: map[string]bool{"pbcopy": true},
			expected:  []string{"/bin/pbcopy"},
		},
		{
			name:      "none",
			installed: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &systemClipboard{lookPath: func(name string) (string, error) {
				if tt.installed[name] {
					return "/bin/" + name, nil
				}
				return "", exec.ErrNotFound
			}}

			cmd := c.findClipboardCommand()
			if tt.expected == nil {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd.Args)
		})
	}
}

func TestCopyUnavailable(t *testing.T) {
	c := &systemClipboard{lookPath: func(string) (string, error) {
		return "", exec.ErrNotFound
	}}
	assert.ErrorIs(t, c.Copy("x"), ErrUnavailable)
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Copy("slide"))
	assert.Equal(t, "slide", m.Text)

	boom := errors.New("boom")
	m.Err = boom
	assert.ErrorIs(t, m.Copy("other"), boom)
	assert.Equal(t, "slide", m.Text)
}
