package ui

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/deckmd/internal/parser"
)

func TestMain(m *testing.M) {
	// Plain output so assertions don't depend on the terminal running the tests
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	styles = DefaultStyles()
	os.Exit(m.Run())
}

func loadDeck(t *testing.T, input string) *parser.Deck {
	t.Helper()
	deck, err := parser.Load(strings.NewReader(input), parser.DefaultOptions())
	require.NoError(t, err)
	return deck
}

func TestRenderLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		expected string
	}{
		{name: "hash heading", input: "# Title\n", line: 0, expected: "Title"},
		{name: "second level heading", input: "## Sub\n", line: 0, expected: "Sub"},
		{name: "underlined heading", input: "Title\n===\n", line: 0, expected: "Title"},
		{name: "quote", input: "> wise words\n", line: 0, expected: "│ wise words"},
		{name: "code strips indent", input: "    x := 1\n", line: 0, expected: "x := 1"},
		{name: "code keeps extra indent", input: "      y\n", line: 0, expected: "  y"},
		{name: "whitespace only code", input: "# Hi\n    \nbody\n", line: 1, expected: ""},
		{name: "lone tab", input: "text\n\t\n", line: 1, expected: ""},
		{name: "rule", input: "text\n***\n", line: 1, expected: "────"},
		{name: "escaped text", input: `a \* b` + "\n", line: 0, expected: "a * b"},
		{name: "indented text", input: "  two\n", line: 0, expected: "  two"},
		{name: "empty", input: "text\n\n", line: 1, expected: ""},
		{name: "list item", input: "- one\n", line: 0, expected: "• one"},
	}

	r := renderer{width: 4, codeIndent: 4}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := loadDeck(t, tt.input)
			lines := deck.Slides[0].Lines
			require.Greater(t, len(lines), tt.line)
			assert.Equal(t, tt.expected, r.line(lines[tt.line]))
		})
	}
}

func TestRenderNestedList(t *testing.T) {
	r := renderer{width: 40, codeIndent: 4}

	t.Run("open parent", func(t *testing.T) {
		deck := loadDeck(t, "- one\n  - two\n- three\n")
		got := strings.Split(r.slide(deck.Slides[0]), "\n")
		assert.Equal(t, []string{"• one", "│ ◦ two", "• three"}, got)
	})

	t.Run("closed parent", func(t *testing.T) {
		deck := loadDeck(t, "- one\n  - two\n")
		got := strings.Split(r.slide(deck.Slides[0]), "\n")
		assert.Equal(t, []string{"• one", "  ◦ two"}, got)
	})
}

func TestRenderSlideWithBlankCodeLine(t *testing.T) {
	r := renderer{width: 40, codeIndent: 4}
	deck := loadDeck(t, "# Hi\n    \nbody\n")

	lines := deck.Slides[0].Lines
	require.Len(t, lines, 3)
	require.True(t, lines[1].Bits.IsCode())

	assert.Equal(t, "Hi\n\nbody", r.slide(deck.Slides[0]))
}

func TestStripHeading(t *testing.T) {
	assert.Equal(t, "Title", stripHeading("#  Title", "#"))
	assert.Equal(t, "Title", stripHeading("## Title", "##"))
	assert.Equal(t, "Title", stripHeading("Title", "#"))
}

func TestUnescape(t *testing.T) {
	tests := map[string]string{
		"plain":      "plain",
		`\*star\*`:   "*star*",
		`a\\b`:       `a\b`,
		`trailing\`:  `trailing\`,
		`\# heading`: "# heading",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, unescape(input), input)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab", center("ab", 6))
	assert.Equal(t, "toolong", center("toolong", 4))
}

func TestParseANSIColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("3"), parseANSIColor("33"))
	assert.Equal(t, lipgloss.Color("14"), parseANSIColor("96"))
	assert.Equal(t, lipgloss.Color("246"), parseANSIColor("246"))
	assert.Equal(t, lipgloss.Color("#ff00ff"), parseANSIColor("#ff00ff"))
}
