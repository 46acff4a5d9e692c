package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/deckmd/internal/parser"
)

// bullets per list level
var bullets = [parser.MaxListLevel + 1]string{"", "•", "◦", "▪"}

// renderer turns classified lines into styled terminal text
type renderer struct {
	width      int
	codeIndent int
}

// slide renders every line of a slide, one terminal row per line
func (r renderer) slide(slide *parser.Slide) string {
	b := getBuilder()
	defer putBuilder(b)
	for i, line := range slide.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.line(line))
	}
	return b.String()
}

// line renders a single line according to its feature bits
func (r renderer) line(line *parser.Line) string {
	bits := line.Bits
	content := line.Content()

	switch {
	case bits.IsCode():
		return styles.Code.Render(r.codeText(line))
	case bits.IsList():
		return r.listItem(line)
	case bits.IsHR():
		return styles.Rule.Render(strings.Repeat("─", max(r.width, 1)))
	case bits.IsH1():
		return styles.H1.Render(unescape(stripHeading(content, "#")))
	case bits.IsH2():
		return styles.H2.Render(unescape(stripHeading(content, "##")))
	case bits.IsQuote():
		return styles.QuoteBar.Render("│ ") + styles.Quote.Render(unescape(stripQuote(content)))
	case bits.IsEmpty() && strings.TrimSpace(content) == "":
		return ""
	default:
		return styles.Text.Render(strings.Repeat(" ", line.Offset) + unescape(content))
	}
}

// codeText returns a code line with the code indentation removed
func (r renderer) codeText(line *parser.Line) string {
	text := strings.TrimRight(line.String(), " \r")
	if line.Bits.IsList() {
		return text
	}
	cut := min(r.codeIndent, line.Offset, len(text))
	return text[cut:]
}

// listItem renders a list line with guides for the enclosing levels
func (r renderer) listItem(line *parser.Line) string {
	level := line.ListLevel()

	var prefix strings.Builder
	for l := 1; l < level; l++ {
		if line.Bits.Has(parser.ListBit(l)) {
			prefix.WriteString("│ ")
		} else {
			prefix.WriteString("  ")
		}
	}

	content := line.Content()
	if len(content) < 2 {
		return styles.Bullet.Render(prefix.String()) + unescape(content)
	}
	item := content[2:]

	return styles.Bullet.Render(prefix.String()+bullets[level]) + " " + styles.Text.Render(unescape(item))
}

// stripHeading removes a leading hash marker and the spaces after it
func stripHeading(s, marker string) string {
	if !strings.HasPrefix(s, marker) {
		return s
	}
	return strings.TrimLeft(strings.TrimPrefix(s, marker), " ")
}

// stripQuote removes the quote marker and one following space
func stripQuote(s string) string {
	s = strings.TrimPrefix(s, ">")
	return strings.TrimPrefix(s, " ")
}

// unescape drops the backslash in front of escaped characters
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// center pads s on the left so it sits in the middle of width columns
func center(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
