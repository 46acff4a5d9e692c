package parser

import (
	"strings"
)

// Line is one row of input plus its classification
type Line struct {
	Text   *Text // Raw bytes, tabs expanded
	Bits   Bits  // Recognized markdown features
	Offset int   // Index of the first non-blank byte
	Length int   // Visual length before trimming
}

func (l *Line) String() string {
	return l.Text.String()
}

// Content returns the text from Offset with trailing whitespace removed
func (l *Line) Content() string {
	s := l.Text.String()
	if l.Offset >= len(s) {
		return ""
	}
	return strings.TrimRightFunc(s[l.Offset:], func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	})
}

// ListLevel returns the deepest unordered list level of the line
func (l *Line) ListLevel() int {
	return l.Bits.ListLevel()
}

// Slide is an ordered run of lines between two slide separators
type Slide struct {
	Lines []*Line
}

// Len returns the number of lines on the slide
func (s *Slide) Len() int {
	return len(s.Lines)
}

// remove splices out the line at i and releases its text
func (s *Slide) remove(i int) {
	s.Lines[i].Text.Release()
	copy(s.Lines[i:], s.Lines[i+1:])
	s.Lines[len(s.Lines)-1] = nil
	s.Lines = s.Lines[:len(s.Lines)-1]
}

// String joins the slide's raw line texts with newlines
func (s *Slide) String() string {
	var b strings.Builder
	for i, line := range s.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(line.Text.Bytes())
	}
	return b.String()
}

// Deck is a parsed document: slides plus an optional metadata header
type Deck struct {
	Slides []*Slide
	Header []*Line
}

func newDeck() *Deck {
	return &Deck{Slides: []*Slide{{}}}
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.Slides)
}

// HeaderLen returns the number of header lines
func (d *Deck) HeaderLen() int {
	return len(d.Header)
}

// ============================================================================
// Header directives
// ============================================================================

// positional directive names for header lines without a keyword
var positionalDirectives = []string{"title", "author", "date"}

// Directive returns the value of a header line of the form "%name: value".
// Lines of the form "% value" are matched by position: title, author, date.
func (d *Deck) Directive(name string) string {
	name = strings.ToLower(name)
	for i, line := range d.Header {
		key, value, keyed := splitDirective(line.Text.String())
		if keyed && key == name {
			return value
		}
		if !keyed && i < len(positionalDirectives) && positionalDirectives[i] == name {
			return value
		}
	}
	return ""
}

// Title returns the %title header directive
func (d *Deck) Title() string { return d.Directive("title") }

// Author returns the %author header directive
func (d *Deck) Author() string { return d.Directive("author") }

// Date returns the %date header directive
func (d *Deck) Date() string { return d.Directive("date") }

// splitDirective parses "%key: value" into its parts. keyed is false when the
// first word does not end in a colon.
func splitDirective(s string) (key, value string, keyed bool) {
	s = strings.TrimPrefix(s, "%")
	word := s
	rest := ""
	if idx := strings.IndexFunc(s, func(r rune) bool { return r < 0x80 && isSpace(byte(r)) }); idx >= 0 {
		word, rest = s[:idx], s[idx:]
	}
	if strings.HasSuffix(word, ":") && len(word) > 1 {
		return strings.ToLower(strings.TrimSuffix(word, ":")), strings.TrimSpace(rest), true
	}
	return "", strings.TrimSpace(s), false
}
