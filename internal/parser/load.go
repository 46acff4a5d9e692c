package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrRead marks a failure of the underlying reader. A deck is never returned
// alongside it; callers are expected to treat it as fatal.
var ErrRead = errors.New("failed to read input")

// Options holds the layout constants the parser depends on
type Options struct {
	TabWidth   int // Spaces per expanded tab
	CodeIndent int // Leading columns that turn a line into code
}

// DefaultOptions returns the standard tab width and code indentation
func DefaultOptions() Options {
	return Options{
		TabWidth:   4,
		CodeIndent: 4,
	}
}

// Load reads markdown from r until EOF and builds a deck of slides.
// Only newline-terminated lines are kept; a trailing partial line is dropped.
func Load(r io.Reader, opts Options) (*Deck, error) {
	l := &loader{
		in:         bufio.NewReader(r),
		opts:       opts,
		classifier: NewClassifier(opts),
		deck:       newDeck(),
		text:       &Text{},
	}
	l.slide = l.deck.Slides[0]

	if err := l.run(); err != nil {
		return nil, err
	}

	postProcess(l.deck)
	return l.deck, nil
}

// loader holds the state of a single Load call
type loader struct {
	in         *bufio.Reader
	opts       Options
	classifier *Classifier

	deck  *Deck
	slide *Slide
	last  *Line // last line appended anywhere in the deck
	text  *Text
	// visual length of the pending line
	length int
}

func (l *loader) run() error {
	for {
		c, ok, err := l.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch {
		case c == '\n':
			l.endLine()

		case c == '\t':
			for i := 0; i < l.opts.TabWidth; i++ {
				l.text.Append(' ')
				l.length++
			}

		case c == '\\':
			l.text.Append(c)
			l.length++

			// escapes have no meaning inside code
			if l.text.nextNonblank(0) < l.opts.CodeIndent {
				next, ok, err := l.next()
				if err != nil {
					return err
				}
				if ok {
					l.text.Append(next)
					if isUTF8(next) {
						if err := l.copyContinuation(next); err != nil {
							return err
						}
					}
				}
			}

		case isPrint(c) || isSpace(c):
			l.text.Append(c)
			l.length++

		case isUTF8(c):
			l.text.Append(c)
			if err := l.copyContinuation(c); err != nil {
				return err
			}
			l.length++
		}
	}
}

// next reads one byte. ok is false at EOF.
func (l *loader) next() (c byte, ok bool, err error) {
	c, err = l.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return c, true, nil
}

// copyContinuation appends the bytes that follow the UTF-8 lead byte
func (l *loader) copyContinuation(lead byte) error {
	for i := 0; i < utf8Length(lead)-1; i++ {
		c, ok, err := l.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		l.text.Append(c)
	}
	return nil
}

// endLine classifies the pending text and either drops it, turns it into a
// slide break or appends it to the current slide
func (l *loader) endLine() {
	bits := l.classifier.Analyse(l.text)

	switch {
	case l.last == nil && bits.IsHR():
		// a rule before any content does not open an empty slide
		l.resetText()

	case bits.IsHR() && l.last.Bits.IsEmpty():
		l.slide = &Slide{}
		l.deck.Slides = append(l.deck.Slides, l.slide)
		l.resetText()

	default:
		line := &Line{
			Text:   l.text,
			Bits:   bits,
			Length: l.length,
			Offset: l.text.nextNonblank(0),
		}
		l.slide.Lines = append(l.slide.Lines, line)
		l.last = line

		l.text = &Text{}
		l.length = 0
	}
}

func (l *loader) resetText() {
	l.text.Release()
	l.length = 0
}
