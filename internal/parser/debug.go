package parser

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDebug writes a summary of the deck structure to w.
// Level 1 prints header, slide and per-slide line counts. Level 2 also
// prints header values and the bits and length of every line.
func WriteDebug(w io.Writer, deck *Deck, level int) error {
	if level <= 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "headers: %d\nslides: %d\n", deck.HeaderLen(), deck.Len())

	if level > 1 {
		for _, header := range deck.Header {
			fmt.Fprintf(bw, "header: %s\n", headerValue(header))
		}
	}

	for i, slide := range deck.Slides {
		if level == 1 {
			fmt.Fprintf(bw, "  slide %d: %d lines\n", i+1, slide.Len())
			continue
		}

		fmt.Fprintf(bw, "  slide %d:\n", i+1)
		for j, line := range slide.Lines {
			fmt.Fprintf(bw, "    line %d: bits = %d, length = %d\n", j+1, line.Bits, line.Length)
		}
	}

	return bw.Flush()
}

// headerValue skips the directive word of a header line (e.g. "%title:")
func headerValue(line *Line) string {
	offset := line.Text.nextBlank(0) + 1
	if offset >= line.Text.Len() {
		return ""
	}
	return string(line.Text.Bytes()[offset:])
}

// ============================================================================
// Structured report
// ============================================================================

// Report is an exportable description of a parsed deck
type Report struct {
	Title   string        `yaml:"title,omitempty" json:"title,omitempty"`
	Author  string        `yaml:"author,omitempty" json:"author,omitempty"`
	Date    string        `yaml:"date,omitempty" json:"date,omitempty"`
	Headers []string      `yaml:"headers,omitempty" json:"headers,omitempty"`
	Slides  []SlideReport `yaml:"slides" json:"slides"`
}

// SlideReport describes one slide
type SlideReport struct {
	Number int          `yaml:"number" json:"number"`
	Lines  []LineReport `yaml:"lines" json:"lines"`
}

// LineReport describes one line
type LineReport struct {
	Text   string   `yaml:"text" json:"text"`
	Bits   int      `yaml:"bits" json:"bits"`
	Flags  []string `yaml:"flags,flow,omitempty" json:"flags,omitempty"`
	Offset int      `yaml:"offset" json:"offset"`
	Length int      `yaml:"length" json:"length"`
}

// NewReport builds a Report for deck
func NewReport(deck *Deck) Report {
	report := Report{
		Title:  deck.Title(),
		Author: deck.Author(),
		Date:   deck.Date(),
		Slides: make([]SlideReport, 0, deck.Len()),
	}

	for _, header := range deck.Header {
		report.Headers = append(report.Headers, header.String())
	}

	for i, slide := range deck.Slides {
		sr := SlideReport{
			Number: i + 1,
			Lines:  make([]LineReport, 0, slide.Len()),
		}
		for _, line := range slide.Lines {
			sr.Lines = append(sr.Lines, LineReport{
				Text:   line.String(),
				Bits:   int(line.Bits),
				Flags:  line.Bits.Names(),
				Offset: line.Offset,
				Length: line.Length,
			})
		}
		report.Slides = append(report.Slides, sr)
	}

	return report
}
