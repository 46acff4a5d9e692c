package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		headers []string
		lines   []string
	}{
		{
			name:    "directives",
			input:   "%title: Deck\n%author: Me\n\n# Hi\n",
			headers: []string{"%title: Deck", "%author: Me"},
			lines:   []string{"", "# Hi"},
		},
		{
			name:    "header only",
			input:   "%title: x\n",
			headers: []string{"%title: x"},
			lines:   []string{},
		},
		{
			name:    "header must be contiguous",
			input:   "%a\ntext\n%b\n",
			headers: []string{"%a"},
			lines:   []string{"text", "%b"},
		},
		{
			name:    "indented percent is not a header",
			input:   " %a\n",
			headers: nil,
			lines:   []string{" %a"},
		},
		{
			name:    "header must start the deck",
			input:   "text\n%a\n",
			headers: nil,
			lines:   []string{"text", "%a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := mustLoad(t, tt.input)

			var headers []string
			for _, h := range deck.Header {
				headers = append(headers, h.String())
			}
			assert.Equal(t, tt.headers, headers)
			assert.Equal(t, len(tt.headers), deck.HeaderLen())
			assert.Equal(t, tt.lines, slideTexts(deck.Slides[0]))
		})
	}
}

func TestExtractHeaderIsIdempotent(t *testing.T) {
	deck := mustLoad(t, "%title: Deck\n%author: Me\nbody\n%late\n")
	require.Equal(t, 2, deck.HeaderLen())

	extractHeader(deck)
	assert.Equal(t, 2, deck.HeaderLen())
	assert.Equal(t, []string{"body", "%late"}, slideTexts(deck.Slides[0]))
}

func TestHeaderOnlyFirstSlide(t *testing.T) {
	deck := mustLoad(t, "a\n\n---\n%title: x\n")
	require.Equal(t, 2, deck.Len())
	assert.Equal(t, 0, deck.HeaderLen())
	assert.Equal(t, []string{"%title: x"}, slideTexts(deck.Slides[1]))
}

func TestMergeUnderlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
		bits  []Bits
	}{
		{
			name:  "setext h1",
			input: "Title\n=====\n",
			lines: []string{"Title"},
			bits:  []Bits{H1},
		},
		{
			name:  "setext h2",
			input: "Title\n-----\nbody\n",
			lines: []string{"Title", "body"},
			bits:  []Bits{H2, 0},
		},
		{
			name:  "underline after blank is kept",
			input: "\n===\n",
			lines: []string{"", "==="},
			bits:  []Bits{Empty, H1 | Empty},
		},
		{
			name:  "repeated underlines fold into one heading",
			input: "Title\n===\n===\n",
			lines: []string{"Title"},
			bits:  []Bits{H1},
		},
		{
			name:  "first line is never merged",
			input: "===\ntext\n",
			lines: []string{"===", "text"},
			bits:  []Bits{H1 | Empty, 0},
		},
		{
			name:  "bare hash acts as an underline",
			input: "Title\n#\n",
			lines: []string{"Title"},
			bits:  []Bits{H1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := mustLoad(t, tt.input)
			require.Equal(t, 1, deck.Len())
			assert.Equal(t, tt.lines, slideTexts(deck.Slides[0]))
			assert.Equal(t, tt.bits, slideBits(deck.Slides[0]))
		})
	}
}

func TestMergeUnderlineReleasesText(t *testing.T) {
	slide := &Slide{Lines: []*Line{
		{Text: NewText("Title"), Bits: 0},
		{Text: NewText("==="), Bits: H1 | Empty},
	}}
	underline := slide.Lines[1]

	mergeUnderlines(slide)

	require.Equal(t, 1, slide.Len())
	assert.Equal(t, 0, underline.Text.Len())
	assert.True(t, slide.Lines[0].Bits.IsH1())
}

func TestPropagateLists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		bits  []Bits
	}{
		{
			name:  "nested item joins its parent list",
			input: "- a\n  - b\n- c\n",
			bits: []Bits{
				UnorderedList1,
				UnorderedList1 | UnorderedList2,
				UnorderedList1,
			},
		},
		{
			name:  "trailing nested item keeps its own level",
			input: "- a\n  - b\n",
			bits:  []Bits{UnorderedList1, UnorderedList2},
		},
		{
			name:  "second level spans the third",
			input: "- a\n  - b\n    - c\n  - d\n",
			bits: []Bits{
				UnorderedList1,
				UnorderedList2,
				UnorderedList2 | UnorderedList3,
				UnorderedList2,
			},
		},
		{
			name:  "all levels",
			input: "- a\n  - b\n    - c\n- d\n",
			bits: []Bits{
				UnorderedList1,
				UnorderedList1 | UnorderedList2,
				UnorderedList1 | UnorderedList3,
				UnorderedList1,
			},
		},
		{
			name:  "runs stop at non-list lines",
			input: "- a\n  - b\ntext\n- c\n",
			bits:  []Bits{UnorderedList1, UnorderedList2, 0, UnorderedList1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := mustLoad(t, tt.input)
			assert.Equal(t, tt.bits, slideBits(deck.Slides[0]))
		})
	}
}

func TestPropagateListsAcrossRemovedUnderline(t *testing.T) {
	// the rule is kept by the tokenizer, merged away, and the list runs join
	deck := mustLoad(t, "- a\n  - b\n---\n  - c\n")

	lines := deck.Slides[0].Lines
	require.Len(t, lines, 3)
	assert.True(t, lines[1].Bits.IsH2())
	assert.Equal(t, 2, lines[1].ListLevel())
	assert.True(t, lines[1].Bits.Has(UnorderedList1))
}
