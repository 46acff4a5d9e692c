package parser

// Classifier assigns feature bits to lines. It carries the unordered list
// nesting state from one line to the next, so a Classifier must only be
// used for a single document.
type Classifier struct {
	codeIndent int

	// active list level, 0 when no list is open
	level int
	// marker column per level, -1 when unset
	offsets [MaxListLevel + 1]int
}

// NewClassifier returns a Classifier with no active list
func NewClassifier(opts Options) *Classifier {
	c := &Classifier{codeIndent: opts.CodeIndent}
	c.Reset()
	return c
}

// Reset closes any active list
func (c *Classifier) Reset() {
	c.level = 0
	for i := range c.offsets {
		c.offsets[i] = -1
	}
}

// Level returns the active list level
func (c *Classifier) Level() int {
	return c.level
}

// Analyse returns the feature bits of one line of text
func (c *Classifier) Analyse(text *Text) Bits {
	var bits Bits

	offset := text.nextNonblank(0)

	eol := text.Len()
	for eol > offset && isSpace(text.At(eol-1)) {
		eol--
	}

	if isListMarker(text, offset) && hasListContent(text, offset, eol) {
		bits = c.analyseListItem(offset)
	}

	if bits.IsList() {
		return bits
	}

	c.level = 0

	if offset >= c.codeIndent {
		return bits.Set(Code)
	}

	return bits | classifyContent(text, offset, eol)
}

// analyseListItem updates the nesting state for a list marker at offset and
// returns the line's bits. A marker past the code indent is code that still
// opens the first level when no list is active.
func (c *Classifier) analyseListItem(offset int) Bits {
	var bits Bits
	base := c.offsets[c.level]

	switch {
	case offset > base+c.codeIndent:
		// indented code under an item stays in the item's list
		bits = bits.Set(Code)
	case offset != base:
		found := false
		for i := c.level; i >= 0; i-- {
			if c.offsets[i] == offset {
				c.level = i
				found = true
				break
			}
		}
		if !found {
			c.level = min(c.level+1, MaxListLevel)
			c.offsets[c.level] = offset
		}
	}

	if c.level == 0 {
		c.level = 1
		c.offsets[1] = offset
	}

	return bits.Set(ListBit(c.level))
}

// isListMarker reports whether a '*' or '-' followed by a space starts at offset
func isListMarker(text *Text, offset int) bool {
	if text.Len() < offset+2 {
		return false
	}
	m := text.At(offset)
	return (m == '*' || m == '-') && text.At(offset+1) == ' '
}

// hasListContent reports whether [offset, eol) holds anything besides
// marker characters and spaces
func hasListContent(text *Text, offset, eol int) bool {
	for i := offset; i < eol; i++ {
		switch text.At(i) {
		case '*', '-', ' ':
		default:
			return true
		}
	}
	return false
}

// classifyContent counts markdown punctuation in [offset, eol) and derives
// heading, quote, rule and emptiness bits from the counts
func classifyContent(text *Text, offset, eol int) Bits {
	var bits Bits
	var equals, hashes, stars, minus, spaces, other int

	for i := offset; i < eol; i++ {
		switch text.At(i) {
		case ' ':
			spaces++
		case '=':
			equals++
		case '#':
			hashes++
		case '*':
			stars++
		case '-':
			minus++
		case '\\':
			other++
			i++
		default:
			other++
		}
	}

	first, second, third := text.At(offset), text.At(offset+1), text.At(offset+2)

	if (equals > 0 && hashes+stars+minus+spaces+other == 0) ||
		(first == '#' && second != '#') {
		bits = bits.Set(H1)
	}

	if (minus > 0 && equals+hashes+stars+spaces+other == 0) ||
		(first == '#' && second == '#' && third != '#') {
		bits = bits.Set(H2)
	}

	if first == '>' {
		bits = bits.Set(Quote)
	}

	if (minus >= 3 && equals+hashes+stars+other == 0) ||
		(stars >= 3 && equals+hashes+minus+other == 0) {
		bits = bits.Set(HR)
	}

	if other == 0 {
		bits = bits.Set(Empty)
	}

	return bits
}
