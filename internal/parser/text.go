package parser

// Text is a growable byte buffer holding one line of input.
// The zero value is an empty buffer ready for use.
type Text struct {
	buf []byte
}

// NewText returns a Text holding a copy of s
func NewText(s string) *Text {
	return &Text{buf: []byte(s)}
}

// Append adds a single byte to the end of the buffer
func (t *Text) Append(b byte) {
	t.buf = append(t.buf, b)
}

// Len returns the number of bytes in the buffer
func (t *Text) Len() int {
	return len(t.buf)
}

// At returns the byte at i, or 0 when i is out of range
func (t *Text) At(i int) byte {
	if i < 0 || i >= len(t.buf) {
		return 0
	}
	return t.buf[i]
}

// Bytes returns the buffer contents. The slice is only valid until the next Append.
func (t *Text) Bytes() []byte {
	return t.buf
}

// String returns the buffer contents as a string
func (t *Text) String() string {
	return string(t.buf)
}

// Release drops the underlying storage
func (t *Text) Release() {
	t.buf = nil
}

// nextNonblank returns the index of the first non-whitespace byte at or after i
func (t *Text) nextNonblank(i int) int {
	for i < len(t.buf) && isSpace(t.buf[i]) {
		i++
	}
	return i
}

// nextBlank returns the index of the first whitespace byte at or after i
func (t *Text) nextBlank(i int) int {
	for i < len(t.buf) && !isSpace(t.buf[i]) {
		i++
	}
	return i
}

// ============================================================================
// Byte classes
// ============================================================================

// isSpace matches the C locale whitespace set
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// isUTF8 reports whether b belongs to a multi-byte UTF-8 sequence
func isUTF8(b byte) bool {
	return b&0x80 != 0
}

// utf8Length counts the leading 1-bits of b, which for a lead byte is the
// total length of its sequence. Continuation bytes report 1 and ASCII 0.
func utf8Length(b byte) int {
	n := 0
	for b&0x80 != 0 {
		n++
		b <<= 1
	}
	return n
}
