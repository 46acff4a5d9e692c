package parser

import "strings"

// Bits is the set of markdown features recognized on a line.
type Bits uint16

// Feature flags. The bit order is part of the debug output format.
const (
	HR Bits = 1 << iota
	Code
	Quote
	H1
	H2
	UnorderedList1
	UnorderedList2
	UnorderedList3
	Empty
)

// MaxListLevel is the deepest unordered list nesting the classifier tracks
const MaxListLevel = 3

var bitNames = []struct {
	bit  Bits
	name string
}{
	{HR, "hr"},
	{Code, "code"},
	{Quote, "quote"},
	{H1, "h1"},
	{H2, "h2"},
	{UnorderedList1, "list1"},
	{UnorderedList2, "list2"},
	{UnorderedList3, "list3"},
	{Empty, "empty"},
}

// ListBit returns the flag for an unordered list level, or 0 if level is out of range
func ListBit(level int) Bits {
	switch level {
	case 1:
		return UnorderedList1
	case 2:
		return UnorderedList2
	case 3:
		return UnorderedList3
	}
	return 0
}

// Has reports whether every flag in f is set
func (b Bits) Has(f Bits) bool { return b&f == f }

// Set returns b with the flags in f added
func (b Bits) Set(f Bits) Bits { return b | f }

// IsHR reports whether the line is a horizontal rule
func (b Bits) IsHR() bool { return b.Has(HR) }

// IsCode reports whether the line is indented code
func (b Bits) IsCode() bool { return b.Has(Code) }

// IsQuote reports whether the line is a block quote
func (b Bits) IsQuote() bool { return b.Has(Quote) }

// IsH1 reports whether the line is a first level heading
func (b Bits) IsH1() bool { return b.Has(H1) }

// IsH2 reports whether the line is a second level heading
func (b Bits) IsH2() bool { return b.Has(H2) }

// IsEmpty reports whether the line has no text besides markup
func (b Bits) IsEmpty() bool { return b.Has(Empty) }

// IsList reports whether any unordered list level is set
func (b Bits) IsList() bool {
	return b&(UnorderedList1|UnorderedList2|UnorderedList3) != 0
}

// ListLevel returns the deepest unordered list level set, or 0
func (b Bits) ListLevel() int {
	for level := MaxListLevel; level > 0; level-- {
		if b.Has(ListBit(level)) {
			return level
		}
	}
	return 0
}

// atOrBelow reports whether b carries a list level of at least level
func (b Bits) atOrBelow(level int) bool {
	for l := level; l <= MaxListLevel; l++ {
		if b.Has(ListBit(l)) {
			return true
		}
	}
	return false
}

// Names lists the set flags in bit order
func (b Bits) Names() []string {
	var names []string
	for _, bn := range bitNames {
		if b.Has(bn.bit) {
			names = append(names, bn.name)
		}
	}
	return names
}

func (b Bits) String() string {
	if b == 0 {
		return "plain"
	}
	return strings.Join(b.Names(), "|")
}
