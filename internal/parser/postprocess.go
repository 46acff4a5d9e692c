package parser

// postProcess fixes up classification that needs more than one line of context
func postProcess(deck *Deck) {
	extractHeader(deck)
	for _, slide := range deck.Slides {
		mergeUnderlines(slide)
		propagateLists(slide)
	}
}

// extractHeader moves the leading run of '%' lines of the first slide into
// the deck header
func extractHeader(deck *Deck) {
	if len(deck.Slides) == 0 {
		return
	}
	slide := deck.Slides[0]

	n := 0
	for n < len(slide.Lines) && isHeaderLine(slide.Lines[n]) {
		n++
	}
	if n == 0 {
		return
	}

	deck.Header = append(deck.Header, slide.Lines[:n]...)
	slide.Lines = append([]*Line(nil), slide.Lines[n:]...)
}

func isHeaderLine(line *Line) bool {
	return line.Text.Len() > 0 && line.Text.At(0) == '%'
}

// mergeUnderlines folds setext underline rows into the heading line above them
func mergeUnderlines(slide *Slide) {
	for i := 1; i < len(slide.Lines); i++ {
		line := slide.Lines[i]
		prev := slide.Lines[i-1]

		if !(line.Bits.IsH1() || line.Bits.IsH2()) || !line.Bits.IsEmpty() || prev.Bits.IsEmpty() {
			continue
		}

		if line.Bits.IsH1() {
			prev.Bits = prev.Bits.Set(H1)
		} else {
			prev.Bits = prev.Bits.Set(H2)
		}

		slide.remove(i)
		i--
	}
}

// propagateLists marks every line of a list run with the levels of the
// enclosing items, so that a nested item also counts as part of its parent
// list up to the parent's last item
func propagateLists(slide *Slide) {
	for level := 1; level <= MaxListLevel; level++ {
		bit := ListBit(level)
		lines := slide.Lines

		for i := 0; i < len(lines); i++ {
			if !lines[i].Bits.Has(bit) {
				continue
			}

			last := i
			end := i + 1
			for ; end < len(lines) && lines[end].Bits.atOrBelow(level); end++ {
				if lines[end].Bits.Has(bit) {
					last = end
				}
			}

			for j := i; j < last; j++ {
				lines[j].Bits = lines[j].Bits.Set(bit)
			}

			i = end - 1
		}
	}
}
