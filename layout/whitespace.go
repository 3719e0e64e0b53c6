package layout

// collapsedText is the rendered form of one text node together with the
// mapping from DOM byte offsets to offsets in the rendered text.
type collapsedText struct {
	text string
	// mapping has len(data)+1 entries. Offsets inside a multi-byte rune map
	// like the rune start.
	mapping []int
}

// collapser collapses whitespace across the text nodes of one inline
// formatting context. In normal mode a run of spaces, tabs and newlines
// becomes one space, and a space directly after another rendered space or at
// the start of a line is dropped.
type collapser struct {
	prevSpace bool
}

func newCollapser() *collapser {
	return &collapser{prevSpace: true}
}

// forcedBreak resets the state after a <br>.
func (c *collapser) forcedBreak() { c.prevSpace = true }

func (c *collapser) collapse(data string, mode WhiteSpace) collapsedText {
	mapping := make([]int, len(data)+1)
	if mode == WhiteSpacePre {
		for i := range mapping {
			mapping[i] = i
		}
		if data != "" {
			c.prevSpace = data[len(data)-1] == '\n'
		}
		return collapsedText{text: data, mapping: mapping}
	}

	out := make([]byte, 0, len(data))
	for i, r := range data {
		size := len(string(r))
		for j := 0; j < size; j++ {
			mapping[i+j] = len(out)
		}
		if isCollapsible(r) {
			if !c.prevSpace {
				out = append(out, ' ')
				c.prevSpace = true
			}
			continue
		}
		out = append(out, data[i:i+size]...)
		c.prevSpace = false
	}
	mapping[len(data)] = len(out)
	return collapsedText{text: string(out), mapping: mapping}
}

// trimTrailingSpace removes a trailing collapsed space, as happens at the end
// of a line box or before a forced break.
func (t *collapsedText) trimTrailingSpace() bool {
	n := len(t.text)
	if n == 0 || t.text[n-1] != ' ' {
		return false
	}
	t.text = t.text[:n-1]
	for i, m := range t.mapping {
		if m > n-1 {
			t.mapping[i] = n - 1
		}
	}
	return true
}

func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isWhitespaceOnly reports whether s would collapse away entirely in normal
// mode.
func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !isCollapsible(r) {
			return false
		}
	}
	return true
}
