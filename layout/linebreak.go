package layout

import (
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/selbounds/text"
)

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
	breakNewline
)

func classifyRune(r rune) breakClass {
	switch r {
	case '\n':
		return breakNewline
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}

// breakOpportunity describes the boundary before a byte offset.
type breakOpportunity uint8

const (
	breakNo breakOpportunity = iota
	breakAllowed
	breakMandatory
)

// findBreaks returns the boundary kind before every byte offset of s that
// starts a rune, plus len(s). Offsets inside a rune are breakNo.
func findBreaks(s string) []breakOpportunity {
	breaks := make([]breakOpportunity, len(s)+1)
	var prev rune
	prevClass := breakOther
	for i, r := range s {
		class := classifyRune(r)
		if i > 0 {
			breaks[i] = wordBreak(prev, r, prevClass, class)
		}
		prev, prevClass = r, class
	}
	if prevClass == breakNewline {
		breaks[len(s)] = breakMandatory
	}
	return breaks
}

// wordBreak reports the opportunity between prev and curr.
func wordBreak(prev, curr rune, prevClass, currClass breakClass) breakOpportunity {
	switch {
	case prevClass == breakNewline:
		return breakMandatory
	case currClass == breakClose, prevClass == breakOpen:
		return breakNo
	case prevClass == breakZero, prevClass == breakSpace:
		return breakAllowed
	case prevClass == breakHyphen && currClass != breakHyphen:
		return breakAllowed
	case currClass == breakIdeographic:
		return breakAllowed
	case prevClass == breakIdeographic:
		return breakAllowed
	}
	// Break between letters and punctuation, except apostrophes and
	// separators inside numbers.
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) &&
		curr != '\'' && curr != '.' && curr != ',' {
		return breakAllowed
	}
	if unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr) {
		return breakAllowed
	}
	return breakNo
}

// lineRange is a half-open byte range of inline content forming one line.
type lineRange struct {
	start, end int
}

// measureFunc returns the width of content[start:end].
type measureFunc func(start, end int) float64

// breakLines splits content into lines. Mandatory breaks always end a line.
// When wrap is set, soft breaks are taken greedily so each line fits in
// avail; a word longer than avail falls back to grapheme boundaries.
// Trailing spaces hang and do not count against avail.
func breakLines(content string, avail float64, wrap bool, measure measureFunc) []lineRange {
	if content == "" {
		return nil
	}
	breaks := findBreaks(content)
	var lines []lineRange
	start := 0
	for start < len(content) {
		// The hard end is just past the next newline, or the content end.
		hard := len(content)
		for i := start + 1; i <= len(content); i++ {
			if breaks[i] == breakMandatory {
				hard = i
				break
			}
		}
		if !wrap || measure(start, trimHanging(content, start, hard)) <= avail {
			lines = append(lines, lineRange{start, hard})
			start = hard
			continue
		}
		end := -1
		for i := start + 1; i < hard; i++ {
			if breaks[i] != breakAllowed {
				continue
			}
			if measure(start, trimHanging(content, start, i)) > avail {
				break
			}
			end = i
		}
		if end < 0 {
			end = charFallback(content[start:hard], avail, func(e int) float64 {
				return measure(start, start+e)
			}) + start
		}
		lines = append(lines, lineRange{start, end})
		start = end
	}
	return lines
}

// trimHanging returns end moved back over trailing spaces and a newline.
func trimHanging(content string, start, end int) int {
	for end > start {
		r, size := utf8.DecodeLastRuneInString(content[start:end])
		if r != ' ' && r != '\t' && r != '\n' {
			break
		}
		end -= size
	}
	return end
}

// charFallback returns the longest grapheme prefix of s fitting in avail,
// never less than one grapheme.
func charFallback(s string, avail float64, measure func(end int) float64) int {
	stops := text.CaretStops(s)
	best := 0
	for _, stop := range stops[1:] {
		if best > 0 && measure(stop) > avail {
			break
		}
		best = stop
	}
	return best
}
