package text

import "github.com/rivo/uniseg"

// CaretStops returns the byte offsets in s at which a caret may rest: the
// grapheme cluster boundaries, always including 0 and len(s).
func CaretStops(s string) []int {
	stops := []int{0}
	if s == "" {
		return stops
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		stops = append(stops, to)
	}
	return stops
}

// SnapToCaretStop moves offset to a grapheme boundary of s. An offset inside
// a cluster snaps backward, or forward when forward is set. Out-of-range
// offsets are clamped.
func SnapToCaretStop(s string, offset int, forward bool) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	prev := 0
	for _, stop := range CaretStops(s) {
		if stop == offset {
			return offset
		}
		if stop > offset {
			if forward {
				return stop
			}
			return prev
		}
		prev = stop
	}
	return len(s)
}
