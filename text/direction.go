package text

import "golang.org/x/text/unicode/bidi"

// BaseDirection returns the direction of the first strong character in s,
// following the HTML dir=auto rule. ok is false when s has no strong
// character.
func BaseDirection(s string) (dir Direction, ok bool) {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR, true
		case bidi.R, bidi.AL:
			return DirectionRTL, true
		}
	}
	return DirectionLTR, false
}
