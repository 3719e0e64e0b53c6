package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested with a
	// non-positive or non-finite size.
	ErrInvalidSize = errors.New("text: invalid face size")
)

// UnknownFamilyError is returned when no face factory is registered for a
// family and the registry has no fallback.
type UnknownFamilyError struct {
	Family string
}

func (e *UnknownFamilyError) Error() string {
	return "text: unknown font family " + e.Family
}
