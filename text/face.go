package text

import "math"

// Face represents a font face at a specific size.
// Face implementations are safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	Advance(s string) float64

	// Size returns the size of this face in pixels.
	Size() float64

	// Family returns the registry family the face was created for.
	Family() string
}

func validSize(size float64) bool {
	return size > 0 && !math.IsNaN(size) && !math.IsInf(size, 0)
}
