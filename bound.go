package selbounds

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// BoundType is the orientation of a selection handle.
type BoundType uint8

const (
	// BoundEmpty is the zero value; it never appears on a resolved bound.
	BoundEmpty BoundType = iota
	// BoundLeft is a handle that hangs to the left of the caret segment.
	// Used for the start of a left-to-right selection.
	BoundLeft
	// BoundRight is a handle that hangs to the right of the caret segment.
	// Used for the end of a left-to-right selection.
	BoundRight
	// BoundCenter is an insertion-point handle centered on a collapsed caret.
	BoundCenter
)

// String returns the string representation of the bound type.
func (b BoundType) String() string {
	switch b {
	case BoundEmpty:
		return "Empty"
	case BoundLeft:
		return "Left"
	case BoundRight:
		return "Right"
	case BoundCenter:
		return "Center"
	default:
		return unknownStr
	}
}

// Flip swaps Left and Right, leaving other types untouched.
func (b BoundType) Flip() BoundType {
	switch b {
	case BoundLeft:
		return BoundRight
	case BoundRight:
		return BoundLeft
	default:
		return b
	}
}

// Endpoint names one boundary of a selection.
type Endpoint uint8

const (
	// EndpointStart is the boundary that comes first in document order.
	EndpointStart Endpoint = iota
	// EndpointEnd is the boundary that comes last in document order.
	EndpointEnd

	// NumEndpoints is the number of endpoints of a selection.
	NumEndpoints = 2
)

// Endpoints lists the endpoints in order, start first.
var Endpoints = [NumEndpoints]Endpoint{EndpointStart, EndpointEnd}

// String returns the string representation of the endpoint.
func (e Endpoint) String() string {
	switch e {
	case EndpointStart:
		return "Start"
	case EndpointEnd:
		return "End"
	default:
		return unknownStr
	}
}

// DefaultBoundType returns the handle orientation of the endpoint in
// left-to-right text.
func (e Endpoint) DefaultBoundType() BoundType {
	if e == EndpointEnd {
		return BoundRight
	}
	return BoundLeft
}

// EdgePair is a caret segment: Start is the top of the caret, End the bottom.
type EdgePair struct {
	Start, End Point
}

// Height returns the vertical extent of the caret segment.
func (e EdgePair) Height() float64 {
	return e.End.Y - e.Start.Y
}

// IsFinite reports whether all coordinates are finite.
func (e EdgePair) IsFinite() bool {
	return e.Start.IsFinite() && e.End.IsFinite()
}

// Sub returns the pair translated by -origin.
func (e EdgePair) Sub(origin Point) EdgePair {
	return EdgePair{Start: e.Start.Sub(origin), End: e.End.Sub(origin)}
}

// Bounds returns the rectangle spanned by the segment.
func (e EdgePair) Bounds() Rect {
	return Rect{Min: e.Start, Max: e.End}
}
