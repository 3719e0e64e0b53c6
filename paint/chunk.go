package paint

import (
	"fmt"
	"image"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
)

// ChunkKind says why a chunk exists.
type ChunkKind uint8

const (
	// ChunkRoot is the first chunk of a pass, holding the view background.
	ChunkRoot ChunkKind = iota
	// ChunkLayer holds the content of one composited block.
	ChunkLayer
	// ChunkContinuation holds content painted after a composited block in
	// the block's parent.
	ChunkContinuation
)

// String returns the string representation of the chunk kind.
func (k ChunkKind) String() string {
	switch k {
	case ChunkRoot:
		return "root"
	case ChunkLayer:
		return "layer"
	case ChunkContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// ChunkID identifies a chunk across passes. It is derived from the node
// that owns the chunk, so the same content yields the same id every frame.
type ChunkID struct {
	Kind ChunkKind
	// Node owns the chunk: the composited element of a layer chunk, or the
	// element of the enclosing layer for a continuation (zero for the
	// root layer).
	Node dom.NodeID
	// Seq numbers the continuations of one owner, starting at 1.
	Seq int
}

// String returns a short form such as "layer(7)" or "continuation(0#1)".
func (id ChunkID) String() string {
	switch id.Kind {
	case ChunkRoot:
		return "root"
	case ChunkContinuation:
		return fmt.Sprintf("continuation(%d#%d)", id.Node, id.Seq)
	default:
		return fmt.Sprintf("%s(%d)", id.Kind, id.Node)
	}
}

// Invalidation is the reason a chunk must be repainted this pass.
type Invalidation uint8

const (
	// InvalidationNone means the cached output is reused.
	InvalidationNone Invalidation = iota
	// InvalidationNew means the chunk did not exist in the previous pass.
	InvalidationNew
	// InvalidationContent means the chunk's display items changed.
	InvalidationContent
	// InvalidationSelection means only the selection record changed.
	InvalidationSelection
)

// String returns the string representation of the invalidation reason.
func (v Invalidation) String() string {
	switch v {
	case InvalidationNone:
		return "none"
	case InvalidationNew:
		return "new"
	case InvalidationContent:
		return "content"
	case InvalidationSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// PaintedSelectionBound is a selection handle bound in chunk-local integer
// pixels.
type PaintedSelectionBound struct {
	Type      selbounds.BoundType
	EdgeStart image.Point
	EdgeEnd   image.Point
}

// String returns a debug representation such as "Left (8,8)-(8,9)".
func (b PaintedSelectionBound) String() string {
	return fmt.Sprintf("%s %v-%v", b.Type, b.EdgeStart, b.EdgeEnd)
}

// LayerSelectionData is the selection record attached to a chunk. A chunk
// without endpoints has a nil record, never an empty one.
type LayerSelectionData struct {
	Start selbounds.Optional[PaintedSelectionBound]
	End   selbounds.Optional[PaintedSelectionBound]
}

// Bound returns the record of the given endpoint.
func (d *LayerSelectionData) Bound(e selbounds.Endpoint) selbounds.Optional[PaintedSelectionBound] {
	if e == selbounds.EndpointEnd {
		return d.End
	}
	return d.Start
}

func (d *LayerSelectionData) set(e selbounds.Endpoint, b PaintedSelectionBound) {
	if e == selbounds.EndpointEnd {
		d.End = selbounds.Some(b)
	} else {
		d.Start = selbounds.Some(b)
	}
}

// String returns a debug representation.
func (d *LayerSelectionData) String() string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{start: %v, end: %v}", d.Start, d.End)
}

// Chunk is a contiguous run of display items sharing one origin.
type Chunk struct {
	ID ChunkID
	// Origin is the global position of the chunk's local (0, 0).
	Origin selbounds.Point
	// Bounds is the union of the items' rectangles, in local coordinates.
	Bounds       selbounds.Rect
	Items        []DisplayItem
	Invalidation Invalidation
	// LayerSelectionData is nil unless an endpoint is painted in this chunk.
	LayerSelectionData *LayerSelectionData

	fingerprint uint64
}

// GlobalBounds returns Bounds in global coordinates.
func (c *Chunk) GlobalBounds() selbounds.Rect {
	return c.Bounds.Translate(c.Origin)
}

// NeedsRepaint reports whether the chunk's output must be re-emitted.
func (c *Chunk) NeedsRepaint() bool {
	return c.Invalidation != InvalidationNone
}

// String returns a debug representation.
func (c *Chunk) String() string {
	return fmt.Sprintf("%s origin=%v items=%d inval=%s sel=%v",
		c.ID, c.Origin, len(c.Items), c.Invalidation, c.LayerSelectionData)
}
