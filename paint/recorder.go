package paint

import (
	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/geometry"
	"github.com/gogpu/selbounds/layout"
)

// Recorder attaches resolved selection bounds to chunks during a paint
// pass. A Recorder serves one pass.
type Recorder struct {
	bounds    geometry.Bounds
	ownership Ownership
}

// NewRecorder returns a recorder for the given global bounds.
func NewRecorder(bounds geometry.Bounds) *Recorder {
	return &Recorder{bounds: bounds}
}

// Bounds returns the bounds the recorder was created with.
func (r *Recorder) Bounds() geometry.Bounds { return r.bounds }

// Ownership returns the endpoints recorded so far.
func (r *Recorder) Ownership() Ownership { return r.ownership }

// textPainted is called when the traversal emits text fragment f into
// chunk c. Each endpoint is recorded at most once per pass.
func (r *Recorder) textPainted(f *layout.Fragment, c *Chunk) {
	for _, e := range selbounds.Endpoints {
		if r.ownership[e].IsSet() {
			continue
		}
		b, ok := r.bounds.Endpoint(e).Get()
		if !ok || b.Fragment != f.ID {
			continue
		}
		// Rounded edge minus rounded origin, so that adding the rounded
		// origin back yields the rounded global edge exactly.
		origin := c.Origin.Round()
		if c.LayerSelectionData == nil {
			c.LayerSelectionData = &LayerSelectionData{}
		}
		c.LayerSelectionData.set(e, PaintedSelectionBound{
			Type:      b.Type,
			EdgeStart: b.Edges.Start.Round().Sub(origin),
			EdgeEnd:   b.Edges.End.Round().Sub(origin),
		})
		r.ownership[e] = selbounds.Some(c.ID)
		selbounds.Logger().Debug("paint: endpoint recorded", "endpoint", e, "chunk", c.ID.String())
	}
}
