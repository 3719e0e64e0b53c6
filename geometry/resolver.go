// Package geometry resolves the endpoints of a selection to caret segments
// (edge pairs) and handle orientations in global coordinates.
package geometry

import (
	"fmt"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/layout"
)

// Bound is the resolved geometry of one selection endpoint.
type Bound struct {
	// Edges is the caret segment in global coordinates.
	Edges selbounds.EdgePair
	Type  selbounds.BoundType
	// Fragment is the text fragment that paints the endpoint. The paint
	// recorder attributes the bound to the chunk emitting this fragment.
	Fragment layout.FragmentID
}

// String returns a debug representation.
func (b Bound) String() string {
	return fmt.Sprintf("%s %v-%v @%d", b.Type, b.Edges.Start, b.Edges.End, b.Fragment)
}

// Bounds holds the optional bounds of both endpoints.
type Bounds struct {
	Start selbounds.Optional[Bound]
	End   selbounds.Optional[Bound]
}

// Endpoint returns the bound of the given endpoint.
func (b Bounds) Endpoint(e selbounds.Endpoint) selbounds.Optional[Bound] {
	if e == selbounds.EndpointEnd {
		return b.End
	}
	return b.Start
}

// IsEmpty reports whether neither endpoint resolved.
func (b Bounds) IsEmpty() bool {
	return !b.Start.IsSet() && !b.End.IsSet()
}

// Resolver computes selection bounds against box metrics. The zero value
// has an empty viewport and resolves nothing; use NewResolver.
type Resolver struct {
	viewport selbounds.Rect
}

// NewResolver returns a resolver that drops bounds lying fully outside the
// viewport rectangle.
func NewResolver(viewport selbounds.Rect) *Resolver {
	return &Resolver{viewport: viewport}
}

// ViewportRect converts a layout viewport to a rectangle at the origin.
func ViewportRect(v layout.Viewport) selbounds.Rect {
	return selbounds.RectXYWH(0, 0, v.Width, v.Height)
}

// Resolve computes the bounds of both endpoints of sel.
//
// The start endpoint resolves with downstream affinity and the end endpoint
// with upstream affinity, so at a soft wrap the start sits at the beginning
// of the next line and the end at the end of the previous one. A collapsed
// selection uses its own affinity for both and yields Center bounds.
func (r *Resolver) Resolve(sel editing.Selection, metrics layout.BoxMetrics) Bounds {
	if sel.IsNone() || metrics == nil {
		return Bounds{}
	}
	return Bounds{
		Start: r.resolveEndpoint(sel, selbounds.EndpointStart, metrics),
		End:   r.resolveEndpoint(sel, selbounds.EndpointEnd, metrics),
	}
}

func (r *Resolver) resolveEndpoint(sel editing.Selection, e selbounds.Endpoint, metrics layout.BoxMetrics) selbounds.Optional[Bound] {
	collapsed := sel.IsCollapsed()
	forward := e == selbounds.EndpointStart || collapsed
	pos := editing.CanonicalPosition(sel.Endpoint(e), forward)

	aff := editing.AffinityDownstream
	switch {
	case collapsed:
		aff = sel.Affinity
	case e == selbounds.EndpointEnd:
		aff = editing.AffinityUpstream
	}

	box, ok := metrics.CaretBox(pos, aff)
	if !ok {
		selbounds.Logger().Debug("geometry: no box for endpoint", "endpoint", e, "pos", pos.String())
		return selbounds.None[Bound]()
	}

	edges := selbounds.EdgePair{
		Start: selbounds.Pt(box.X, box.Baseline-box.Ascent),
		End:   selbounds.Pt(box.X, box.Baseline+box.Descent),
	}
	if !edges.IsFinite() || !(edges.Height() > 0) {
		selbounds.Logger().Warn("geometry: degenerate caret dropped", "endpoint", e, "edges", edges)
		return selbounds.None[Bound]()
	}
	if !r.viewport.Intersects(edges.Bounds()) {
		selbounds.Logger().Debug("geometry: endpoint outside viewport", "endpoint", e, "edges", edges)
		return selbounds.None[Bound]()
	}

	typ := e.DefaultBoundType()
	switch {
	case collapsed:
		typ = selbounds.BoundCenter
	case box.Direction.IsRTL():
		typ = typ.Flip()
	}
	return selbounds.Some(Bound{Edges: edges, Type: typ, Fragment: box.Fragment})
}
