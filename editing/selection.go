// Package editing holds the selection model read by the paint pipeline:
// selections over dom positions, the per-frame selection state (handle
// visibility, focus) and the selection-sample markup used in tests.
package editing

import (
	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
)

// Affinity decides which line a caret belongs to when its offset sits
// exactly at a soft line wrap.
type Affinity uint8

const (
	// AffinityDownstream places the caret at the start of the next line.
	AffinityDownstream Affinity = iota
	// AffinityUpstream places the caret at the end of the previous line.
	AffinityUpstream
)

// String returns the string representation of the affinity.
func (a Affinity) String() string {
	if a == AffinityUpstream {
		return "Upstream"
	}
	return "Downstream"
}

// Selection is an anchored range between Base (where the selection started)
// and Extent (where it was extended to). Base may come after Extent.
type Selection struct {
	Base     dom.Position
	Extent   dom.Position
	Affinity Affinity
}

// IsNone reports whether there is no selection at all.
func (s Selection) IsNone() bool {
	return s.Base.IsNull() || s.Extent.IsNull()
}

// IsCollapsed reports whether the selection is a caret.
func (s Selection) IsCollapsed() bool {
	return !s.IsNone() && dom.Compare(s.Base, s.Extent) == 0
}

// IsBaseFirst reports whether Base precedes or equals Extent.
func (s Selection) IsBaseFirst() bool {
	return dom.Compare(s.Base, s.Extent) <= 0
}

// Start returns the endpoint that comes first in document order.
func (s Selection) Start() dom.Position {
	if s.IsBaseFirst() {
		return s.Base
	}
	return s.Extent
}

// End returns the endpoint that comes last in document order.
func (s Selection) End() dom.Position {
	if s.IsBaseFirst() {
		return s.Extent
	}
	return s.Base
}

// Endpoint returns the position of the given endpoint.
func (s Selection) Endpoint(e selbounds.Endpoint) dom.Position {
	if e == selbounds.EndpointEnd {
		return s.End()
	}
	return s.Start()
}

// Builder assembles a Selection.
//
//	sel := editing.NewBuilder().
//	    Collapse(dom.Pos(text, 0)).
//	    Extend(dom.Pos(text, 3)).
//	    Build()
type Builder struct {
	sel Selection
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Collapse sets both base and extent to p.
func (b *Builder) Collapse(p dom.Position) *Builder {
	b.sel.Base, b.sel.Extent = p, p
	return b
}

// Extend moves the extent to p, keeping the base.
func (b *Builder) Extend(p dom.Position) *Builder {
	if b.sel.Base.IsNull() {
		b.sel.Base = p
	}
	b.sel.Extent = p
	return b
}

// SetAffinity sets the caret affinity.
func (b *Builder) SetAffinity(a Affinity) *Builder {
	b.sel.Affinity = a
	return b
}

// Build returns the assembled selection.
func (b *Builder) Build() Selection {
	return b.sel
}
