package paint

import (
	"image"
	"testing"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/geometry"
	"github.com/gogpu/selbounds/layout"
)

func TestRecorderTextPainted(t *testing.T) {
	bound := func(frag layout.FragmentID, x, y float64, typ selbounds.BoundType) selbounds.Optional[geometry.Bound] {
		return selbounds.Some(geometry.Bound{
			Edges:    selbounds.EdgePair{Start: selbounds.Pt(x, y), End: selbounds.Pt(x, y+1)},
			Type:     typ,
			Fragment: frag,
		})
	}
	rec := NewRecorder(geometry.Bounds{
		Start: bound(3, 8.4, 8, selbounds.BoundLeft),
		End:   bound(5, 9.6, 10, selbounds.BoundRight),
	})
	a := &Chunk{ID: ChunkID{Kind: ChunkLayer, Node: 1}, Origin: selbounds.Pt(0, 4)}
	b := &Chunk{ID: ChunkID{Kind: ChunkLayer, Node: 2}}

	rec.textPainted(&layout.Fragment{ID: 2}, a)
	if a.LayerSelectionData != nil {
		t.Fatalf("unrelated fragment recorded %v", a.LayerSelectionData)
	}

	rec.textPainted(&layout.Fragment{ID: 3}, a)
	got, ok := a.LayerSelectionData.Start.Get()
	want := PaintedSelectionBound{Type: selbounds.BoundLeft, EdgeStart: pt(8, 4), EdgeEnd: pt(8, 5)}
	if !ok || got != want {
		t.Errorf("Start = %v, want %v", a.LayerSelectionData.Start, want)
	}

	// The same fragment painted again (another chunk) is ignored.
	rec.textPainted(&layout.Fragment{ID: 3}, b)
	if b.LayerSelectionData != nil {
		t.Errorf("start recorded twice: %v", b.LayerSelectionData)
	}

	rec.textPainted(&layout.Fragment{ID: 5}, b)
	end, ok := b.LayerSelectionData.End.Get()
	if !ok || end.EdgeStart != pt(10, 10) || end.Type != selbounds.BoundRight {
		t.Errorf("End = %v", b.LayerSelectionData.End)
	}
	if b.LayerSelectionData.Start.IsSet() {
		t.Error("chunk b got a start record")
	}

	own := rec.Ownership()
	if o, _ := own.Owner(selbounds.EndpointStart); o != a.ID {
		t.Errorf("start owner = %v, want %v", o, a.ID)
	}
	if o, _ := own.Owner(selbounds.EndpointEnd); o != b.ID {
		t.Errorf("end owner = %v, want %v", o, b.ID)
	}
}

func TestRecorderFractionalOrigin(t *testing.T) {
	tests := []struct {
		origin, edge selbounds.Point
	}{
		{selbounds.Pt(0.5, 0), selbounds.Pt(1, 0)},
		{selbounds.Pt(0.6, 10.4), selbounds.Pt(1.2, 12.7)},
		{selbounds.Pt(1.4, 0.5), selbounds.Pt(2.6, 3.5)},
		{selbounds.Pt(-0.5, 7.5), selbounds.Pt(0.4, 8.49)},
	}
	for _, tt := range tests {
		rec := NewRecorder(geometry.Bounds{Start: selbounds.Some(geometry.Bound{
			Edges:    selbounds.EdgePair{Start: tt.edge, End: tt.edge.Add(selbounds.Pt(0, 10))},
			Type:     selbounds.BoundLeft,
			Fragment: 1,
		})})
		c := &Chunk{ID: ChunkID{Kind: ChunkLayer, Node: 1}, Origin: tt.origin}
		rec.textPainted(&layout.Fragment{ID: 1}, c)

		got, ok := c.LayerSelectionData.Start.Get()
		if !ok {
			t.Fatalf("origin %v: start not recorded", tt.origin)
		}
		if global, want := got.EdgeStart.Add(tt.origin.Round()), tt.edge.Round(); global != want {
			t.Errorf("origin %v edge %v: local %v + origin = %v, want %v", tt.origin, tt.edge, got.EdgeStart, global, want)
		}
		if d := got.EdgeEnd.Sub(got.EdgeStart); d != image.Pt(0, 10) {
			t.Errorf("origin %v: edge length %v, want (0,10)", tt.origin, d)
		}
	}
}
