package selbounds

import (
	"image"
	"math"
	"testing"
)

func TestPointRound(t *testing.T) {
	tests := []struct {
		p    Point
		want image.Point
	}{
		{Pt(0, 0), image.Pt(0, 0)},
		{Pt(8.4, 8.6), image.Pt(8, 9)},
		{Pt(-0.5, 0.5), image.Pt(-1, 1)},
		{Pt(29.999, 10.001), image.Pt(30, 10)},
	}
	for _, tt := range tests {
		if got := tt.p.Round(); got != tt.want {
			t.Errorf("%v.Round() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(1, 2), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(1)), false},
		{Pt(math.Inf(-1), math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 20, 10, 10)

	got := a.Union(b)
	want := Rect{Min: Pt(0, 0), Max: Pt(15, 30)}
	if got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union(b) = %v, want %v", got, b)
	}
}

func TestRectContainsEdge(t *testing.T) {
	r := RectXYWH(0, 10, 30, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 10), true},
		{Pt(30, 20), true},
		{Pt(15, 15), true},
		{Pt(31, 15), false},
		{Pt(15, 9.5), false},
	}
	for _, tt := range tests {
		if got := r.ContainsEdge(tt.p); got != tt.want {
			t.Errorf("ContainsEdge(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	viewport := RectXYWH(0, 0, 800, 600)
	if !viewport.Intersects(RectXYWH(800, 0, 0, 10)) {
		t.Error("touching edge should intersect")
	}
	if viewport.Intersects(RectXYWH(0, 700, 1, 10)) {
		t.Error("rect below viewport should not intersect")
	}
}
