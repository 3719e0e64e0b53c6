package selbounds

import "testing"

func TestBoundTypeString(t *testing.T) {
	tests := []struct {
		b    BoundType
		want string
	}{
		{BoundEmpty, "Empty"},
		{BoundLeft, "Left"},
		{BoundRight, "Right"},
		{BoundCenter, "Center"},
		{BoundType(42), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.b.String(); got != tt.want {
				t.Errorf("BoundType(%d).String() = %q, want %q", tt.b, got, tt.want)
			}
		})
	}
}

func TestBoundTypeFlip(t *testing.T) {
	tests := []struct {
		in, want BoundType
	}{
		{BoundLeft, BoundRight},
		{BoundRight, BoundLeft},
		{BoundCenter, BoundCenter},
		{BoundEmpty, BoundEmpty},
	}
	for _, tt := range tests {
		if got := tt.in.Flip(); got != tt.want {
			t.Errorf("%v.Flip() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEndpointDefaultBoundType(t *testing.T) {
	if got := EndpointStart.DefaultBoundType(); got != BoundLeft {
		t.Errorf("start default = %v, want Left", got)
	}
	if got := EndpointEnd.DefaultBoundType(); got != BoundRight {
		t.Errorf("end default = %v, want Right", got)
	}
}

func TestEdgePairSub(t *testing.T) {
	e := EdgePair{Start: Pt(30, 20), End: Pt(30, 30)}
	got := e.Sub(Pt(0, 20))
	want := EdgePair{Start: Pt(30, 0), End: Pt(30, 10)}
	if got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if h := got.Height(); h != 10 {
		t.Errorf("Height() = %v, want 10", h)
	}
}
