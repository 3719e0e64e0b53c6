package paint

import (
	"slices"
	"testing"

	"github.com/gogpu/selbounds"
)

func owned(start, end *ChunkID) Ownership {
	var o Ownership
	if start != nil {
		o[selbounds.EndpointStart] = selbounds.Some(*start)
	}
	if end != nil {
		o[selbounds.EndpointEnd] = selbounds.Some(*end)
	}
	return o
}

func TestDiff(t *testing.T) {
	a := ChunkID{Kind: ChunkLayer, Node: 1}
	b := ChunkID{Kind: ChunkLayer, Node: 2}
	c := ChunkID{Kind: ChunkLayer, Node: 3}

	tests := []struct {
		name      string
		prev, cur Ownership
		want      []ChunkID
	}{
		{"none to none", owned(nil, nil), owned(nil, nil), nil},
		{"none to owned", owned(nil, nil), owned(&a, &b), []ChunkID{a, b}},
		{"owned to none", owned(&a, &b), owned(nil, nil), []ChunkID{a, b}},
		{"unchanged", owned(&a, &b), owned(&a, &b), nil},
		{"start moves", owned(&a, &c), owned(&b, &c), []ChunkID{a, b}},
		{"end moves", owned(&a, &b), owned(&a, &c), []ChunkID{b, c}},
		{"both into one chunk", owned(&a, &c), owned(&b, &b), []ChunkID{a, b, c}},
		{"both leave one chunk", owned(&b, &b), owned(&a, &c), []ChunkID{b, a, c}},
		{"swap", owned(&a, &b), owned(&b, &a), []ChunkID{a, b}},
		{"start dropped only", owned(&a, &b), owned(nil, &b), []ChunkID{a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.prev, tt.cur)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Diff() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDiffIndependence checks that moving only the end never touches the
// chunk holding the start.
func TestDiffIndependence(t *testing.T) {
	start := ChunkID{Kind: ChunkRoot}
	from := ChunkID{Kind: ChunkLayer, Node: 5}
	to := ChunkID{Kind: ChunkContinuation, Node: 0, Seq: 1}
	got := Diff(owned(&start, &from), owned(&start, &to))
	if slices.Contains(got, start) {
		t.Errorf("Diff() = %v includes the start owner", got)
	}
	if len(got) != 2 {
		t.Errorf("Diff() = %v, want the two end owners", got)
	}
}

func TestOwnershipTracker(t *testing.T) {
	a := ChunkID{Kind: ChunkLayer, Node: 1}
	b := ChunkID{Kind: ChunkLayer, Node: 2}
	var tr OwnershipTracker

	steps := []struct {
		cur  Ownership
		want []ChunkID
	}{
		{owned(&a, &a), []ChunkID{a}},
		{owned(&a, &a), nil},
		{owned(&a, &b), []ChunkID{a, b}},
		{owned(nil, nil), []ChunkID{a, b}},
		{owned(nil, nil), nil},
	}
	for i, s := range steps {
		if got := tr.Commit(s.cur); !slices.Equal(got, s.want) {
			t.Errorf("step %d: Commit() = %v, want %v", i, got, s.want)
		}
		if tr.Previous() != s.cur {
			t.Errorf("step %d: Previous() = %v, want %v", i, tr.Previous(), s.cur)
		}
	}

	tr.Commit(owned(&a, &b))
	tr.Reset()
	if got := tr.Commit(owned(&a, &b)); !slices.Equal(got, []ChunkID{a, b}) {
		t.Errorf("Commit() after Reset = %v, want [a b]", got)
	}
}
