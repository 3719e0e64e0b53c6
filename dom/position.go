package dom

import "fmt"

// Position is a boundary point inside a node. For a text node Offset is a
// byte offset into its data; for other nodes it is a child index.
type Position struct {
	Node   *Node
	Offset int
}

// Pos is a convenience function to create a Position.
func Pos(n *Node, offset int) Position {
	return Position{Node: n, Offset: offset}
}

// IsNull reports whether the position has no anchor node.
func (p Position) IsNull() bool { return p.Node == nil }

// IsValid reports whether the offset is within range of its node.
func (p Position) IsValid() bool {
	return p.Node != nil && p.Offset >= 0 && p.Offset <= p.Node.Len()
}

// String returns a debug representation such as "#text@3".
func (p Position) String() string {
	if p.Node == nil {
		return "null"
	}
	return fmt.Sprintf("%s@%d", p.Node, p.Offset)
}

// Compare orders two positions in document order. It returns -1, 0 or +1.
// Positions in different trees compare by node id.
func Compare(a, b Position) int {
	if a.Node == b.Node {
		return cmpInt(a.Offset, b.Offset)
	}
	// Null positions sort first.
	if a.Node == nil {
		return -1
	}
	if b.Node == nil {
		return 1
	}
	pa, pb := a.path(), b.path()
	if len(pa) == 0 || len(pb) == 0 || pa[0] != pb[0] {
		return cmpInt(int(a.Node.ID()), int(b.Node.ID()))
	}
	// Skip the shared root, then find the first differing ancestor.
	i := 1
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	switch {
	case i == len(pa):
		// a.Node is an ancestor of b.Node: compare a's offset with the
		// index of the child of a.Node that contains b.
		return cmpIntTie(a.Offset, pb[i].Index(), -1)
	case i == len(pb):
		return -cmpIntTie(b.Offset, pa[i].Index(), -1)
	default:
		return cmpInt(pa[i].Index(), pb[i].Index())
	}
}

// path returns the ancestors of p.Node from the root down to the node.
func (p Position) path() []*Node {
	var rev []*Node
	for n := p.Node; n != nil; n = n.parent {
		rev = append(rev, n)
	}
	out := make([]*Node, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpIntTie is cmpInt with an explicit result for equal values.
func cmpIntTie(a, b, tie int) int {
	if a == b {
		return tie
	}
	return cmpInt(a, b)
}
