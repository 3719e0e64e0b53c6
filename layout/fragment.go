package layout

import (
	"fmt"
	"iter"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/text"
)

// FragmentID identifies a fragment within one layout result. Ids are
// assigned in tree order and are only meaningful for the pass that produced
// them.
type FragmentID uint32

// NoFragment is the zero FragmentID; no fragment carries it.
const NoFragment FragmentID = 0

// FragmentKind is the kind of a physical fragment.
type FragmentKind uint8

const (
	// FragmentBlock is a block box: an element or an anonymous wrapper.
	FragmentBlock FragmentKind = iota
	// FragmentLine is one line box of an inline formatting context.
	FragmentLine
	// FragmentText is a run of text from one text node on one line.
	FragmentText
)

// String returns the string representation of the fragment kind.
func (k FragmentKind) String() string {
	switch k {
	case FragmentBlock:
		return "block"
	case FragmentLine:
		return "line"
	case FragmentText:
		return "text"
	default:
		return "unknown"
	}
}

// Fragment is a positioned box in global coordinates. Block fragments
// contain blocks or lines, lines contain text fragments.
type Fragment struct {
	ID   FragmentID
	Kind FragmentKind
	// Node is the element of a block (nil when anonymous) or the text node
	// of a text fragment.
	Node  *dom.Node
	Rect  selbounds.Rect
	Style *Style

	// Text fragments only.
	Text     string
	Face     text.Face
	Baseline float64
	// Start and End locate Text in the text node's rendered text.
	Start, End int

	Children []*Fragment
}

// IsComposited reports whether the fragment is a block that paints into its
// own chunk.
func (f *Fragment) IsComposited() bool {
	return f.Kind == FragmentBlock && f.Style != nil && f.Style.Composited
}

// Walk returns the fragments of the subtree rooted at f in paint order
// (pre-order).
func (f *Fragment) Walk() iter.Seq[*Fragment] {
	return func(yield func(*Fragment) bool) {
		f.walk(yield)
	}
}

func (f *Fragment) walk(yield func(*Fragment) bool) bool {
	if !yield(f) {
		return false
	}
	for _, c := range f.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// String returns a debug representation.
func (f *Fragment) String() string {
	if f.Kind == FragmentText {
		return fmt.Sprintf("text#%d %q %v", f.ID, f.Text, f.Rect)
	}
	return fmt.Sprintf("%s#%d %v %v", f.Kind, f.ID, f.Node, f.Rect)
}

// fragmentAllocator hands out fragment ids for one pass and remembers every
// fragment by id.
type fragmentAllocator struct {
	all []*Fragment
}

func (a *fragmentAllocator) alloc(kind FragmentKind, node *dom.Node, st *Style, r selbounds.Rect) *Fragment {
	f := &Fragment{ID: FragmentID(len(a.all) + 1), Kind: kind, Node: node, Style: st, Rect: r}
	a.all = append(a.all, f)
	return f
}

func (a *fragmentAllocator) lookup(id FragmentID) (*Fragment, bool) {
	if id == NoFragment || int(id) > len(a.all) {
		return nil, false
	}
	return a.all[id-1], true
}
