package layout

import (
	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/text"
)

// Tree is the engine-independent output of a layout pass: the fragment tree
// and the inline formatting contexts that engines index for caret lookup.
type Tree struct {
	root     *Fragment
	inlines  []*InlineContext
	viewport Viewport
	alloc    fragmentAllocator
}

// Root returns the fragment of the document element.
func (t *Tree) Root() *Fragment { return t.root }

// Fragment returns a fragment by id.
func (t *Tree) Fragment(id FragmentID) (*Fragment, bool) { return t.alloc.lookup(id) }

// Viewport returns the viewport the tree was laid out in.
func (t *Tree) Viewport() Viewport { return t.viewport }

// Inlines returns the inline formatting contexts in document order.
func (t *Tree) Inlines() []*InlineContext { return t.inlines }

// Build runs style, box construction and block and inline layout.
func Build(doc *dom.Document, cfg Config) (*Tree, error) {
	html := doc.DocumentElement()
	if html == nil {
		return nil, ErrNoDocumentElement
	}
	if cfg.Fonts == nil {
		cfg.Fonts = text.DefaultRegistry()
	}
	bb := &boxBuilder{author: authorSheet(doc)}
	st := computeStyle(html, DefaultStyle(), bb.author)
	if st.Display == DisplayNone {
		st.Display = DisplayBlock
	}
	rootBox := bb.buildBlock(html, st)

	t := &Tree{viewport: Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight}}
	lb := &blockLayout{tree: t, faces: &faceCache{fonts: cfg.Fonts, faces: map[*Style]text.Face{}}}
	root, _, err := lb.layoutBlock(rootBox, 0, 0, cfg.ViewportWidth)
	if err != nil {
		return nil, err
	}
	t.root = root
	selbounds.Logger().Debug("layout: tree built",
		"fragments", len(t.alloc.all), "inlines", len(t.inlines))
	return t, nil
}

type blockLayout struct {
	tree  *Tree
	faces *faceCache
}

// layoutBlock places bx with its top-left margin corner at (x, y) in a
// containing block of width avail. It returns the fragment and the y just
// below its bottom margin.
func (l *blockLayout) layoutBlock(bx *box, x, y, avail float64) (*Fragment, float64, error) {
	st := bx.style
	m := st.Margin
	w := avail - m.Left - m.Right
	if !st.WidthAuto {
		w = st.Width
	}
	w = max(w, 0)
	frag := l.tree.alloc.alloc(FragmentBlock, bx.node, st, selbounds.RectXYWH(x+m.Left, y+m.Top, w, 0))
	cy := frag.Rect.Min.Y

	if len(bx.inline) > 0 {
		bottom, err := l.layoutInline(bx, frag)
		if err != nil {
			return nil, 0, err
		}
		cy = bottom
	}
	for _, child := range bx.children {
		cf, next, err := l.layoutBlock(child, frag.Rect.Min.X, cy, w)
		if err != nil {
			return nil, 0, err
		}
		frag.Children = append(frag.Children, cf)
		cy = next
	}
	frag.Rect.Max.Y = cy
	return frag, cy + m.Bottom, nil
}
