package editing

import (
	"strings"

	"github.com/gogpu/selbounds/dom"
)

// CanonicalPosition moves a position anchored on an element to the nearest
// position inside a text node: the first text at or after it when forward
// is set, otherwise the last text before it. Whitespace-only text nodes are
// skipped since they produce no boxes between blocks. Text positions are
// returned with the offset clamped. A position with no text in the chosen
// direction is returned unchanged.
func CanonicalPosition(p dom.Position, forward bool) dom.Position {
	if p.IsNull() {
		return p
	}
	if p.Node.IsText() {
		p.Offset = max(0, min(p.Offset, p.Node.Len()))
		return p
	}
	if forward {
		if t := firstTextFrom(p.Node, p.Offset); t != nil {
			return dom.Pos(t, 0)
		}
		return p
	}
	if t := lastTextBefore(p.Node, p.Offset); t != nil {
		return dom.Pos(t, t.Len())
	}
	return p
}

func isRenderableText(n *dom.Node) bool {
	return n.IsText() && strings.TrimSpace(n.Data()) != "" && !inRawText(n)
}

// inRawText reports whether n sits inside an element whose text is not
// rendered content.
func inRawText(n *dom.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Tag() {
		case "style", "script", "head", "title":
			return true
		}
	}
	return false
}

// firstTextFrom returns the first renderable text node at or after child
// index offset of parent, in tree order.
func firstTextFrom(parent *dom.Node, offset int) *dom.Node {
	var start *dom.Node
	if c := parent.ChildAt(offset); c != nil {
		start = c
	} else {
		start = nextSkippingChildren(parent)
	}
	for n := start; n != nil; n = nextNode(n) {
		if isRenderableText(n) {
			return n
		}
	}
	return nil
}

// lastTextBefore returns the last renderable text node before child index
// offset of parent, in tree order.
func lastTextBefore(parent *dom.Node, offset int) *dom.Node {
	var start *dom.Node
	if offset > 0 {
		start = lastDescendantOrSelf(parent.ChildAt(min(offset, parent.ChildCount()) - 1))
	} else {
		start = prevNode(parent)
	}
	for n := start; n != nil; n = prevNode(n) {
		if isRenderableText(n) {
			return n
		}
	}
	return nil
}

func nextNode(n *dom.Node) *dom.Node {
	if c := n.FirstChild(); c != nil {
		return c
	}
	return nextSkippingChildren(n)
}

func nextSkippingChildren(n *dom.Node) *dom.Node {
	for ; n != nil; n = n.Parent() {
		if s := n.NextSibling(); s != nil {
			return s
		}
	}
	return nil
}

func prevNode(n *dom.Node) *dom.Node {
	if s := n.PrevSibling(); s != nil {
		return lastDescendantOrSelf(s)
	}
	return n.Parent()
}

func lastDescendantOrSelf(n *dom.Node) *dom.Node {
	if n == nil {
		return nil
	}
	for n.LastChild() != nil {
		n = n.LastChild()
	}
	return n
}
