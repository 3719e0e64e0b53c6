package dom

import (
	"iter"
	"strings"
)

// NodeID identifies a node for the lifetime of its document.
type NodeID uint64

// NodeType identifies the kind of a node.
type NodeType uint8

const (
	// DocumentNode is the root of a tree.
	DocumentNode NodeType = iota
	// ElementNode is a tagged element.
	ElementNode
	// TextNode holds character data.
	TextNode
)

// String returns the string representation of the node type.
func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attr is a single element attribute.
type Attr struct {
	Name, Value string
}

// Node is a document, element or text node.
//
// Node is not safe for concurrent use.
type Node struct {
	id    NodeID
	typ   NodeType
	tag   string
	attrs []Attr
	data  string

	doc                   *Document
	parent                *Node
	firstChild, lastChild *Node
	prev, next            *Node
}

// ID returns the node's stable identifier.
func (n *Node) ID() NodeID { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the lower-case tag name of an element, or "" for other nodes.
func (n *Node) Tag() string { return n.tag }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n != nil && n.typ == TextNode }

// IsElement reports whether n is an element with the given tag.
// An empty tag matches any element.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.typ == ElementNode && (tag == "" || n.tag == tag)
}

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the following sibling or nil.
func (n *Node) NextSibling() *Node { return n.next }

// PrevSibling returns the preceding sibling or nil.
func (n *Node) PrevSibling() *Node { return n.prev }

// Children iterates over the direct children of n.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.firstChild; c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.next {
		count++
	}
	return count
}

// ChildAt returns the i-th child or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 {
		return nil
	}
	c := n.firstChild
	for ; c != nil && i > 0; i-- {
		c = c.next
	}
	return c
}

// Index returns the position of n among its siblings, or -1 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	i := 0
	for c := n.parent.firstChild; c != n; c = c.next {
		i++
	}
	return i
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (n *Node) SetAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// Data returns the character data of a text node.
func (n *Node) Data() string { return n.data }

// SetData replaces the character data of a text node.
func (n *Node) SetData(s string) {
	if n.typ == TextNode {
		n.data = s
	}
}

// Len returns the maximum offset of a position inside n: the byte length
// of a text node, or the child count of any other node.
func (n *Node) Len() int {
	if n.typ == TextNode {
		return len(n.data)
	}
	return n.ChildCount()
}

// TextContent returns the concatenated data of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.data
	}
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.typ == TextNode {
			sb.WriteString(d.data)
		}
	}
	return sb.String()
}

// Descendants iterates over all descendants of n in tree order.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := n.firstChild; d != nil; d = nextInTree(d, n) {
			if !yield(d) {
				return
			}
		}
	}
}

// nextInTree returns the node after d in pre-order, staying under root.
func nextInTree(d, root *Node) *Node {
	if d.firstChild != nil {
		return d.firstChild
	}
	for d != nil && d != root {
		if d.next != nil {
			return d.next
		}
		d = d.parent
	}
	return nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for ; other != nil; other = other.parent {
		if other == n {
			return true
		}
	}
	return false
}

// IsConnected reports whether n is attached to its document's tree.
func (n *Node) IsConnected() bool {
	return n.doc != nil && n.doc.root.Contains(n)
}

// AppendChild appends child to n, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	child.prev = n.lastChild
	if n.lastChild != nil {
		n.lastChild.next = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
}

// RemoveChild detaches child from n. It is a no-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		return
	}
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		n.firstChild = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		n.lastChild = child.prev
	}
	child.parent, child.prev, child.next = nil, nil, nil
}

// String returns a short debug description such as "div#target" or "#text".
func (n *Node) String() string {
	switch n.typ {
	case DocumentNode:
		return "#document"
	case TextNode:
		return "#text"
	default:
		if id, ok := n.Attr("id"); ok {
			return n.tag + "#" + id
		}
		return n.tag
	}
}
