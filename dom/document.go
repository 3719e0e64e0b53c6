package dom

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoBody is returned when parsed markup produced no body element.
var ErrNoBody = errors.New("dom: document has no body")

// Document is the root of a node tree and the allocator of node ids.
type Document struct {
	root   *Node
	nextID NodeID
}

// NewDocument creates an empty document with html, head and body elements.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.newNode(DocumentNode, "", "")
	htmlEl := d.CreateElement("html")
	htmlEl.AppendChild(d.CreateElement("head"))
	htmlEl.AppendChild(d.CreateElement("body"))
	d.root.AppendChild(htmlEl)
	return d
}

func (d *Document) newNode(typ NodeType, tag, data string) *Node {
	d.nextID++
	return &Node{id: d.nextID, typ: typ, tag: tag, data: data, doc: d}
}

// CreateElement creates a detached element with the given tag.
func (d *Document) CreateElement(tag string) *Node {
	return d.newNode(ElementNode, strings.ToLower(tag), "")
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	return d.newNode(TextNode, "", data)
}

// Root returns the document node.
func (d *Document) Root() *Node { return d.root }

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Node {
	for c := range d.root.Children() {
		if c.IsElement("html") {
			return c
		}
	}
	return nil
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *Node {
	if h := d.DocumentElement(); h != nil {
		for c := range h.Children() {
			if c.IsElement("body") {
				return c
			}
		}
	}
	return nil
}

// Head returns the <head> element, or nil.
func (d *Document) Head() *Node {
	if h := d.DocumentElement(); h != nil {
		for c := range h.Children() {
			if c.IsElement("head") {
				return c
			}
		}
	}
	return nil
}

// GetElementByID returns the first element in tree order whose id
// attribute equals id.
func (d *Document) GetElementByID(id string) *Node {
	for n := range d.root.Descendants() {
		if n.typ != ElementNode {
			continue
		}
		if v, ok := n.Attr("id"); ok && v == id {
			return n
		}
	}
	return nil
}

// Elements iterates over all elements with the given tag in tree order.
func (d *Document) Elements(tag string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := range d.root.Descendants() {
			if n.IsElement(tag) && !yield(n) {
				return
			}
		}
	}
}

// SetBodyInnerHTML replaces the body content with parsed markup.
// Node ids of the replaced content are not reused.
func (d *Document) SetBodyInnerHTML(markup string) error {
	body := d.Body()
	if body == nil {
		return ErrNoBody
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return fmt.Errorf("dom: parse fragment: %w", err)
	}
	for c := body.firstChild; c != nil; c = body.firstChild {
		body.RemoveChild(c)
	}
	for _, hn := range nodes {
		if n := d.convert(hn); n != nil {
			body.AppendChild(n)
		}
	}
	return nil
}

// Parse parses a full or partial HTML document.
func Parse(markup string) (*Document, error) {
	hn, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	d := &Document{}
	d.root = d.newNode(DocumentNode, "", "")
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if n := d.convert(c); n != nil {
			d.root.AppendChild(n)
		}
	}
	if d.Body() == nil {
		return nil, ErrNoBody
	}
	return d, nil
}

// convert copies an x/net/html subtree. Comments and doctypes are dropped.
func (d *Document) convert(hn *html.Node) *Node {
	var n *Node
	switch hn.Type {
	case html.ElementNode:
		n = d.CreateElement(hn.Data)
		for _, a := range hn.Attr {
			n.attrs = append(n.attrs, Attr{Name: strings.ToLower(a.Key), Value: a.Val})
		}
	case html.TextNode:
		return d.CreateTextNode(hn.Data)
	default:
		return nil
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if child := d.convert(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}
