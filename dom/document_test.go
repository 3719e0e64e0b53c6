package dom

import "testing"

func TestParseBuildsBody(t *testing.T) {
	d, err := Parse(`<div id=a>foo</div><div id=target>bar</div>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	body := d.Body()
	if body == nil {
		t.Fatal("Body() = nil")
	}
	if got := body.ChildCount(); got != 2 {
		t.Fatalf("body child count = %d, want 2", got)
	}
	target := d.GetElementByID("target")
	if target == nil || !target.IsElement("div") {
		t.Fatalf("GetElementByID(target) = %v, want div", target)
	}
	if got := target.FirstChild().Data(); got != "bar" {
		t.Errorf("target text = %q, want %q", got, "bar")
	}
	if got := body.TextContent(); got != "foobar" {
		t.Errorf("TextContent() = %q, want %q", got, "foobar")
	}
}

func TestParseStyleGoesToHead(t *testing.T) {
	d, err := Parse(`<style>div { margin: 0 }</style><div>x</div>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var styles int
	for range d.Elements("style") {
		styles++
	}
	if styles != 1 {
		t.Errorf("style elements = %d, want 1", styles)
	}
	if d.Body().ChildCount() != 1 {
		t.Errorf("body should only hold the div, got %d children", d.Body().ChildCount())
	}
}

func TestNodeIDsAreUniqueAndStable(t *testing.T) {
	d, err := Parse(`<span>A<br>B<br>C</span>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	seen := map[NodeID]bool{}
	for n := range d.Root().Descendants() {
		if seen[n.ID()] {
			t.Fatalf("duplicate id %d", n.ID())
		}
		seen[n.ID()] = true
	}
	span := d.Body().FirstChild()
	id := span.ID()
	span.FirstChild().SetData("changed")
	if span.ID() != id {
		t.Error("mutating text changed the parent id")
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	d := NewDocument()
	body := d.Body()
	a := d.CreateElement("DIV")
	b := d.CreateElement("div")
	body.AppendChild(a)
	body.AppendChild(b)
	if a.Tag() != "div" {
		t.Errorf("tag = %q, want lower-case div", a.Tag())
	}
	if b.Index() != 1 {
		t.Errorf("b.Index() = %d, want 1", b.Index())
	}
	body.RemoveChild(a)
	if a.IsConnected() {
		t.Error("removed node still connected")
	}
	if body.FirstChild() != b || b.PrevSibling() != nil {
		t.Error("sibling links not repaired after removal")
	}
}

func TestSetBodyInnerHTML(t *testing.T) {
	d := NewDocument()
	if err := d.SetBodyInnerHTML(`<p>one</p><p>two</p>`); err != nil {
		t.Fatalf("SetBodyInnerHTML() error = %v", err)
	}
	if got := d.Body().ChildCount(); got != 2 {
		t.Errorf("child count = %d, want 2", got)
	}
}
