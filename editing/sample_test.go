package editing

import (
	"errors"
	"testing"

	"github.com/gogpu/selbounds/dom"
)

func TestParseSample(t *testing.T) {
	doc, sel, err := ParseSample("<div style='white-space:pre'>f^oo\nbar\nb|az</div>")
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	text := doc.Body().FirstChild().FirstChild()
	if got := text.Data(); got != "foo\nbar\nbaz" {
		t.Fatalf("text = %q, want markers removed", got)
	}
	if sel.Base != dom.Pos(text, 1) {
		t.Errorf("Base = %v, want #text@1", sel.Base)
	}
	if sel.Extent != dom.Pos(text, 9) {
		t.Errorf("Extent = %v, want #text@9", sel.Extent)
	}
	if !sel.IsBaseFirst() || sel.IsCollapsed() {
		t.Errorf("unexpected selection shape %+v", sel)
	}
}

func TestParseSampleAcrossElements(t *testing.T) {
	doc, sel, err := ParseSample(`<div>foo^</div><div id=target>bar</div><div>|baz</div>`)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	body := doc.Body()
	foo := body.ChildAt(0).FirstChild()
	baz := body.ChildAt(2).FirstChild()
	if sel.Start() != dom.Pos(foo, 3) {
		t.Errorf("Start() = %v, want foo@3", sel.Start())
	}
	if sel.End() != dom.Pos(baz, 0) {
		t.Errorf("End() = %v, want baz@0", sel.End())
	}
}

func TestParseSampleBackward(t *testing.T) {
	doc, sel, err := ParseSample(`<p>a|bc^d</p>`)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	text := doc.Body().FirstChild().FirstChild()
	if sel.IsBaseFirst() {
		t.Error("base after extent should not be base-first")
	}
	if sel.Start() != dom.Pos(text, 1) || sel.End() != dom.Pos(text, 3) {
		t.Errorf("Start/End = %v/%v, want @1/@3", sel.Start(), sel.End())
	}
}

func TestParseSampleCaretAndNone(t *testing.T) {
	_, sel, err := ParseSample(`<p>ab|c</p>`)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	if !sel.IsCollapsed() {
		t.Error("lone extent marker should produce a caret")
	}
	_, sel, err = ParseSample(`<p>abc</p>`)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	if !sel.IsNone() {
		t.Error("sample without markers should produce no selection")
	}
}

func TestParseSampleMarkerBetweenElements(t *testing.T) {
	doc, sel, err := ParseSample(`<div>a</div>^<div>b|</div>`)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	body := doc.Body()
	if body.ChildCount() != 2 {
		t.Fatalf("body children = %d, want the empty marker text removed", body.ChildCount())
	}
	if sel.Base != dom.Pos(body, 1) {
		t.Errorf("Base = %v, want body@1", sel.Base)
	}
}

func TestParseSampleDuplicateMarker(t *testing.T) {
	if _, _, err := ParseSample(`<p>a^b^c</p>`); !errors.Is(err, ErrDuplicateMarker) {
		t.Errorf("error = %v, want ErrDuplicateMarker", err)
	}
}
