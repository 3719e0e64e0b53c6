package paint

import (
	"slices"
	"testing"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/geometry"
	"github.com/gogpu/selbounds/layout"

	_ "github.com/gogpu/selbounds/layout/ng"
)

const ahem10 = `<style>body{margin:0} *{font:10px/1 Ahem}</style>`

const layered = ahem10 +
	`<div>t^op</div><div id=l style="will-change:transform">mi|d</div><div>tail</div>`

type fixture struct {
	t    *testing.T
	doc  *dom.Document
	sel  editing.Selection
	ctrl *Controller
}

func newFixture(t *testing.T, sample string) *fixture {
	t.Helper()
	doc, sel, err := editing.ParseSample(sample)
	if err != nil {
		t.Fatalf("ParseSample() error = %v", err)
	}
	return &fixture{t: t, doc: doc, sel: sel, ctrl: NewController()}
}

// pass lays out the document and paints it, recording the selection when
// record is set.
func (f *fixture) pass(record bool) *PaintResult {
	f.t.Helper()
	engine, err := layout.Lookup("ng")
	if err != nil {
		f.t.Fatal(err)
	}
	res, err := engine.Layout(f.doc, layout.DefaultConfig())
	if err != nil {
		f.t.Fatalf("Layout() error = %v", err)
	}
	var rec *Recorder
	if record {
		rec = NewRecorder(geometry.NewResolver(geometry.ViewportRect(res.Viewport())).Resolve(f.sel, res))
	}
	return f.ctrl.Paint(res.Root(), rec)
}

func (f *fixture) layerID(id string) ChunkID {
	return ChunkID{Kind: ChunkLayer, Node: f.doc.GetElementByID(id).ID()}
}

var (
	rootID = ChunkID{Kind: ChunkRoot}
	contID = ChunkID{Kind: ChunkContinuation, Seq: 1}
)

func chunkIDs(s *ChunkSubset) []ChunkID {
	var ids []ChunkID
	for _, c := range s.All() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestPaintChunking(t *testing.T) {
	f := newFixture(t, layered)
	res := f.pass(false)

	if got, want := chunkIDs(res.Chunks), []ChunkID{rootID, f.layerID("l"), contID}; !slices.Equal(got, want) {
		t.Fatalf("chunks = %v, want %v", got, want)
	}
	layer := res.Chunks.At(1)
	if layer.Origin != selbounds.Pt(0, 10) {
		t.Errorf("layer Origin = %v, want (0,10)", layer.Origin)
	}
	text := layer.Items[1]
	if text.Kind != ItemText || text.Text != "mid" {
		t.Fatalf("layer item 1 = %+v, want text mid", text)
	}
	if want := selbounds.RectXYWH(0, 0, 30, 10); text.Rect != want {
		t.Errorf("mid Rect = %v, want local %v", text.Rect, want)
	}
	cont := res.Chunks.At(2)
	if cont.Origin != (selbounds.Point{}) || cont.Items[0].Text != "tail" || cont.Items[0].Rect.Min.Y != 20 {
		t.Errorf("continuation = %v %+v", cont, cont.Items)
	}
}

func TestPaintNestedLayers(t *testing.T) {
	f := newFixture(t, ahem10+`<div id=a style="will-change:transform">x<div id=b style="will-change:transform">y</div>z</div>`)
	res := f.pass(false)
	a := f.layerID("a")
	want := []ChunkID{rootID, a, f.layerID("b"), {Kind: ChunkContinuation, Node: a.Node, Seq: 1}}
	if got := chunkIDs(res.Chunks); !slices.Equal(got, want) {
		t.Fatalf("chunks = %v, want %v", got, want)
	}
	if got := res.Chunks.At(3).Origin; got != res.Chunks.At(1).Origin {
		t.Errorf("continuation Origin = %v, want the layer origin %v", got, res.Chunks.At(1).Origin)
	}
}

func TestPaintCache(t *testing.T) {
	f := newFixture(t, layered)
	first := f.pass(false)
	for _, c := range first.Chunks.All() {
		if c.Invalidation != InvalidationNew {
			t.Errorf("pass 1 %s: Invalidation = %v, want new", c.ID, c.Invalidation)
		}
	}

	second := f.pass(false)
	for _, c := range second.Chunks.All() {
		if c.NeedsRepaint() {
			t.Errorf("pass 2 %s: Invalidation = %v, want none", c.ID, c.Invalidation)
		}
	}

	var tail *dom.Node
	for n := range f.doc.Root().Descendants() {
		if n.IsText() && n.Data() == "tail" {
			tail = n
		}
	}
	tail.SetData("tails")
	third := f.pass(false)
	want := []Invalidation{InvalidationNone, InvalidationNone, InvalidationContent}
	for i, c := range third.Chunks.All() {
		if c.Invalidation != want[i] {
			t.Errorf("pass 3 %s: Invalidation = %v, want %v", c.ID, c.Invalidation, want[i])
		}
	}

	f.ctrl.Invalidate()
	for _, c := range f.pass(false).Chunks.All() {
		if c.Invalidation != InvalidationNew {
			t.Errorf("after Invalidate %s: Invalidation = %v, want new", c.ID, c.Invalidation)
		}
	}
}

func TestPaintRecordsBounds(t *testing.T) {
	f := newFixture(t, layered)
	res := f.pass(true)

	root := res.Chunks.At(0).LayerSelectionData
	if root == nil {
		t.Fatal("root chunk has no selection data")
	}
	wantStart := PaintedSelectionBound{Type: selbounds.BoundLeft, EdgeStart: pt(10, 0), EdgeEnd: pt(10, 10)}
	if got, ok := root.Start.Get(); !ok || got != wantStart {
		t.Errorf("root Start = %v, want %v", root.Start, wantStart)
	}
	if root.End.IsSet() {
		t.Errorf("root End = %v, want none", root.End)
	}

	layer := res.Chunks.At(1).LayerSelectionData
	if layer == nil {
		t.Fatal("layer chunk has no selection data")
	}
	// Global (20,10)-(20,20) minus the layer origin (0,10).
	wantEnd := PaintedSelectionBound{Type: selbounds.BoundRight, EdgeStart: pt(20, 0), EdgeEnd: pt(20, 10)}
	if got, ok := layer.End.Get(); !ok || got != wantEnd {
		t.Errorf("layer End = %v, want %v", layer.End, wantEnd)
	}
	if layer.Start.IsSet() {
		t.Errorf("layer Start = %v, want none", layer.Start)
	}
	if d := res.Chunks.At(2).LayerSelectionData; d != nil {
		t.Errorf("continuation selection data = %v, want nil", d)
	}

	if o, _ := res.Ownership.Owner(selbounds.EndpointStart); o != rootID {
		t.Errorf("start owner = %v, want root", o)
	}
	if o, _ := res.Ownership.Owner(selbounds.EndpointEnd); o != f.layerID("l") {
		t.Errorf("end owner = %v, want layer", o)
	}
}

// TestPaintLocalCoordinates checks that every recorded edge lies inside its
// chunk's local bounds.
func TestPaintLocalCoordinates(t *testing.T) {
	f := newFixture(t, layered)
	res := f.pass(true)
	for _, c := range res.Chunks.All() {
		d := c.LayerSelectionData
		if d == nil {
			continue
		}
		for _, e := range selbounds.Endpoints {
			b, ok := d.Bound(e).Get()
			if !ok {
				continue
			}
			for _, p := range []selbounds.Point{
				selbounds.Pt(float64(b.EdgeStart.X), float64(b.EdgeStart.Y)),
				selbounds.Pt(float64(b.EdgeEnd.X), float64(b.EdgeEnd.Y)),
			} {
				if !c.Bounds.ContainsEdge(p) {
					t.Errorf("%s %s edge %v outside local bounds %v", c.ID, e, p, c.Bounds)
				}
			}
		}
	}
}

func TestPaintSelectionInvalidations(t *testing.T) {
	f := newFixture(t, layered)
	layerID := f.layerID("l")

	first := f.pass(true)
	if got, want := first.SelectionInvalidations, []ChunkID{rootID, layerID}; !slices.Equal(got, want) {
		t.Errorf("pass 1 invalidations = %v, want %v", got, want)
	}

	// Unchanged selection and layout: nothing to invalidate.
	second := f.pass(true)
	if len(second.SelectionInvalidations) != 0 {
		t.Errorf("pass 2 invalidations = %v, want none", second.SelectionInvalidations)
	}
	if second.Chunks.At(1).LayerSelectionData == nil {
		t.Error("pass 2 dropped the layer record")
	}

	// Only the end moves: the start's chunk is untouched.
	tail := f.doc.GetElementByID("l").NextSibling().FirstChild()
	f.sel = editing.NewBuilder().Collapse(f.sel.Base).Extend(dom.Pos(tail, 2)).Build()
	third := f.pass(true)
	if got, want := third.SelectionInvalidations, []ChunkID{layerID, contID}; !slices.Equal(got, want) {
		t.Errorf("pass 3 invalidations = %v, want %v", got, want)
	}
	wantInval := []Invalidation{InvalidationNone, InvalidationSelection, InvalidationSelection}
	for i, c := range third.Chunks.All() {
		if c.Invalidation != wantInval[i] {
			t.Errorf("pass 3 %s: Invalidation = %v, want %v", c.ID, c.Invalidation, wantInval[i])
		}
	}

	// No recording: every owner loses its record.
	fourth := f.pass(false)
	if got, want := fourth.SelectionInvalidations, []ChunkID{rootID, contID}; !slices.Equal(got, want) {
		t.Errorf("pass 4 invalidations = %v, want %v", got, want)
	}
	for _, c := range fourth.Chunks.All() {
		if c.LayerSelectionData != nil {
			t.Errorf("pass 4 %s still has %v", c.ID, c.LayerSelectionData)
		}
	}
}

func TestPaintChunkDisappears(t *testing.T) {
	f := newFixture(t, layered)
	f.pass(true)

	l := f.doc.GetElementByID("l")
	tail := l.NextSibling().FirstChild()
	l.Parent().RemoveChild(l)
	f.sel = editing.NewBuilder().Collapse(f.sel.Base).Extend(dom.Pos(tail, 2)).Build()

	res := f.pass(true)
	if got := chunkIDs(res.Chunks); !slices.Equal(got, []ChunkID{rootID}) {
		t.Fatalf("chunks = %v, want only root", got)
	}
	if got, want := res.SelectionInvalidations, []ChunkID{rootID}; !slices.Equal(got, want) {
		t.Errorf("invalidations = %v, want %v", got, want)
	}
	if c := res.Chunks.At(0); c.Invalidation != InvalidationContent {
		t.Errorf("root Invalidation = %v, want content", c.Invalidation)
	}
	d := res.Chunks.At(0).LayerSelectionData
	if d == nil || !d.Start.IsSet() || !d.End.IsSet() {
		t.Errorf("root selection data = %v, want start and end", d)
	}
}
