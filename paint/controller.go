package paint

import (
	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/layout"
)

// PaintResult is the outcome of one paint pass.
type PaintResult struct {
	Chunks *ChunkSubset
	// Ownership is the endpoint ownership recorded in this pass.
	Ownership Ownership
	// SelectionInvalidations lists the chunks of this pass that gained or
	// lost an endpoint, whether or not they were repainted for other
	// reasons too.
	SelectionInvalidations []ChunkID
}

type cachedChunk struct {
	fingerprint uint64
	items       []DisplayItem
}

// Controller runs paint passes and keeps the state carried between them:
// cached display items per chunk and the ownership of the last pass. It
// is not safe for concurrent use.
type Controller struct {
	cache      map[ChunkID]cachedChunk
	tracker    OwnershipTracker
	generation uint64
}

// NewController returns a controller with an empty cache.
func NewController() *Controller {
	return &Controller{cache: make(map[ChunkID]cachedChunk)}
}

// Generation returns the number of completed passes.
func (c *Controller) Generation() uint64 { return c.generation }

// Tracker returns the ownership tracker.
func (c *Controller) Tracker() *OwnershipTracker { return &c.tracker }

// Paint paints the fragment tree rooted at root. rec may be nil when no
// selection bounds should be recorded, which clears every record of the
// previous pass.
func (c *Controller) Paint(root *layout.Fragment, rec *Recorder) *PaintResult {
	p := &painter{rec: rec}
	p.paintRoot(root)

	for _, ch := range p.chunks {
		c.applyCache(ch)
	}
	c.pruneCache(p.chunks)

	c.generation++
	subset := &ChunkSubset{chunks: p.chunks, generation: c.generation, latest: &c.generation}
	res := &PaintResult{Chunks: subset}
	if rec != nil {
		res.Ownership = rec.Ownership()
	}

	for _, id := range c.tracker.Commit(res.Ownership) {
		ch, ok := subset.Find(id)
		if !ok {
			selbounds.Logger().Debug("paint: invalidated chunk no longer exists", "chunk", id.String())
			continue
		}
		if ch.Invalidation == InvalidationNone {
			ch.Invalidation = InvalidationSelection
		}
		res.SelectionInvalidations = append(res.SelectionInvalidations, id)
	}

	selbounds.Logger().Debug("paint: pass complete",
		"generation", c.generation,
		"chunks", len(p.chunks),
		"selection_invalidations", len(res.SelectionInvalidations))
	return res
}

// applyCache sets the invalidation of ch from the previous pass and reuses
// cached items when the content is unchanged.
func (c *Controller) applyCache(ch *Chunk) {
	ch.fingerprint = fingerprint(ch.Items)
	prev, ok := c.cache[ch.ID]
	switch {
	case !ok:
		ch.Invalidation = InvalidationNew
	case prev.fingerprint != ch.fingerprint:
		ch.Invalidation = InvalidationContent
	default:
		ch.Invalidation = InvalidationNone
		ch.Items = prev.items
	}
	c.cache[ch.ID] = cachedChunk{fingerprint: ch.fingerprint, items: ch.Items}
}

func (c *Controller) pruneCache(chunks []*Chunk) {
	live := make(map[ChunkID]bool, len(chunks))
	for _, ch := range chunks {
		live[ch.ID] = true
	}
	for id := range c.cache {
		if !live[id] {
			delete(c.cache, id)
		}
	}
}

// Invalidate drops all cached items so every chunk of the next pass is
// repainted.
func (c *Controller) Invalidate() {
	clear(c.cache)
}

// paintState is the chunking state of one layer: the root or a composited
// block.
type paintState struct {
	owner  dom.NodeID
	origin selbounds.Point
	// chunk is the open chunk of the layer, nil after a nested layer
	// closed and before the layer paints again.
	chunk *Chunk
	seq   int
}

type painter struct {
	rec    *Recorder
	chunks []*Chunk
	stack  []*paintState
}

func (p *painter) top() *paintState { return p.stack[len(p.stack)-1] }

func (p *painter) open(id ChunkID, origin selbounds.Point) *Chunk {
	ch := &Chunk{ID: id, Origin: origin}
	p.chunks = append(p.chunks, ch)
	return ch
}

// current returns the open chunk of the top layer, starting a continuation
// chunk when content resumes after a nested layer.
func (p *painter) current() *Chunk {
	st := p.top()
	if st.chunk == nil {
		st.seq++
		st.chunk = p.open(ChunkID{Kind: ChunkContinuation, Node: st.owner, Seq: st.seq}, st.origin)
	}
	return st.chunk
}

func (p *painter) emit(item DisplayItem) *Chunk {
	ch := p.current()
	item.Rect = item.Rect.Translate(selbounds.Pt(-ch.Origin.X, -ch.Origin.Y))
	if item.Kind == ItemText {
		item.Baseline -= ch.Origin.Y
	}
	ch.Items = append(ch.Items, item)
	ch.Bounds = ch.Bounds.Union(item.Rect)
	return ch
}

func (p *painter) paintRoot(root *layout.Fragment) {
	st := &paintState{}
	st.chunk = p.open(ChunkID{Kind: ChunkRoot}, selbounds.Point{})
	p.stack = append(p.stack, st)
	if root == nil {
		return
	}
	p.emit(DisplayItem{Kind: ItemBackground, Fragment: root.ID, Rect: root.Rect})
	for _, child := range root.Children {
		p.paintFragment(child)
	}
}

func (p *painter) paintFragment(f *layout.Fragment) {
	if f.IsComposited() {
		var owner dom.NodeID
		if f.Node != nil {
			owner = f.Node.ID()
		}
		st := &paintState{owner: owner, origin: f.Rect.Min}
		st.chunk = p.open(ChunkID{Kind: ChunkLayer, Node: owner}, f.Rect.Min)
		p.stack = append(p.stack, st)
		p.emit(DisplayItem{Kind: ItemBackground, Fragment: f.ID, Rect: f.Rect})
		for _, child := range f.Children {
			p.paintFragment(child)
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.top().chunk = nil
		return
	}

	if f.Kind == layout.FragmentText {
		ch := p.emit(DisplayItem{Kind: ItemText, Fragment: f.ID, Rect: f.Rect, Text: f.Text, Baseline: f.Baseline})
		if p.rec != nil {
			p.rec.textPainted(f, ch)
		}
	}
	for _, child := range f.Children {
		p.paintFragment(child)
	}
}
