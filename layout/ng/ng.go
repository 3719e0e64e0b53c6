// Package ng is the layout engine that indexes inline content per block: each
// inline formatting context keeps its concatenated text content, an offset
// mapping from DOM positions into that content, and a flat list of fragment
// items searched by content offset.
package ng

import (
	"sort"

	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/layout"
	"github.com/gogpu/selbounds/text"
)

// Name is the registry name of the engine.
const Name = "ng"

func init() {
	layout.Register(Engine{})
}

// Engine is the block-indexed layout engine.
type Engine struct{}

// Name returns "ng".
func (Engine) Name() string { return Name }

// Layout lays out doc and builds the per-block inline indexes.
func (Engine) Layout(doc *dom.Document, cfg layout.Config) (layout.Result, error) {
	tree, err := layout.Build(doc, cfg)
	if err != nil {
		return nil, err
	}
	r := &result{Tree: tree, owner: make(map[*dom.Node]*inlineNode)}
	for _, ctx := range tree.Inlines() {
		n := newInlineNode(ctx)
		for _, it := range ctx.Items {
			if it.Kind == layout.InlineText {
				r.owner[it.Node] = n
			}
		}
	}
	return r, nil
}

// fragmentItem is one text run in the flat item list of a block.
type fragmentItem struct {
	node       *dom.Node
	line, run  int
	start, end int // content offsets
}

// inlineNode is the per-block index.
type inlineNode struct {
	ctx     *layout.InlineContext
	mapping *offsetMapping
	items   []fragmentItem // ordered by start
}

func newInlineNode(ctx *layout.InlineContext) *inlineNode {
	n := &inlineNode{ctx: ctx, mapping: buildOffsetMapping(ctx)}
	for li, line := range ctx.Lines {
		for ri, run := range line.Runs {
			n.items = append(n.items, fragmentItem{
				node:  ctx.Items[run.Item].Node,
				line:  li,
				run:   ri,
				start: run.Start,
				end:   run.End,
			})
		}
	}
	return n
}

type result struct {
	*layout.Tree
	owner map[*dom.Node]*inlineNode
}

// CaretBox maps pos into the block's text content and searches the fragment
// items covering that offset. Items of pos.Node win over neighbours touching
// the same offset; among those, affinity picks the line at a soft wrap.
func (r *result) CaretBox(pos dom.Position, aff editing.Affinity) (layout.CaretBox, bool) {
	if !pos.Node.IsText() || !pos.IsValid() {
		return layout.CaretBox{}, false
	}
	n, ok := r.owner[pos.Node]
	if !ok {
		return layout.CaretBox{}, false
	}
	off := text.SnapToCaretStop(pos.Node.Data(), pos.Offset, false)
	co, ok := n.mapping.textContentOffset(pos.Node, off)
	if !ok {
		return layout.CaretBox{}, false
	}

	first := sort.Search(len(n.items), func(i int) bool { return n.items[i].end >= co })
	var hits []fragmentItem
	for i := first; i < len(n.items) && n.items[i].start <= co; i++ {
		if n.items[i].node == pos.Node {
			hits = append(hits, n.items[i])
		}
	}
	if len(hits) == 0 {
		return n.nearest(pos.Node, co)
	}
	hit := hits[len(hits)-1]
	if aff == editing.AffinityUpstream {
		hit = hits[0]
	}
	return n.ctx.Caret(hit.line, hit.run, co), true
}

// nearest handles offsets in unrendered text (such as a newline in
// preformatted text) by clamping to the closest preceding item of node.
func (n *inlineNode) nearest(node *dom.Node, co int) (layout.CaretBox, bool) {
	var best *fragmentItem
	for i := range n.items {
		it := &n.items[i]
		if it.node != node {
			continue
		}
		if best == nil || it.start <= co {
			best = it
		}
	}
	if best == nil {
		return layout.CaretBox{}, false
	}
	co = min(max(co, best.start), best.end)
	return n.ctx.Caret(best.line, best.run, co), true
}
