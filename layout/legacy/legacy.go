// Package legacy is the layout engine that indexes inline content per text
// node: every text node owns a list of inline text boxes, one per line it
// appears on, and caret queries walk that list.
package legacy

import (
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/layout"
	"github.com/gogpu/selbounds/text"
)

// Name is the registry name of the engine.
const Name = "legacy"

func init() {
	layout.Register(Engine{})
}

// Engine is the legacy layout engine.
type Engine struct{}

// Name returns "legacy".
func (Engine) Name() string { return Name }

// Layout lays out doc and indexes the text boxes of every text node.
func (Engine) Layout(doc *dom.Document, cfg layout.Config) (layout.Result, error) {
	tree, err := layout.Build(doc, cfg)
	if err != nil {
		return nil, err
	}
	r := &result{Tree: tree, boxes: make(map[*dom.Node][]inlineTextBox)}
	for _, ctx := range tree.Inlines() {
		for li, line := range ctx.Lines {
			for ri, run := range line.Runs {
				it := ctx.Items[run.Item]
				r.boxes[it.Node] = append(r.boxes[it.Node], inlineTextBox{
					ctx:   ctx,
					item:  run.Item,
					line:  li,
					run:   ri,
					start: run.Start - it.Start,
					end:   run.End - it.Start,
				})
			}
		}
	}
	return r, nil
}

// inlineTextBox is the part of one text node on one line. start and end
// are offsets in the node's rendered text.
type inlineTextBox struct {
	ctx        *layout.InlineContext
	item       int
	line, run  int
	start, end int
}

type result struct {
	*layout.Tree
	boxes map[*dom.Node][]inlineTextBox
}

// CaretBox finds the text box of pos.Node containing the rendered offset.
// At a soft wrap two boxes touch the offset; upstream affinity picks the
// earlier one.
func (r *result) CaretBox(pos dom.Position, aff editing.Affinity) (layout.CaretBox, bool) {
	if !pos.Node.IsText() || !pos.IsValid() {
		return layout.CaretBox{}, false
	}
	boxes := r.boxes[pos.Node]
	if len(boxes) == 0 {
		return layout.CaretBox{}, false
	}
	ctx := boxes[0].ctx
	it := ctx.Items[boxes[0].item]
	off := text.SnapToCaretStop(pos.Node.Data(), pos.Offset, false)
	rendered := it.Mapping[off] - it.Start

	found := -1
	for i, b := range boxes {
		if rendered < b.start || rendered > b.end {
			continue
		}
		found = i
		if aff == editing.AffinityUpstream {
			break
		}
	}
	if found < 0 {
		// The offset sits in text that is not rendered on any line; use
		// the closest box before it.
		found = 0
		for i, b := range boxes {
			if b.start <= rendered {
				found = i
			}
		}
		rendered = min(max(rendered, boxes[found].start), boxes[found].end)
	}
	b := boxes[found]
	return ctx.Caret(b.line, b.run, it.Start+rendered), true
}
