package layout

import (
	"strings"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/text"
)

// InlineItemKind is the kind of an inline item.
type InlineItemKind uint8

const (
	// InlineText is the rendered text of one text node.
	InlineText InlineItemKind = iota
	// InlineBreak is a <br>, rendered as "\n" in the content.
	InlineBreak
)

// InlineItem is one text node or forced break of an inline formatting
// context.
type InlineItem struct {
	Kind  InlineItemKind
	Node  *dom.Node
	Style *Style
	Face  text.Face
	// Start and End locate the item in InlineContext.Content.
	Start, End int
	// Mapping maps DOM byte offsets of a text node to offsets in Content.
	Mapping []int
}

// LineRun is the part of a text item on one line.
type LineRun struct {
	Item int
	// Start and End are the run's range in Content, without a trailing
	// newline.
	Start, End int
	Fragment   *Fragment
}

// LineBox is one line of an inline formatting context.
type LineBox struct {
	Fragment *Fragment
	// Start and End are the line's range in Content, including a trailing
	// forced break.
	Start, End int
	Baseline   float64
	Runs       []LineRun
}

// InlineContext is a laid-out inline formatting context: the collapsed text
// content of a block, its items and its lines.
type InlineContext struct {
	Block     *Fragment
	Content   string
	Items     []InlineItem
	Lines     []LineBox
	Direction text.Direction
}

// CaretX returns the x of a caret at content offset off inside run r of
// line li.
func (c *InlineContext) CaretX(li, r, off int) float64 {
	run := c.Lines[li].Runs[r]
	adv := c.Items[run.Item].Face.Advance(c.Content[run.Start:off])
	if c.Direction.IsRTL() {
		return run.Fragment.Rect.Max.X - adv
	}
	return run.Fragment.Rect.Min.X + adv
}

// Caret builds the caret box at content offset off inside run r of line li.
func (c *InlineContext) Caret(li, r, off int) CaretBox {
	run := c.Lines[li].Runs[r]
	m := c.Items[run.Item].Face.Metrics()
	return CaretBox{
		Fragment:  run.Fragment.ID,
		X:         c.CaretX(li, r, off),
		Baseline:  c.Lines[li].Baseline,
		Ascent:    m.Ascent,
		Descent:   m.Descent,
		Direction: c.Direction,
	}
}

// vmetrics is the vertical extent of a run around the baseline, half
// leading included.
type vmetrics struct {
	above, below float64
}

func runMetrics(st *Style, face text.Face) vmetrics {
	m := face.Metrics()
	lh := st.LineHeight.Resolve(face)
	half := (lh - (m.Ascent + m.Descent)) / 2
	return vmetrics{above: m.Ascent + half, below: m.Descent + half}
}

// layoutInline lays out the inline content of bx into lines inside block
// and returns the y below the last line.
func (l *blockLayout) layoutInline(bx *box, block *Fragment) (float64, error) {
	ctx := &InlineContext{Block: block, Direction: bx.style.Direction}
	if err := l.buildItems(ctx, bx.inline); err != nil {
		return 0, err
	}

	strutFace, err := l.faces.face(bx.style)
	if err != nil {
		return 0, err
	}
	strut := runMetrics(bx.style, strutFace)

	avail := block.Rect.Width()
	wrap := bx.style.WhiteSpace == WhiteSpaceNormal
	lines := breakLines(ctx.Content, avail, wrap, ctx.measure)

	y := block.Rect.Min.Y
	for _, lr := range lines {
		line := l.layoutLine(ctx, lr, y, strut)
		block.Children = append(block.Children, line.Fragment)
		ctx.Lines = append(ctx.Lines, line)
		y = line.Fragment.Rect.Max.Y
	}
	l.tree.inlines = append(l.tree.inlines, ctx)
	return y, nil
}

// buildItems collapses whitespace and concatenates the items into Content.
func (l *blockLayout) buildItems(ctx *InlineContext, srcs []inlineSource) error {
	col := newCollapser()
	texts := make([]collapsedText, len(srcs))
	lastText := -1
	for i, src := range srcs {
		if src.isBreak {
			if lastText >= 0 {
				texts[lastText].trimTrailingSpace()
			}
			lastText = -1
			col.forcedBreak()
			continue
		}
		texts[i] = col.collapse(src.node.Data(), src.style.WhiteSpace)
		if texts[i].text != "" {
			lastText = -1
			if src.style.WhiteSpace != WhiteSpacePre {
				lastText = i
			}
		}
	}
	if lastText >= 0 {
		texts[lastText].trimTrailingSpace()
	}

	var content strings.Builder
	for i, src := range srcs {
		face, err := l.faces.face(src.style)
		if err != nil {
			return err
		}
		item := InlineItem{Node: src.node, Style: src.style, Face: face, Start: content.Len()}
		if src.isBreak {
			item.Kind = InlineBreak
			content.WriteByte('\n')
		} else {
			item.Kind = InlineText
			content.WriteString(texts[i].text)
			item.Mapping = make([]int, len(texts[i].mapping))
			for j, m := range texts[i].mapping {
				item.Mapping[j] = item.Start + m
			}
		}
		item.End = content.Len()
		ctx.Items = append(ctx.Items, item)
	}
	ctx.Content = content.String()
	return nil
}

// measure returns the advance of Content[start:end], item by item.
func (c *InlineContext) measure(start, end int) float64 {
	w := 0.0
	for _, it := range c.Items {
		if it.Kind != InlineText || it.End <= start || it.Start >= end {
			continue
		}
		s := c.Content[max(start, it.Start):min(end, it.End)]
		w += it.Face.Advance(strings.ReplaceAll(s, "\n", ""))
	}
	return w
}

func (l *blockLayout) layoutLine(ctx *InlineContext, lr lineRange, top float64, strut vmetrics) LineBox {
	block := ctx.Block
	lineFrag := l.tree.alloc.alloc(FragmentLine, nil, block.Style,
		selbounds.RectXYWH(block.Rect.Min.X, top, block.Rect.Width(), 0))
	line := LineBox{Fragment: lineFrag, Start: lr.start, End: lr.end}

	vm := strut
	widths := make([]float64, 0, len(ctx.Items))
	for i, it := range ctx.Items {
		if it.Kind != InlineText || it.End <= lr.start || it.Start >= lr.end {
			continue
		}
		start, end := max(lr.start, it.Start), min(lr.end, it.End)
		end = start + len(strings.TrimSuffix(ctx.Content[start:end], "\n"))
		if start >= end {
			continue
		}
		rm := runMetrics(it.Style, it.Face)
		vm.above = max(vm.above, rm.above)
		vm.below = max(vm.below, rm.below)
		line.Runs = append(line.Runs, LineRun{Item: i, Start: start, End: end})
		widths = append(widths, it.Face.Advance(ctx.Content[start:end]))
	}

	line.Baseline = top + vm.above
	lineFrag.Rect.Max.Y = top + vm.above + vm.below

	// Runs are placed in logical order from the inline-start edge.
	x := block.Rect.Min.X
	if ctx.Direction.IsRTL() {
		x = block.Rect.Max.X
	}
	for i := range line.Runs {
		run := &line.Runs[i]
		it := ctx.Items[run.Item]
		w := widths[i]
		left := x
		if ctx.Direction.IsRTL() {
			left = x - w
			x -= w
		} else {
			x += w
		}
		m := it.Face.Metrics()
		f := l.tree.alloc.alloc(FragmentText, it.Node, it.Style,
			selbounds.RectXYWH(left, line.Baseline-m.Ascent, w, m.Ascent+m.Descent))
		f.Text = ctx.Content[run.Start:run.End]
		f.Face = it.Face
		f.Baseline = line.Baseline
		f.Start, f.End = run.Start-it.Start, run.End-it.Start
		run.Fragment = f
		lineFrag.Children = append(lineFrag.Children, f)
	}
	return line
}
