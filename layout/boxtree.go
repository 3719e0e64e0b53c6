package layout

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/text"
)

// box is a node of the box tree. After construction a block box holds
// either block children or inline content, never both.
type box struct {
	node     *dom.Node // nil for anonymous blocks
	style    *Style
	children []*box
	inline   []inlineSource
}

// inlineSource is a text node or a <br> flowing into an inline formatting
// context, with the style of its nearest element.
type inlineSource struct {
	node    *dom.Node
	style   *Style
	isBreak bool
}

// piece is either a block box or an inline source while collecting the
// children of a block.
type piece struct {
	block  *box
	inline inlineSource
}

var (
	uaSheet     *Stylesheet
	uaSheetOnce sync.Once
)

func userAgentSheet() *Stylesheet {
	uaSheetOnce.Do(func() { uaSheet = ParseStylesheet(uaRules) })
	return uaSheet
}

// authorSheet concatenates the <style> elements of the document in order.
func authorSheet(doc *dom.Document) *Stylesheet {
	var src strings.Builder
	for el := range doc.Elements("style") {
		src.WriteString(el.TextContent())
		src.WriteByte('\n')
	}
	return ParseStylesheet(src.String())
}

// computeStyle runs the cascade for element n.
func computeStyle(n *dom.Node, parent *Style, author *Stylesheet) *Style {
	st := parent.inherit()
	st.Display = uaDisplay(n.Tag())

	decls := userAgentSheet().matching(n)
	decls = append(decls, author.matching(n)...)
	if inline, ok := n.Attr("style"); ok {
		decls = append(decls, ParseDeclarations(inline)...)
	}
	// Font properties first so em lengths see the element's own font size.
	for pass := 0; pass < 2; pass++ {
		for _, d := range decls {
			if isFontProperty(d.Property) != (pass == 0) {
				continue
			}
			if err := st.apply(d, parent); err != nil {
				selbounds.Logger().Debug("layout: declaration dropped", "node", n.String(), "err", err)
			}
		}
	}

	if dir, ok := n.Attr("dir"); ok {
		switch strings.ToLower(dir) {
		case "ltr":
			st.Direction = text.DirectionLTR
		case "rtl":
			st.Direction = text.DirectionRTL
		case "auto":
			if d, ok := text.BaseDirection(n.TextContent()); ok {
				st.Direction = d
			}
		}
	}
	return st
}

func isFontProperty(p string) bool {
	switch p {
	case "font", "font-size", "font-family", "line-height":
		return true
	}
	return false
}

// boxBuilder builds the box tree of one document.
type boxBuilder struct {
	author *Stylesheet
}

func (b *boxBuilder) buildBlock(n *dom.Node, st *Style) *box {
	bx := &box{node: n, style: st}
	var pieces []piece
	b.collect(n, st, &pieces)

	hasBlock := false
	for _, p := range pieces {
		if p.block != nil {
			hasBlock = true
			break
		}
	}
	if !hasBlock {
		bx.inline = dropWhitespaceOnly(inlineOf(pieces))
		return bx
	}

	// Mixed content: wrap each run of inline pieces in an anonymous block.
	var run []inlineSource
	flush := func() {
		if srcs := dropWhitespaceOnly(run); len(srcs) > 0 {
			anon := st.inherit()
			anon.Display = DisplayBlock
			bx.children = append(bx.children, &box{style: anon, inline: srcs})
		}
		run = nil
	}
	for _, p := range pieces {
		if p.block != nil {
			flush()
			bx.children = append(bx.children, p.block)
			continue
		}
		run = append(run, p.inline)
	}
	flush()
	return bx
}

// collect flattens inline elements into pieces; their text keeps the inline
// element's style.
func (b *boxBuilder) collect(n *dom.Node, st *Style, out *[]piece) {
	for c := range n.Children() {
		switch {
		case c.IsText():
			*out = append(*out, piece{inline: inlineSource{node: c, style: st}})
		case c.IsElement(""):
			cs := computeStyle(c, st, b.author)
			switch {
			case cs.Display == DisplayNone:
			case c.Tag() == "br":
				*out = append(*out, piece{inline: inlineSource{node: c, style: cs, isBreak: true}})
			case cs.Display == DisplayBlock:
				*out = append(*out, piece{block: b.buildBlock(c, cs)})
			default:
				b.collect(c, cs, out)
			}
		}
	}
}

func inlineOf(pieces []piece) []inlineSource {
	out := make([]inlineSource, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.inline)
	}
	return out
}

// dropWhitespaceOnly returns nil when srcs would render nothing: only
// collapsible whitespace and no forced break.
func dropWhitespaceOnly(srcs []inlineSource) []inlineSource {
	for _, s := range srcs {
		if s.isBreak || s.style.WhiteSpace == WhiteSpacePre || !isWhitespaceOnly(s.node.Data()) {
			return srcs
		}
	}
	return nil
}

// faceCache resolves and memoizes the face of each style.
type faceCache struct {
	fonts *text.Registry
	faces map[*Style]text.Face
}

func (fc *faceCache) face(st *Style) (text.Face, error) {
	if f, ok := fc.faces[st]; ok {
		return f, nil
	}
	f, err := fc.fonts.Face(st.FontFamilies, st.FontSize)
	if err != nil {
		return nil, fmt.Errorf("layout: resolve font %v: %w", st.FontFamilies, err)
	}
	fc.faces[st] = f
	return f, nil
}
