package layout

import (
	"strings"

	"github.com/gogpu/selbounds/text"
)

// Display is the computed display type of an element.
type Display uint8

const (
	// DisplayInline flows the element's content into the parent's lines.
	DisplayInline Display = iota
	// DisplayBlock stacks the element vertically in its parent.
	DisplayBlock
	// DisplayNone generates no boxes for the element or its descendants.
	DisplayNone
)

// String returns the string representation of the display type.
func (d Display) String() string {
	switch d {
	case DisplayInline:
		return "inline"
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	default:
		return "unknown"
	}
}

// WhiteSpace is the computed white-space mode.
type WhiteSpace uint8

const (
	// WhiteSpaceNormal collapses whitespace and wraps at the available width.
	WhiteSpaceNormal WhiteSpace = iota
	// WhiteSpaceNoWrap collapses whitespace but never wraps.
	WhiteSpaceNoWrap
	// WhiteSpacePre keeps all whitespace, breaks only at newlines.
	WhiteSpacePre
)

// LineHeightKind says how LineHeight.Value is interpreted.
type LineHeightKind uint8

const (
	// LineHeightNormal uses the font's own line height.
	LineHeightNormal LineHeightKind = iota
	// LineHeightNumber multiplies the font size.
	LineHeightNumber
	// LineHeightPx is an absolute height in pixels.
	LineHeightPx
)

// LineHeight is a computed line-height value.
type LineHeight struct {
	Kind  LineHeightKind
	Value float64
}

// Resolve returns the line height in pixels for a face.
func (lh LineHeight) Resolve(face text.Face) float64 {
	switch lh.Kind {
	case LineHeightNumber:
		return lh.Value * face.Size()
	case LineHeightPx:
		return lh.Value
	default:
		return face.Metrics().LineHeight()
	}
}

// Edges holds per-side values such as margins.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Style is the computed style of an element.
type Style struct {
	Display      Display
	Margin       Edges
	Width        float64 // 0 with WidthAuto set means auto
	WidthAuto    bool
	FontFamilies []string
	FontSize     float64
	LineHeight   LineHeight
	WhiteSpace   WhiteSpace
	Direction    text.Direction
	// Composited is set by will-change: transform. A composited block is
	// painted into its own chunk with its own origin.
	Composited bool
}

// DefaultStyle returns the style of the root before any rule applies.
func DefaultStyle() *Style {
	return &Style{
		Display:      DisplayInline,
		WidthAuto:    true,
		FontFamilies: []string{text.FamilyGo},
		FontSize:     16,
	}
}

// inherit returns a child style carrying the inherited properties of s and
// the initial values of the others.
func (s *Style) inherit() *Style {
	return &Style{
		Display:      DisplayInline,
		WidthAuto:    true,
		FontFamilies: s.FontFamilies,
		FontSize:     s.FontSize,
		LineHeight:   s.LineHeight,
		WhiteSpace:   s.WhiteSpace,
		Direction:    s.Direction,
	}
}

// uaDisplay returns the user-agent display type of a tag.
func uaDisplay(tag string) Display {
	switch tag {
	case "html", "body", "div", "p", "section", "article", "header", "footer",
		"main", "nav", "ul", "ol", "li", "pre", "h1", "h2", "h3", "h4", "h5", "h6":
		return DisplayBlock
	case "head", "style", "script", "title", "meta", "link", "template":
		return DisplayNone
	default:
		return DisplayInline
	}
}

// uaRules is the user-agent stylesheet applied before author rules.
const uaRules = `
body { margin: 8px }
pre { white-space: pre }
`

func familyList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
