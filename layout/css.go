package layout

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/text"
)

// ErrInvalidValue is returned when a declaration value cannot be parsed.
var ErrInvalidValue = errors.New("layout: invalid property value")

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// selector is a compound selector: optional tag, id and classes.
type selector struct {
	universal bool
	tag       string
	id        string
	classes   []string
}

// specificity returns the (ids, classes, tags) weight folded into one int.
func (s selector) specificity() int {
	weight := len(s.classes) * 100
	if s.id != "" {
		weight += 10000
	}
	if s.tag != "" {
		weight++
	}
	return weight
}

func (s selector) matches(n *dom.Node) bool {
	if !n.IsElement("") {
		return false
	}
	if s.tag != "" && s.tag != n.Tag() {
		return false
	}
	if s.id != "" {
		if id, _ := n.Attr("id"); id != s.id {
			return false
		}
	}
	if len(s.classes) > 0 {
		cls, _ := n.Attr("class")
		have := strings.Fields(cls)
		for _, want := range s.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// Rule is one parsed style rule.
type Rule struct {
	sel   selector
	order int
	Decls []Declaration
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses the supported CSS subset. Rules whose selector is
// outside the subset (combinators, pseudo-classes, attribute selectors) are
// skipped and reported through the package logger.
func ParseStylesheet(src string) *Stylesheet {
	sheet := &Stylesheet{}
	src = stripComments(src)
	for {
		open := strings.IndexByte(src, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(src[open:], '}')
		if end < 0 {
			break
		}
		prelude := strings.TrimSpace(src[:open])
		decls := ParseDeclarations(src[open+1 : open+end])
		src = src[open+end+1:]

		for _, part := range strings.Split(prelude, ",") {
			sel, ok := parseSelector(strings.TrimSpace(part))
			if !ok {
				selbounds.Logger().Debug("layout: unsupported selector", "selector", part)
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{sel: sel, order: len(sheet.Rules), Decls: decls})
		}
	}
	return sheet
}

// ParseDeclarations parses a declaration block body such as the contents of
// a style attribute.
func ParseDeclarations(src string) []Declaration {
	var out []Declaration
	for _, d := range strings.Split(src, ";") {
		prop, val, ok := strings.Cut(d, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important"))
		if prop == "" || val == "" {
			continue
		}
		out = append(out, Declaration{Property: prop, Value: val})
	}
	return out
}

func stripComments(src string) string {
	var b strings.Builder
	for {
		i := strings.Index(src, "/*")
		if i < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:i])
		j := strings.Index(src[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		src = src[i+2+j+2:]
	}
}

func parseSelector(s string) (selector, bool) {
	if s == "" || strings.ContainsAny(s, " >+~:[") {
		return selector{}, false
	}
	if s == "*" {
		return selector{universal: true}, true
	}
	var sel selector
	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' {
		i++
	}
	sel.tag = strings.ToLower(s[:i])
	if sel.tag == "*" {
		sel.tag = ""
	}
	for i < len(s) {
		kind := s[i]
		j := i + 1
		for j < len(s) && s[j] != '#' && s[j] != '.' {
			j++
		}
		name := s[i+1 : j]
		if name == "" {
			return selector{}, false
		}
		if kind == '#' {
			sel.id = name
		} else {
			sel.classes = append(sel.classes, name)
		}
		i = j
	}
	return sel, true
}

// matching returns the declarations applying to n, lowest priority first.
func (s *Stylesheet) matching(n *dom.Node) []Declaration {
	var rules []Rule
	for _, r := range s.Rules {
		if r.sel.matches(n) {
			rules = append(rules, r)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		si, sj := rules[i].sel.specificity(), rules[j].sel.specificity()
		if si != sj {
			return si < sj
		}
		return rules[i].order < rules[j].order
	})
	var out []Declaration
	for _, r := range rules {
		out = append(out, r.Decls...)
	}
	return out
}

// apply sets one declaration on st. parent is the parent's computed style,
// used for em units in font-size.
func (st *Style) apply(d Declaration, parent *Style) error {
	v := strings.ToLower(d.Value)
	switch d.Property {
	case "display":
		switch v {
		case "block":
			st.Display = DisplayBlock
		case "inline":
			st.Display = DisplayInline
		case "none":
			st.Display = DisplayNone
		default:
			return invalid(d)
		}
	case "margin":
		return st.applyMargin(d)
	case "margin-top", "margin-right", "margin-bottom", "margin-left":
		px, err := parseLength(v, st.FontSize)
		if err != nil {
			return invalid(d)
		}
		switch d.Property {
		case "margin-top":
			st.Margin.Top = px
		case "margin-right":
			st.Margin.Right = px
		case "margin-bottom":
			st.Margin.Bottom = px
		default:
			st.Margin.Left = px
		}
	case "width":
		if v == "auto" {
			st.WidthAuto, st.Width = true, 0
			return nil
		}
		px, err := parseLength(v, st.FontSize)
		if err != nil || px < 0 {
			return invalid(d)
		}
		st.WidthAuto, st.Width = false, px
	case "font-size":
		px, err := parseLength(v, parent.FontSize)
		if err != nil || px <= 0 {
			return invalid(d)
		}
		st.FontSize = px
	case "font-family":
		fams := familyList(d.Value)
		if len(fams) == 0 {
			return invalid(d)
		}
		st.FontFamilies = fams
	case "line-height":
		lh, err := parseLineHeight(v, st.FontSize)
		if err != nil {
			return invalid(d)
		}
		st.LineHeight = lh
	case "font":
		return st.applyFont(d, parent)
	case "white-space":
		switch v {
		case "normal":
			st.WhiteSpace = WhiteSpaceNormal
		case "nowrap":
			st.WhiteSpace = WhiteSpaceNoWrap
		case "pre", "pre-wrap":
			st.WhiteSpace = WhiteSpacePre
		default:
			return invalid(d)
		}
	case "will-change":
		st.Composited = false
		for _, p := range strings.Split(v, ",") {
			if strings.TrimSpace(p) == "transform" {
				st.Composited = true
			}
		}
	case "direction":
		switch v {
		case "ltr":
			st.Direction = text.DirectionLTR
		case "rtl":
			st.Direction = text.DirectionRTL
		default:
			return invalid(d)
		}
	default:
		selbounds.Logger().Debug("layout: unsupported property", "property", d.Property)
	}
	return nil
}

func (st *Style) applyMargin(d Declaration) error {
	parts := strings.Fields(strings.ToLower(d.Value))
	if len(parts) == 0 || len(parts) > 4 {
		return invalid(d)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		px, err := parseLength(p, st.FontSize)
		if err != nil {
			return invalid(d)
		}
		vals[i] = px
	}
	switch len(vals) {
	case 1:
		st.Margin = Edges{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		st.Margin = Edges{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		st.Margin = Edges{vals[0], vals[1], vals[2], vals[1]}
	default:
		st.Margin = Edges{vals[0], vals[1], vals[2], vals[3]}
	}
	return nil
}

// applyFont handles the shorthand "[style] [weight] size[/line-height] family".
// Style and weight keywords are accepted and ignored.
func (st *Style) applyFont(d Declaration, parent *Style) error {
	fields := strings.Fields(d.Value)
	for i, f := range fields {
		sizePart, lhPart, hasLH := strings.Cut(strings.ToLower(f), "/")
		size, err := parseLength(sizePart, parent.FontSize)
		if err != nil {
			continue
		}
		if size <= 0 || i == len(fields)-1 {
			return invalid(d)
		}
		lh := LineHeight{}
		if hasLH {
			if lh, err = parseLineHeight(lhPart, size); err != nil {
				return invalid(d)
			}
		}
		fams := familyList(strings.Join(fields[i+1:], " "))
		if len(fams) == 0 {
			return invalid(d)
		}
		st.FontSize = size
		st.LineHeight = lh
		st.FontFamilies = fams
		return nil
	}
	return invalid(d)
}

func invalid(d Declaration) error {
	return fmt.Errorf("%w: %s: %q", ErrInvalidValue, d.Property, d.Value)
}

// parseLength parses px, em and unitless zero.
func parseLength(v string, fontSize float64) (float64, error) {
	switch {
	case v == "0":
		return 0, nil
	case strings.HasSuffix(v, "px"):
		return strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	case strings.HasSuffix(v, "em"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "em"), 64)
		return f * fontSize, err
	default:
		return 0, ErrInvalidValue
	}
}

func parseLineHeight(v string, fontSize float64) (LineHeight, error) {
	if v == "normal" {
		return LineHeight{}, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if f < 0 {
			return LineHeight{}, ErrInvalidValue
		}
		return LineHeight{Kind: LineHeightNumber, Value: f}, nil
	}
	px, err := parseLength(v, fontSize)
	if err != nil || px < 0 {
		return LineHeight{}, ErrInvalidValue
	}
	return LineHeight{Kind: LineHeightPx, Value: px}, nil
}
