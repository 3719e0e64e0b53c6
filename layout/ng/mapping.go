package ng

import (
	"sort"
	"unicode/utf8"

	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/layout"
)

type unitKind uint8

const (
	// unitIdentity maps DOM bytes one to one onto content bytes.
	unitIdentity unitKind = iota
	// unitCollapsed maps DOM bytes onto a single content offset.
	unitCollapsed
)

// mappingUnit maps a DOM range of one text node onto a content range.
type mappingUnit struct {
	kind                     unitKind
	domStart, domEnd         int
	contentStart, contentEnd int
}

// offsetMapping translates DOM positions in the text nodes of a block into
// offsets of its text content.
type offsetMapping struct {
	units map[*dom.Node][]mappingUnit
}

func buildOffsetMapping(ctx *layout.InlineContext) *offsetMapping {
	m := &offsetMapping{units: make(map[*dom.Node][]mappingUnit)}
	for _, it := range ctx.Items {
		if it.Kind != layout.InlineText {
			continue
		}
		m.units[it.Node] = unitsFor(it.Node.Data(), it.Mapping)
	}
	return m
}

// unitsFor groups the runes of data into maximal identity and collapsed
// units.
func unitsFor(data string, mapping []int) []mappingUnit {
	var units []mappingUnit
	for i := 0; i < len(data); {
		_, size := utf8.DecodeRuneInString(data[i:])
		kind := unitCollapsed
		if mapping[i+size]-mapping[i] == size {
			kind = unitIdentity
		}
		if k := len(units) - 1; k >= 0 && units[k].kind == kind {
			units[k].domEnd = i + size
			units[k].contentEnd = mapping[i+size]
		} else {
			units = append(units, mappingUnit{
				kind:         kind,
				domStart:     i,
				domEnd:       i + size,
				contentStart: mapping[i],
				contentEnd:   mapping[i+size],
			})
		}
		i += size
	}
	if len(units) == 0 {
		units = append(units, mappingUnit{kind: unitCollapsed, contentStart: mapping[0], contentEnd: mapping[0]})
	}
	return units
}

// textContentOffset returns the content offset of the DOM position
// (node, off).
func (m *offsetMapping) textContentOffset(node *dom.Node, off int) (int, bool) {
	units := m.units[node]
	if len(units) == 0 {
		return 0, false
	}
	i := sort.Search(len(units), func(i int) bool { return units[i].domEnd >= off })
	if i == len(units) {
		return 0, false
	}
	u := units[i]
	if u.kind == unitCollapsed {
		return u.contentStart, true
	}
	return u.contentStart + (off - u.domStart), true
}
