package editing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/selbounds/dom"
)

// Selection sample markers. '^' marks the base and '|' the extent; a lone
// '|' marks a caret.
const (
	baseMarker   = '^'
	extentMarker = '|'

	baseSentinel   = '\uE000'
	extentSentinel = '\uE001'
)

type sampleMark struct {
	marker rune
	offset int
}

// ErrDuplicateMarker is returned when a sample contains a marker twice.
var ErrDuplicateMarker = errors.New("editing: duplicate selection marker")

// ParseSample parses markup annotated with selection markers and returns
// the document and the selection with the markers removed.
//
//	doc, sel, err := editing.ParseSample("<div>f^oo\nbar\nb|az</div>")
//
// A sample without markers yields an empty selection.
func ParseSample(markup string) (*dom.Document, Selection, error) {
	if strings.Count(markup, string(baseMarker)) > 1 || strings.Count(markup, string(extentMarker)) > 1 {
		return nil, Selection{}, ErrDuplicateMarker
	}
	markup = strings.NewReplacer(
		string(baseMarker), string(baseSentinel),
		string(extentMarker), string(extentSentinel),
	).Replace(markup)

	doc, err := dom.Parse(markup)
	if err != nil {
		return nil, Selection{}, fmt.Errorf("editing: sample: %w", err)
	}

	var base, extent dom.Position
	var texts []*dom.Node
	for n := range doc.Root().Descendants() {
		if n.IsText() {
			texts = append(texts, n)
		}
	}
	for _, t := range texts {
		data := t.Data()
		if !strings.ContainsAny(data, string([]rune{baseSentinel, extentSentinel})) {
			continue
		}
		var sb strings.Builder
		var found []sampleMark
		for _, r := range data {
			if r == baseSentinel || r == extentSentinel {
				found = append(found, sampleMark{marker: r, offset: sb.Len()})
				continue
			}
			sb.WriteRune(r)
		}
		stripped := sb.String()
		for _, f := range found {
			pos := dom.Pos(t, f.offset)
			if stripped == "" {
				// Marker between elements: anchor on the parent.
				pos = dom.Pos(t.Parent(), t.Index())
			}
			if f.marker == baseSentinel {
				base = pos
			} else {
				extent = pos
			}
		}
		if stripped == "" {
			t.Parent().RemoveChild(t)
		} else {
			t.SetData(stripped)
		}
	}

	switch {
	case base.IsNull() && extent.IsNull():
		return doc, Selection{}, nil
	case base.IsNull():
		base = extent
	case extent.IsNull():
		extent = base
	}
	return doc, Selection{Base: base, Extent: extent}, nil
}
