package paint

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/layout"
)

// DisplayItemKind is the kind of a display item.
type DisplayItemKind uint8

const (
	// ItemBackground fills the box of the root or a composited block.
	ItemBackground DisplayItemKind = iota
	// ItemText draws one text fragment.
	ItemText
)

// String returns the string representation of the item kind.
func (k DisplayItemKind) String() string {
	switch k {
	case ItemBackground:
		return "background"
	case ItemText:
		return "text"
	default:
		return "unknown"
	}
}

// DisplayItem is one drawing operation in chunk-local coordinates.
type DisplayItem struct {
	Kind DisplayItemKind
	// Fragment is the fragment that produced the item in the pass that
	// painted it. Cached items keep the id of that earlier pass.
	Fragment layout.FragmentID
	Rect     selbounds.Rect
	// Text and Baseline are set for ItemText.
	Text     string
	Baseline float64
}

// fingerprint hashes the visual content of items. Fragment ids are excluded
// since they change every pass.
func fingerprint(items []DisplayItem) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	f := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, it := range items {
		h.Write([]byte{byte(it.Kind)})
		f(it.Rect.Min.X)
		f(it.Rect.Min.Y)
		f(it.Rect.Max.X)
		f(it.Rect.Max.Y)
		f(it.Baseline)
		h.Write([]byte(it.Text))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
