package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/selbounds/cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenTypeFace measures text with an OpenType font parsed by
// golang.org/x/image/font/opentype. Advances include pair kerning.
//
// The underlying font.Face is not safe for concurrent use, so calls are
// serialized; measured advances are cached per string.
type OpenTypeFace struct {
	family  string
	size    float64
	metrics Metrics

	mu   sync.Mutex
	face font.Face

	advances *cache.Sharded[string, float64]
}

// ParseOpenType parses font data once so that faces of several sizes can be
// created from it.
func ParseOpenType(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// NewOpenTypeFace creates a face of the given pixel size from a parsed font.
func NewOpenTypeFace(family string, f *opentype.Font, size float64) (*OpenTypeFace, error) {
	if !validSize(size) {
		return nil, ErrInvalidSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	m := face.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return &OpenTypeFace{
		family: family,
		size:   size,
		metrics: Metrics{
			Ascent:  ascent,
			Descent: descent,
			LineGap: max(0, fixedToFloat64(m.Height)-ascent-descent),
		},
		face:     face,
		advances: cache.NewSharded[string, float64](cache.DefaultCapacity, cache.StringHasher),
	}, nil
}

// Metrics implements Face.Metrics.
func (f *OpenTypeFace) Metrics() Metrics { return f.metrics }

// Advance implements Face.Advance.
func (f *OpenTypeFace) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return f.advances.GetOrCreate(s, func() float64 {
		f.mu.Lock()
		defer f.mu.Unlock()
		return fixedToFloat64(font.MeasureString(f.face, s))
	})
}

// Size implements Face.Size.
func (f *OpenTypeFace) Size() float64 { return f.size }

// Family implements Face.Family.
func (f *OpenTypeFace) Family() string { return f.family }

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
