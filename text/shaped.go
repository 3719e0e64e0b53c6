package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/selbounds/cache"
	"golang.org/x/image/math/fixed"
)

// ShapedFace measures text by running HarfBuzz shaping from
// github.com/go-text/typesetting, so ligatures and kerning are reflected in
// advances.
//
// The parsed font.Font is shared; a font.Face and a HarfbuzzShaper are
// created per call since neither is safe for concurrent use.
type ShapedFace struct {
	family  string
	size    float64
	font    *font.Font
	metrics Metrics

	shaperPool sync.Pool
	advances   *cache.Sharded[string, float64]
}

// ParseShaped parses TrueType/OpenType data for use with NewShapedFace.
func ParseShaped(data []byte) (*font.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// NewShapedFace creates a face of the given pixel size.
func NewShapedFace(family string, f *font.Font, size float64) (*ShapedFace, error) {
	if !validSize(size) {
		return nil, ErrInvalidSize
	}
	s := &ShapedFace{
		family: family,
		size:   size,
		font:   f,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		advances: cache.NewSharded[string, float64](cache.DefaultCapacity, cache.StringHasher),
	}
	// Line bounds do not depend on the shaped text; shape a space once.
	out := s.shape(" ")
	ascent := fixedToFloat(out.LineBounds.Ascent)
	descent := -fixedToFloat(out.LineBounds.Descent)
	s.metrics = Metrics{
		Ascent:  ascent,
		Descent: max(0, descent),
		LineGap: max(0, fixedToFloat(out.LineBounds.Gap)),
	}
	return s, nil
}

func (s *ShapedFace) shape(str string) shaping.Output {
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(s.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)
	return out
}

// Metrics implements Face.Metrics.
func (s *ShapedFace) Metrics() Metrics { return s.metrics }

// Advance implements Face.Advance.
func (s *ShapedFace) Advance(str string) float64 {
	if str == "" {
		return 0
	}
	return s.advances.GetOrCreate(str, func() float64 {
		return fixedToFloat(s.shape(str).Advance)
	})
}

// Size implements Face.Size.
func (s *ShapedFace) Size() float64 { return s.size }

// Family implements Face.Family.
func (s *ShapedFace) Family() string { return s.family }

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
