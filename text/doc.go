// Package text provides the font faces the layout engines measure with.
//
// A [Face] reports line metrics (ascent, descent, line gap) and the advance
// width of a string. Three implementations are provided:
//
//   - [FixedFace]: every glyph is a square one em wide, with an ascent of
//     0.8em and a descent of 0.2em. Layout results are exact integers, which
//     makes it the face of choice for tests (family "ahem").
//   - [OpenTypeFace]: metrics and kerned advances from an OpenType font via
//     golang.org/x/image/font/opentype (family "go" by default).
//   - [ShapedFace]: advances produced by HarfBuzz shaping through
//     github.com/go-text/typesetting, including ligatures (family "go-shaped").
//
// Faces are created through a [Registry] keyed by family name.
package text
