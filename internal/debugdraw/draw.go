// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package debugdraw renders a paint pass to an image: chunk bounds, text
// fragment boxes and the selection handles as the compositor places them.
package debugdraw

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/compositor"
	"github.com/gogpu/selbounds/layout"
	"github.com/gogpu/selbounds/paint"
)

// handleSize is the side of a handle knob in unscaled pixels.
const handleSize = 6

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	textBox    = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	caret      = color.RGBA{0x20, 0x60, 0xe0, 0xff}
	label      = color.RGBA{0x30, 0x30, 0x30, 0xff}

	// chunkColors cycles per chunk index.
	chunkColors = []color.RGBA{
		{0x90, 0x90, 0x90, 0xff},
		{0xe0, 0x40, 0x40, 0xff},
		{0x30, 0xa0, 0x50, 0xff},
		{0xd0, 0x90, 0x10, 0xff},
		{0x90, 0x40, 0xc0, 0xff},
	}
)

// Options control the rendering.
type Options struct {
	// Scale multiplies every layout pixel. Values below 1 are treated as 1.
	Scale int
	// Labels draws the chunk id in the top-left corner of each chunk.
	Labels bool
}

// Draw renders the fragment tree, the chunk outlines of s and handles onto a
// new image covering the viewport.
func Draw(root *layout.Fragment, s *paint.ChunkSubset, handles []compositor.Handle, vp layout.Viewport, opts Options) *image.RGBA {
	scale := max(opts.Scale, 1)
	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, int(vp.Width)*scale, int(vp.Height)*scale)),
		scale: scale,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if root != nil {
		for f := range root.Walk() {
			if f.Kind == layout.FragmentText {
				c.fill(f.Rect, textBox)
			}
		}
	}
	if s != nil {
		for i, ch := range s.All() {
			col := chunkColors[i%len(chunkColors)]
			r := ch.GlobalBounds()
			c.outline(r, col)
			if opts.Labels {
				c.label(r.Min, ch.ID.String())
			}
		}
	}
	for _, h := range handles {
		c.handle(h)
	}
	return c.img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type canvas struct {
	img   *image.RGBA
	scale int
}

func (c *canvas) px(v float64) int { return int(v * float64(c.scale)) }

func (c *canvas) rect(r selbounds.Rect) image.Rectangle {
	return image.Rect(c.px(r.Min.X), c.px(r.Min.Y), c.px(r.Max.X), c.px(r.Max.Y))
}

func (c *canvas) fill(r selbounds.Rect, col color.RGBA) {
	draw.Draw(c.img, c.rect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *canvas) outline(r selbounds.Rect, col color.RGBA) {
	b := c.rect(r)
	u := image.NewUniform(col)
	for _, edge := range [...]image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
		image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y),
		image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(c.img, edge, u, image.Point{}, draw.Src)
	}
}

func (c *canvas) label(at selbounds.Point, s string) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(label),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(c.px(at.X)+2, c.px(at.Y)+basicfont.Face7x13.Ascent+1),
	}
	d.DrawString(s)
}

// handle draws the caret segment and a knob below it. A Left knob hangs to
// the left of the segment, a Right knob to the right, and a Center knob is
// a triangle centered under it.
func (c *canvas) handle(h compositor.Handle) {
	top := h.Global[0].Mul(c.scale)
	bottom := h.Global[1].Mul(c.scale)
	draw.Draw(c.img, image.Rect(top.X, top.Y, top.X+max(1, c.scale/2), bottom.Y), image.NewUniform(caret), image.Point{}, draw.Src)

	k := float32(handleSize * c.scale)
	x, y := float32(bottom.X), float32(bottom.Y)
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	switch h.Bound.Type {
	case selbounds.BoundLeft:
		z.MoveTo(x, y)
		z.LineTo(x, y+k)
		z.LineTo(x-k, y+k)
		z.LineTo(x-k, y)
	case selbounds.BoundRight:
		z.MoveTo(x, y)
		z.LineTo(x+k, y)
		z.LineTo(x+k, y+k)
		z.LineTo(x, y+k)
	default:
		z.MoveTo(x, y)
		z.LineTo(x+k/2, y+k)
		z.LineTo(x-k/2, y+k)
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(caret), image.Point{})
}
