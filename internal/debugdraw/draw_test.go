// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package debugdraw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/compositor"
	"github.com/gogpu/selbounds/layout"
	"github.com/gogpu/selbounds/paint"
)

func TestDrawHandles(t *testing.T) {
	handles := []compositor.Handle{
		{
			Endpoint: selbounds.EndpointStart,
			Bound:    paint.PaintedSelectionBound{Type: selbounds.BoundLeft},
			Global:   [2]image.Point{image.Pt(30, 0), image.Pt(30, 10)},
		},
		{
			Endpoint: selbounds.EndpointEnd,
			Bound:    paint.PaintedSelectionBound{Type: selbounds.BoundRight},
			Global:   [2]image.Point{image.Pt(60, 20), image.Pt(60, 30)},
		},
	}
	img := Draw(nil, nil, handles, layout.Viewport{Width: 100, Height: 50}, Options{Scale: 2})

	if got, want := img.Bounds(), image.Rect(0, 0, 200, 100); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"start caret", 60, 5, caret},
		{"start knob hangs left", 55, 25, caret},
		{"right of start knob", 65, 25, background},
		{"end knob hangs right", 125, 65, caret},
		{"left of end knob", 115, 65, background},
		{"empty area", 180, 90, background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("RGBAAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawScaleDefault(t *testing.T) {
	img := Draw(nil, nil, nil, layout.Viewport{Width: 10, Height: 20}, Options{})
	if got, want := img.Bounds(), image.Rect(0, 0, 10, 20); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestEncode(t *testing.T) {
	img := Draw(nil, nil, nil, layout.Viewport{Width: 4, Height: 4}, Options{})
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
