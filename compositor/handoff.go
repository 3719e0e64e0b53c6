// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor is the receiving side of a paint pass: it turns the
// chunk subset into per-layer updates carrying each chunk's origin and
// selection record, and keeps the handles the compositor would draw.
package compositor

import (
	"fmt"
	"image"
	"sort"

	"github.com/tidwall/sjson"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/paint"
)

// LayerUpdate is what the compositor receives for one chunk.
type LayerUpdate struct {
	Chunk        paint.ChunkID
	Origin       selbounds.Point
	Invalidation paint.Invalidation
	// Selection is nil when the chunk holds no endpoint.
	Selection *paint.LayerSelectionData
}

// Handoff converts a chunk subset into layer updates, in paint order.
func Handoff(s *paint.ChunkSubset) []LayerUpdate {
	updates := make([]LayerUpdate, 0, s.Len())
	for _, c := range s.All() {
		updates = append(updates, LayerUpdate{
			Chunk:        c.ID,
			Origin:       c.Origin,
			Invalidation: c.Invalidation,
			Selection:    c.LayerSelectionData,
		})
	}
	return updates
}

// AppendJSON appends a JSON rendering of the handoff of s to dst:
//
//	{"generation":2,"layers":[{"id":"layer(7)","origin":{"x":0,"y":10},
//	  "invalidation":"selection","selection":{"end":{"type":"Right",
//	  "edge_start":{"x":0,"y":0},"edge_end":{"x":0,"y":10}}}}]}
//
// Absent records and absent sides are omitted rather than written as null.
func AppendJSON(dst []byte, s *paint.ChunkSubset) ([]byte, error) {
	w := &jsonWriter{doc: []byte(`{"layers":[]}`)}
	w.set("generation", s.Generation())
	for i, u := range Handoff(s) {
		p := fmt.Sprintf("layers.%d", i)
		w.set(p+".id", u.Chunk.String())
		w.set(p+".origin.x", u.Origin.X)
		w.set(p+".origin.y", u.Origin.Y)
		w.set(p+".invalidation", u.Invalidation.String())
		if u.Selection == nil {
			continue
		}
		w.setRaw(p+".selection", "{}")
		for _, e := range selbounds.Endpoints {
			b, ok := u.Selection.Bound(e).Get()
			if !ok {
				continue
			}
			bp := p + ".selection." + jsonEndpoint(e)
			w.set(bp+".type", b.Type.String())
			w.setPoint(bp+".edge_start", b.EdgeStart)
			w.setPoint(bp+".edge_end", b.EdgeEnd)
		}
	}
	if w.err != nil {
		return dst, fmt.Errorf("compositor: encode handoff: %w", w.err)
	}
	return append(dst, w.doc...), nil
}

func jsonEndpoint(e selbounds.Endpoint) string {
	if e == selbounds.EndpointEnd {
		return "end"
	}
	return "start"
}

// jsonWriter applies sjson edits and keeps the first error.
type jsonWriter struct {
	doc []byte
	err error
}

func (w *jsonWriter) set(path string, v any) {
	if w.err == nil {
		w.doc, w.err = sjson.SetBytes(w.doc, path, v)
	}
}

func (w *jsonWriter) setRaw(path, raw string) {
	if w.err == nil {
		w.doc, w.err = sjson.SetRawBytes(w.doc, path, []byte(raw))
	}
}

func (w *jsonWriter) setPoint(path string, p image.Point) {
	w.set(path+".x", p.X)
	w.set(path+".y", p.Y)
}

// Handle is a selection handle as the compositor places it: the painted
// bound plus the layer it is attached to.
type Handle struct {
	Endpoint selbounds.Endpoint
	Layer    paint.ChunkID
	Bound    paint.PaintedSelectionBound
	// Global is the caret segment moved back to global coordinates for
	// drawing: the local edge plus the rounded layer origin, which equals
	// the rounded global edge.
	Global [2]image.Point
}

// Host retains the layers received from the last handoff.
type Host struct {
	layers []LayerUpdate
	frames int
}

// NewHost returns an empty host.
func NewHost() *Host { return &Host{} }

// Commit replaces the host's layers with updates.
func (h *Host) Commit(updates []LayerUpdate) {
	h.layers = append(h.layers[:0], updates...)
	h.frames++
}

// Frames returns the number of commits.
func (h *Host) Frames() int { return h.frames }

// Layers returns the layers of the last commit.
func (h *Host) Layers() []LayerUpdate { return h.layers }

// Handles returns the visible selection handles, start first.
func (h *Host) Handles() []Handle {
	var out []Handle
	for _, l := range h.layers {
		if l.Selection == nil {
			continue
		}
		origin := l.Origin.Round()
		for _, e := range selbounds.Endpoints {
			b, ok := l.Selection.Bound(e).Get()
			if !ok {
				continue
			}
			out = append(out, Handle{
				Endpoint: e,
				Layer:    l.Chunk,
				Bound:    b,
				Global:   [2]image.Point{b.EdgeStart.Add(origin), b.EdgeEnd.Add(origin)},
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Endpoint < out[j].Endpoint })
	return out
}
