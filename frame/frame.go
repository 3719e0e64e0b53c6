// Package frame drives the document lifecycle of one rendering surface:
// layout, paint with selection bound recording, and the compositor handoff.
package frame

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/compositor"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/geometry"
	"github.com/gogpu/selbounds/layout"
	"github.com/gogpu/selbounds/paint"
	"github.com/gogpu/selbounds/text"
)

// ErrReentrantUpdate is returned when UpdateAllLifecyclePhases is called
// while an update of the same frame is running.
var ErrReentrantUpdate = errors.New("frame: re-entrant lifecycle update")

// ErrNilDocument is returned by New for a nil document.
var ErrNilDocument = errors.New("frame: nil document")

// Frame owns a document and everything needed to turn it into composited
// layers with selection handles attached.
//
// A Frame is not safe for concurrent use. The re-entrancy guard only
// rejects nested updates from hooks.
type Frame struct {
	doc       *dom.Document
	opts      options
	focus     *editing.FocusController
	selection *editing.FrameSelection
	paint     *paint.Controller
	host      *compositor.Host

	layout   layout.Result
	last     *paint.PaintResult
	updating atomic.Bool
}

// New creates a frame for doc. The frame's surface starts out focused.
func New(doc *dom.Document, opts ...Option) (*Frame, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = text.DefaultRegistry()
	}
	if o.surface == uuid.Nil {
		o.surface = uuid.New()
	}
	if !(o.width > 0) || !(o.height > 0) {
		return nil, fmt.Errorf("frame: invalid viewport %gx%g", o.width, o.height)
	}

	focus := editing.NewFocusController()
	focus.SetFocusedSurface(o.surface)
	return &Frame{
		doc:       doc,
		opts:      o,
		focus:     focus,
		selection: editing.NewFrameSelection(o.surface, focus),
		paint:     paint.NewController(),
		host:      compositor.NewHost(),
	}, nil
}

// Document returns the frame's document.
func (f *Frame) Document() *dom.Document { return f.doc }

// Selection returns the frame selection.
func (f *Frame) Selection() *editing.FrameSelection { return f.selection }

// Focus returns the focus controller shared with the frame selection.
func (f *Frame) Focus() *editing.FocusController { return f.focus }

// Surface returns the id of the frame's rendering surface.
func (f *Frame) Surface() uuid.UUID { return f.opts.surface }

// Engine returns the configured layout engine name.
func (f *Frame) Engine() string { return f.opts.engine }

// Host returns the compositor host receiving the frame's layers.
func (f *Frame) Host() *compositor.Host { return f.host }

// Layout returns the result of the last layout pass, or nil before the
// first update.
func (f *Frame) Layout() layout.Result { return f.layout }

// LastPaint returns the result of the last paint pass, or nil before the
// first update.
func (f *Frame) LastPaint() *paint.PaintResult { return f.last }

// ContentPaintChunks returns the chunks of the last paint pass, or nil
// before the first update.
func (f *Frame) ContentPaintChunks() *paint.ChunkSubset {
	if f.last == nil {
		return nil
	}
	return f.last.Chunks
}

// UpdateAllLifecyclePhases lays out the document, paints it, records the
// selection bounds when handles should show, and hands the chunks to the
// compositor. Absent geometry is never an error; errors report an unknown
// engine, a layout failure or a re-entrant call.
func (f *Frame) UpdateAllLifecyclePhases() error {
	if !f.updating.CompareAndSwap(false, true) {
		return ErrReentrantUpdate
	}
	defer f.updating.Store(false)

	engine, err := layout.Lookup(f.opts.engine)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	res, err := engine.Layout(f.doc, layout.Config{
		ViewportWidth:  f.opts.width,
		ViewportHeight: f.opts.height,
		Fonts:          f.opts.fonts,
	})
	if err != nil {
		return fmt.Errorf("frame: layout: %w", err)
	}
	f.layout = res

	var rec *paint.Recorder
	if f.selection.ShouldRecordBounds() {
		resolver := geometry.NewResolver(geometry.ViewportRect(res.Viewport()))
		rec = paint.NewRecorder(resolver.Resolve(f.selection.Selection(), res))
	}
	f.last = f.paint.Paint(res.Root(), rec)

	selbounds.Logger().Debug("frame: lifecycle update",
		"engine", engine.Name(),
		"generation", f.last.Chunks.Generation(),
		"chunks", f.last.Chunks.Len(),
		"recording", rec != nil,
		"selection_invalidations", len(f.last.SelectionInvalidations))

	f.host.Commit(compositor.Handoff(f.last.Chunks))
	if f.opts.onCommit != nil {
		f.opts.onCommit(f)
	}
	return nil
}

// Invalidate drops all cached paint so the next update repaints every chunk.
func (f *Frame) Invalidate() { f.paint.Invalidate() }
