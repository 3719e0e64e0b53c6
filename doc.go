// Package selbounds computes selection handle bounds for paint chunks.
//
// # Overview
//
// A text selection has two endpoints. For each endpoint selbounds resolves a
// caret segment (an [EdgePair]) from the layout, finds the paint chunk that
// paints it, and attaches the segment to that chunk in the chunk's own
// coordinate space. A compositor reads the attachment to place selection
// handles without knowing anything about the document or the selection.
//
// Across frames selbounds remembers which chunk owns which endpoint and
// invalidates exactly the chunks whose ownership changed.
//
// # Quick Start
//
//	doc, sel, err := editing.ParseSample(`<div>f^oo</div><div>b|ar</div>`)
//	if err != nil { ... }
//	f, err := frame.New(doc)
//	if err != nil { ... }
//	f.Selection().SetSelectionAndEndTyping(sel)
//	f.Selection().SetHandleVisible(true)
//	if err := f.UpdateAllLifecyclePhases(); err != nil { ... }
//	for _, chunk := range f.ContentPaintChunks().All() {
//	    fmt.Println(chunk.ID, chunk.LayerSelectionData)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Root package: geometry primitives ([Point], [Rect], [EdgePair],
//     [BoundType]) and the shared logger
//   - dom, editing: document tree, selection and selection samples
//   - text: font faces and metrics (fixed, OpenType, shaped)
//   - layout: style, line breaking and the legacy and ng layout engines
//   - geometry: the selection geometry resolver
//   - paint: chunks, the bounds recorder and the ownership tracker
//   - frame: the lifecycle driver tying the above together
//   - compositor: the handoff record consumed downstream
//   - cmd/selbounds: replays TOML scenarios and draws debug images
package selbounds
