// Package paint turns a fragment tree into paint chunks and attaches
// selection handle bounds to the chunks that paint the selection endpoints.
//
// A paint pass walks the fragments in paint order. The root chunk comes
// first; every composited block (will-change: transform) opens a chunk of
// its own whose origin is the block's offset, and content that follows a
// composited block in its parent continues in a new chunk. While text
// fragments are emitted, a Recorder converts the resolved endpoint bounds
// into the local space of the chunk being emitted.
//
// Across passes the Controller keeps display items of unchanged chunks,
// tracks which chunk owned each endpoint and marks otherwise clean chunks
// for repaint when they gain or lose an endpoint:
//
//	ctrl := paint.NewController()
//	res := ctrl.Paint(tree.Root(), paint.NewRecorder(bounds))
//	for i, c := range res.Chunks.All() {
//	    fmt.Println(i, c.ID, c.LayerSelectionData)
//	}
package paint
