// Package layout turns a dom.Document into positioned fragments and answers
// caret geometry queries for the selection resolver.
//
// The package holds what every layout engine shares: the CSS subset and
// cascade, the box tree, whitespace collapsing, line breaking and block
// placement. Engines live in sub-packages (layout/legacy, layout/ng), differ
// in how they index inline content for caret lookup, and register
// themselves by name:
//
//	import _ "github.com/gogpu/selbounds/layout/ng"
//
//	engine, err := layout.Lookup("ng")
//	res, err := engine.Layout(doc, layout.DefaultConfig())
//	box, ok := res.CaretBox(dom.Pos(textNode, 3), editing.AffinityDownstream)
//
// All coordinates produced by this package are global (document) pixels.
package layout
