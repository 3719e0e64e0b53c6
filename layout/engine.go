package layout

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/text"
)

// ErrNoDocumentElement is returned when laying out a document without an
// html element.
var ErrNoDocumentElement = errors.New("layout: document has no document element")

// UnknownEngineError is returned by Lookup for an unregistered engine name.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("layout: unknown engine %q", e.Name)
}

// Config holds the inputs of a layout pass besides the document.
type Config struct {
	ViewportWidth  float64
	ViewportHeight float64
	Fonts          *text.Registry
}

// DefaultConfig returns an 800x600 viewport using the default font registry.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  800,
		ViewportHeight: 600,
		Fonts:          text.DefaultRegistry(),
	}
}

// CaretBox is the geometry of a caret at a text position, in global
// coordinates.
type CaretBox struct {
	// Fragment is the text fragment the caret is painted with.
	Fragment FragmentID
	X        float64
	Baseline float64
	Ascent   float64
	Descent  float64
	// Direction is the direction of the line holding the caret.
	Direction text.Direction
}

// BoxMetrics answers caret geometry queries against one layout result.
type BoxMetrics interface {
	// CaretBox returns the caret geometry at pos. The affinity decides the
	// line at a soft wrap. ok is false when pos has no rendered box.
	CaretBox(pos dom.Position, aff editing.Affinity) (box CaretBox, ok bool)
}

// Result is the outcome of one layout pass.
type Result interface {
	BoxMetrics
	// Root is the fragment of the document element.
	Root() *Fragment
	// Fragment returns a fragment by id.
	Fragment(id FragmentID) (*Fragment, bool)
	// Viewport is the visible rectangle in global coordinates.
	Viewport() Viewport
}

// Viewport is the visible area of the document.
type Viewport struct {
	Width, Height float64
}

// Engine lays out a document.
type Engine interface {
	Name() string
	Layout(doc *dom.Document, cfg Config) (Result, error)
}

var (
	enginesMu sync.RWMutex
	engines   = map[string]Engine{}
)

// Register makes an engine available by name. It panics when an engine of
// the same name is already registered.
func Register(e Engine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	if _, dup := engines[e.Name()]; dup {
		panic("layout: Register called twice for engine " + e.Name())
	}
	engines[e.Name()] = e
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	e, ok := engines[name]
	if !ok {
		return nil, &UnknownEngineError{Name: name}
	}
	return e, nil
}

// Engines returns the names of all registered engines, sorted.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
