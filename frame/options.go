package frame

import (
	"github.com/google/uuid"

	"github.com/gogpu/selbounds/text"
)

// Option configures a Frame during creation.
//
// Example:
//
//	f, err := frame.New(doc, frame.WithEngine("legacy"), frame.WithViewport(320, 240))
type Option func(*options)

// options holds optional configuration for Frame creation.
type options struct {
	engine        string
	width, height float64
	fonts         *text.Registry
	surface       uuid.UUID
	onCommit      func(*Frame)
}

// DefaultEngine is the layout engine used when WithEngine is not given.
const DefaultEngine = "ng"

// defaultOptions returns the default frame options.
func defaultOptions() options {
	return options{
		engine: DefaultEngine,
		width:  800,
		height: 600,
	}
}

// WithEngine selects the layout engine by its registered name.
// The name is resolved on every lifecycle update, so an unknown name
// surfaces as an error from UpdateAllLifecyclePhases.
func WithEngine(name string) Option {
	return func(o *options) {
		o.engine = name
	}
}

// WithViewport sets the visible area of the frame.
func WithViewport(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFonts sets the font registry used by layout.
// The default is text.DefaultRegistry().
func WithFonts(r *text.Registry) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithSurfaceID sets the id of the rendering surface the frame paints to.
// A random id is generated otherwise.
func WithSurfaceID(id uuid.UUID) Option {
	return func(o *options) {
		o.surface = id
	}
}

// WithCommitHook registers fn to run after each compositor commit, while
// the lifecycle update is still in progress.
func WithCommitHook(fn func(*Frame)) Option {
	return func(o *options) {
		o.onCommit = fn
	}
}
