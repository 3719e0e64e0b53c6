package commands

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/gogpu/selbounds"
	"github.com/gogpu/selbounds/dom"
	"github.com/gogpu/selbounds/editing"
	"github.com/gogpu/selbounds/frame"
)

// Scenario is a document plus a sequence of frames, each changing the
// selection or the document before a lifecycle update.
//
//	engine = "legacy"
//	viewport = [320, 240]
//	markup = "<div>foo^</div><div id=target>bar</div><div>|baz</div>"
//
//	[[frames]]
//
//	[[frames]]
//	select = "target"
type Scenario struct {
	Engine   string    `toml:"engine"`
	Viewport []float64 `toml:"viewport"`
	// Markup is a selection sample: '^' marks the base, '|' the extent.
	Markup string `toml:"markup"`
	Frames []Step  `toml:"frames"`
}

// Step describes the changes applied before one lifecycle update.
// Unset booleans keep their defaults: handles visible, surface focused.
type Step struct {
	// Select selects the contents of the element with this id.
	Select string `toml:"select"`
	// Caret collapses the selection at the start of the element with this id.
	Caret string `toml:"caret"`
	// Clear removes the selection.
	Clear bool `toml:"clear"`
	// Remove detaches the element with this id from the document.
	Remove string `toml:"remove"`
	// SetText replaces the text of elements by id.
	SetText map[string]string `toml:"set_text"`

	Handles         *bool `toml:"handles"`
	Focused         *bool `toml:"focused"`
	InsertionHandle bool  `toml:"insertion_handle"`
}

// ErrNoFrames is returned for a scenario without frames.
var ErrNoFrames = errors.New("scenario: no frames")

// LoadScenario reads a TOML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		selbounds.Logger().Warn("scenario: unrecognized keys", "file", path, "keys", fmt.Sprint(undecoded))
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return &s, nil
}

// ParseScenario decodes a scenario from TOML text.
func ParseScenario(data string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Frames) == 0 {
		return ErrNoFrames
	}
	if len(s.Viewport) != 0 && len(s.Viewport) != 2 {
		return fmt.Errorf("viewport needs 2 values, got %d", len(s.Viewport))
	}
	return nil
}

// options returns the frame options of the scenario. A non-empty
// engineOverride replaces the scenario's engine.
func (s *Scenario) options(engineOverride string) []frame.Option {
	var opts []frame.Option
	switch {
	case engineOverride != "":
		opts = append(opts, frame.WithEngine(engineOverride))
	case s.Engine != "":
		opts = append(opts, frame.WithEngine(s.Engine))
	}
	if len(s.Viewport) == 2 {
		opts = append(opts, frame.WithViewport(s.Viewport[0], s.Viewport[1]))
	}
	return opts
}

// Play runs every step of the scenario and calls fn after each lifecycle
// update. It stops at the first error.
func (s *Scenario) Play(engineOverride string, fn func(i int, f *frame.Frame) error) error {
	doc, sel, err := editing.ParseSample(s.Markup)
	if err != nil {
		return err
	}
	f, err := frame.New(doc, s.options(engineOverride)...)
	if err != nil {
		return err
	}
	f.Selection().SetSelectionAndEndTyping(sel)

	for i, step := range s.Frames {
		if err := step.apply(f); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
		if err := f.UpdateAllLifecyclePhases(); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
		if err := fn(i, f); err != nil {
			return err
		}
	}
	return nil
}

func (st Step) apply(f *frame.Frame) error {
	doc := f.Document()
	fs := f.Selection()

	lookup := func(id string) (*dom.Node, error) {
		n := doc.GetElementByID(id)
		if n == nil {
			return nil, fmt.Errorf("no element with id %q", id)
		}
		return n, nil
	}

	for _, id := range slices.Sorted(maps.Keys(st.SetText)) {
		data := st.SetText[id]
		n, err := lookup(id)
		if err != nil {
			return err
		}
		for n.FirstChild() != nil {
			n.RemoveChild(n.FirstChild())
		}
		n.AppendChild(doc.CreateTextNode(data))
	}
	if st.Remove != "" {
		n, err := lookup(st.Remove)
		if err != nil {
			return err
		}
		n.Parent().RemoveChild(n)
	}

	switch {
	case st.Clear:
		fs.Clear()
	case st.Select != "":
		n, err := lookup(st.Select)
		if err != nil {
			return err
		}
		fs.SetSelectionAndEndTyping(editing.NewBuilder().
			Collapse(dom.Pos(n, 0)).
			Extend(dom.Pos(n, n.ChildCount())).
			Build())
	case st.Caret != "":
		n, err := lookup(st.Caret)
		if err != nil {
			return err
		}
		fs.SetSelectionAndEndTyping(editing.NewBuilder().Collapse(dom.Pos(n, 0)).Build())
	}

	fs.SetHandleVisible(st.Handles == nil || *st.Handles)
	fs.SetInsertionHandle(st.InsertionHandle)
	if st.Focused == nil || *st.Focused {
		f.Focus().SetFocusedSurface(f.Surface())
	} else {
		f.Focus().SetFocusedSurface(uuid.Nil)
	}
	return nil
}
