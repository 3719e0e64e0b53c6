package editing

import (
	"github.com/google/uuid"
	"github.com/gogpu/selbounds/dom"
)

// FocusController tracks which rendering surface holds focus.
type FocusController struct {
	focused uuid.UUID
}

// NewFocusController returns a controller with no focused surface.
func NewFocusController() *FocusController {
	return &FocusController{}
}

// SetFocusedSurface gives focus to the surface with the given id.
// uuid.Nil clears focus.
func (fc *FocusController) SetFocusedSurface(id uuid.UUID) {
	fc.focused = id
}

// FocusedSurface returns the focused surface id, or uuid.Nil.
func (fc *FocusController) FocusedSurface() uuid.UUID {
	return fc.focused
}

// IsFocused reports whether id holds focus.
func (fc *FocusController) IsFocused(id uuid.UUID) bool {
	return id != uuid.Nil && fc.focused == id
}

// FrameSelection is the selection state of one rendering surface: the
// current selection, whether handles are shown, and whether a collapsed
// selection shows an insertion handle.
//
// FrameSelection is not safe for concurrent use.
type FrameSelection struct {
	surface         uuid.UUID
	focus           *FocusController
	sel             Selection
	handleVisible   bool
	insertionHandle bool
}

// NewFrameSelection creates the selection state for a surface.
func NewFrameSelection(surface uuid.UUID, focus *FocusController) *FrameSelection {
	if focus == nil {
		focus = NewFocusController()
	}
	return &FrameSelection{surface: surface, focus: focus}
}

// Surface returns the id of the owning surface.
func (fs *FrameSelection) Surface() uuid.UUID { return fs.surface }

// Focus returns the focus controller consulted for handle visibility.
func (fs *FrameSelection) Focus() *FocusController { return fs.focus }

// Selection returns the current selection.
func (fs *FrameSelection) Selection() Selection { return fs.sel }

// SetSelectionAndEndTyping replaces the selection. Like a user-driven
// selection change it hides the handles; callers that want handles call
// SetHandleVisible afterwards.
func (fs *FrameSelection) SetSelectionAndEndTyping(s Selection) {
	fs.sel = s
	fs.handleVisible = false
}

// SetSelection replaces the selection and keeps handle visibility.
func (fs *FrameSelection) SetSelection(s Selection) {
	fs.sel = s
}

// SelectAll selects all renderable text of the document's body.
// Handle visibility is kept.
func (fs *FrameSelection) SelectAll(doc *dom.Document) {
	body := doc.Body()
	if body == nil {
		fs.sel = Selection{}
		return
	}
	start := CanonicalPosition(dom.Pos(body, 0), true)
	end := CanonicalPosition(dom.Pos(body, body.ChildCount()), false)
	fs.sel = NewBuilder().Collapse(start).Extend(end).Build()
}

// Clear removes the selection.
func (fs *FrameSelection) Clear() {
	fs.sel = Selection{}
}

// SetHandleVisible shows or hides selection handles.
func (fs *FrameSelection) SetHandleVisible(v bool) { fs.handleVisible = v }

// IsHandleVisible reports the handle visibility flag.
func (fs *FrameSelection) IsHandleVisible() bool { return fs.handleVisible }

// SetInsertionHandle controls whether a collapsed selection shows a
// centered insertion handle.
func (fs *FrameSelection) SetInsertionHandle(v bool) { fs.insertionHandle = v }

// ShouldRecordBounds reports whether handle bounds should be painted for the
// current state: a selection exists, handles are visible, the surface holds
// focus, and a collapsed selection has the insertion handle enabled.
func (fs *FrameSelection) ShouldRecordBounds() bool {
	if fs.sel.IsNone() || !fs.handleVisible || !fs.focus.IsFocused(fs.surface) {
		return false
	}
	if fs.sel.IsCollapsed() && !fs.insertionHandle {
		return false
	}
	return true
}
