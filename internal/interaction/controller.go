// Package interaction turns pointer gestures into board actions and tracks
// the trash hover feedback that lives outside the board state.
package interaction

import "stickies/internal/board"

// Handle identifies the part of a note a gesture started on.
type Handle int

const (
	HandleHeader Handle = iota
	HandleResize
	// HandleButton is a control nested in the header; it never drags.
	HandleButton
)

// Rect is an axis-aligned box in screen space.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p board.Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Layout reports where the board and the trash target currently sit on
// screen.
type Layout interface {
	// BoardOrigin is the screen position of board-space (0,0).
	BoardOrigin() board.Point
	TrashRect() Rect
}

type Dispatcher interface {
	Dispatch(board.Action)
	State() board.State
}

// Capture records which element owns the pointer during a gesture.
type Capture struct {
	NoteID string
	Handle Handle
}

type Controller struct {
	board     Dispatcher
	layout    Layout
	capture   *Capture
	overTrash bool
}

func NewController(d Dispatcher, layout Layout) *Controller {
	return &Controller{board: d, layout: layout}
}

// PointerDown starts a gesture on a note handle. It reports whether a
// gesture started.
func (c *Controller) PointerDown(noteID string, h Handle, p board.Point) bool {
	var mode board.DragMode
	switch h {
	case HandleHeader:
		mode = board.ModeMove
	case HandleResize:
		mode = board.ModeResize
	default:
		return false
	}
	c.capture = &Capture{NoteID: noteID, Handle: h}
	c.board.Dispatch(board.StartDrag{NoteID: noteID, Mode: mode, PointerX: p.X, PointerY: p.Y})
	if c.board.State().Drag == nil {
		c.capture = nil
		return false
	}
	return true
}

// PointerMove follows the active gesture.
func (c *Controller) PointerMove(p board.Point) {
	if c.board.State().Drag == nil {
		c.Release()
		return
	}
	c.board.Dispatch(board.MoveDrag{PointerX: p.X, PointerY: p.Y})
	c.overTrash = c.centerOverTrash()
}

// PointerUp finishes the active gesture, deleting the note when its center
// was released over the trash. It reports whether the note was deleted.
func (c *Controller) PointerUp(p board.Point) bool {
	drag := c.board.State().Drag
	if drag == nil {
		c.Release()
		return false
	}
	c.capture = nil
	dropped := c.centerOverTrash()
	c.overTrash = false
	if dropped {
		c.board.Dispatch(board.DeleteNote{NoteID: drag.NoteID})
	}
	c.board.Dispatch(board.EndDrag{})
	return dropped
}

// Cancel ends the active gesture with the note back at its start geometry.
func (c *Controller) Cancel() {
	drag := c.board.State().Drag
	if drag == nil {
		return
	}
	c.board.Dispatch(board.MoveDrag{PointerX: drag.PointerStart.X, PointerY: drag.PointerStart.Y})
	c.board.Dispatch(board.EndDrag{})
	c.Release()
}

// Release drops the pointer capture and the trash hover. A gesture whose
// note was deleted ends this way.
func (c *Controller) Release() {
	c.capture = nil
	c.overTrash = false
}

// OverTrash reports whether the dragged note's center is over the trash.
func (c *Controller) OverTrash() bool {
	return c.overTrash && c.Active()
}

// Captured returns the element holding the pointer, if any. Capture never
// outlives the gesture.
func (c *Controller) Captured() (Capture, bool) {
	if c.capture == nil || !c.Active() {
		return Capture{}, false
	}
	return *c.capture, true
}

func (c *Controller) Active() bool {
	return c.board.State().Drag != nil
}

func (c *Controller) centerOverTrash() bool {
	s := c.board.State()
	if s.Drag == nil {
		return false
	}
	note, ok := board.Find(s.Notes, s.Drag.NoteID)
	if !ok {
		return false
	}
	origin := c.layout.BoardOrigin()
	center := note.Center()
	center.X += origin.X
	center.Y += origin.Y
	return c.layout.TrashRect().Contains(center)
}
