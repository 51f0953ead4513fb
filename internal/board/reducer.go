package board

import "github.com/google/uuid"

type DragMode int

const (
	ModeMove DragMode = iota
	ModeResize
)

func (m DragMode) String() string {
	switch m {
	case ModeMove:
		return "MOVE"
	case ModeResize:
		return "RESIZE"
	default:
		return "UNKNOWN"
	}
}

// DragState exists only while a pointer gesture is active.
type DragState struct {
	NoteID       string
	Mode         DragMode
	PointerStart Point
	NoteStart    Geometry
	// Offset is the grab point inside the note; set for ModeMove only.
	Offset *Point
}

type State struct {
	Notes []Note
	Drag  *DragState
}

// Action is one of AddNote, StartDrag, MoveDrag, EndDrag, DeleteNote or
// UpdateContent.
type Action interface {
	isAction()
	Name() string
}

type AddNote struct {
	Geometry Geometry
	Content  string
}

type StartDrag struct {
	NoteID   string
	Mode     DragMode
	PointerX float64
	PointerY float64
}

type MoveDrag struct {
	PointerX float64
	PointerY float64
}

type EndDrag struct{}

type DeleteNote struct {
	NoteID string
}

type UpdateContent struct {
	NoteID  string
	Content string
}

func (AddNote) isAction()       {}
func (StartDrag) isAction()     {}
func (MoveDrag) isAction()      {}
func (EndDrag) isAction()       {}
func (DeleteNote) isAction()    {}
func (UpdateContent) isAction() {}

func (AddNote) Name() string       { return "ADD_NOTE" }
func (StartDrag) Name() string     { return "START_DRAG" }
func (MoveDrag) Name() string      { return "MOVE_DRAG" }
func (EndDrag) Name() string       { return "END_DRAG" }
func (DeleteNote) Name() string    { return "DELETE_NOTE" }
func (UpdateContent) Name() string { return "UPDATE_CONTENT" }

// Reducer computes state transitions. The zero value is usable: ids come from
// uuid and the minimums fall back to MinWidth and MinHeight.
type Reducer struct {
	NewID     func() string
	MinWidth  float64
	MinHeight float64
}

func (r Reducer) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

func (r Reducer) minSize() (float64, float64) {
	w, h := r.MinWidth, r.MinHeight
	if w <= 0 {
		w = MinWidth
	}
	if h <= 0 {
		h = MinHeight
	}
	return w, h
}

// Normalize drops notes without an id or with a repeated id, and grows
// notes smaller than the minimum size. It returns a new slice.
func (r Reducer) Normalize(notes []Note) []Note {
	minW, minH := r.minSize()
	seen := make(map[string]bool, len(notes))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.ID == "" || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		n.Width = max(n.Width, minW)
		n.Height = max(n.Height, minH)
		out = append(out, n)
	}
	return out
}

// Reduce returns the state that follows s after a. It never modifies s;
// actions aimed at missing notes return s unchanged.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddNote:
		note := Note{
			ID:      r.newID(),
			X:       a.Geometry.X,
			Y:       a.Geometry.Y,
			Width:   a.Geometry.Width,
			Height:  a.Geometry.Height,
			Content: a.Content,
			ZIndex:  maxZIndex(s.Notes) + 1,
		}
		notes := make([]Note, len(s.Notes), len(s.Notes)+1)
		copy(notes, s.Notes)
		return State{Notes: append(notes, note), Drag: s.Drag}

	case StartDrag:
		i, ok := findNote(s.Notes, a.NoteID)
		if !ok {
			return s
		}
		note := s.Notes[i]
		drag := &DragState{
			NoteID:       note.ID,
			Mode:         a.Mode,
			PointerStart: Point{X: a.PointerX, Y: a.PointerY},
			NoteStart:    note.Geometry(),
		}
		if a.Mode == ModeMove {
			drag.Offset = &Point{X: a.PointerX - note.X, Y: a.PointerY - note.Y}
		}
		z := maxZIndex(s.Notes) + 1
		notes := replaceNote(s.Notes, i, func(n *Note) { n.ZIndex = z })
		return State{Notes: notes, Drag: drag}

	case MoveDrag:
		drag := s.Drag
		if drag == nil {
			return s
		}
		i, ok := findNote(s.Notes, drag.NoteID)
		if !ok {
			return s
		}
		switch drag.Mode {
		case ModeMove:
			if drag.Offset == nil {
				return s
			}
			x := a.PointerX - drag.Offset.X
			y := a.PointerY - drag.Offset.Y
			return State{Notes: replaceNote(s.Notes, i, func(n *Note) { n.X, n.Y = x, y }), Drag: drag}
		case ModeResize:
			minW, minH := r.minSize()
			width := max(minW, drag.NoteStart.Width+a.PointerX-drag.PointerStart.X)
			height := max(minH, drag.NoteStart.Height+a.PointerY-drag.PointerStart.Y)
			return State{Notes: replaceNote(s.Notes, i, func(n *Note) { n.Width, n.Height = width, height }), Drag: drag}
		}
		return s

	case EndDrag:
		if s.Drag == nil {
			return s
		}
		return State{Notes: s.Notes}

	case DeleteNote:
		i, ok := findNote(s.Notes, a.NoteID)
		if !ok {
			return s
		}
		notes := make([]Note, 0, len(s.Notes)-1)
		notes = append(notes, s.Notes[:i]...)
		notes = append(notes, s.Notes[i+1:]...)
		drag := s.Drag
		if drag != nil && drag.NoteID == a.NoteID {
			drag = nil
		}
		return State{Notes: notes, Drag: drag}

	case UpdateContent:
		i, ok := findNote(s.Notes, a.NoteID)
		if !ok {
			return s
		}
		return State{Notes: replaceNote(s.Notes, i, func(n *Note) { n.Content = a.Content }), Drag: s.Drag}

	default:
		return s
	}
}

// replaceNote copies notes and applies edit to the copy at index i.
func replaceNote(notes []Note, i int, edit func(*Note)) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	edit(&out[i])
	return out
}
