package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardDispatchNotifiesObservers(t *testing.T) {
	b := New(testReducer(), nil, nil)

	var changes []bool
	b.Observe(func(prev, next State) {
		changes = append(changes, NotesChanged(prev, next))
	})

	b.Dispatch(AddNote{Geometry: DefaultPlacement().Next(nil)})
	b.Dispatch(EndDrag{})
	b.Dispatch(StartDrag{NoteID: "note-1", Mode: ModeMove, PointerX: 50, PointerY: 50})
	b.Dispatch(MoveDrag{PointerX: 50, PointerY: 50})
	b.Dispatch(UpdateContent{NoteID: "note-1", Content: "x"})

	assert.Equal(t, []bool{true, false, true, false, true}, changes)
	require.Len(t, b.State().Notes, 1)
	assert.Equal(t, "x", b.State().Notes[0].Content)
}

func TestPlacementStacksNotes(t *testing.T) {
	p := DefaultPlacement()

	first := p.Next(nil)
	third := p.Next(make([]Note, 2))

	assert.Equal(t, Geometry{X: 40, Y: 40, Width: 200, Height: 160}, first)
	assert.Equal(t, Geometry{X: 80, Y: 80, Width: 200, Height: 160}, third)
}

func TestNoteCenter(t *testing.T) {
	n := Note{X: 10, Y: 20, Width: 100, Height: 40}

	assert.Equal(t, Point{X: 60, Y: 40}, n.Center())
}
