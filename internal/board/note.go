// Package board holds the note model and the reducer that owns every change
// made to it.
package board

// Note defaults in board pixels.
const (
	DefaultWidth  float64 = 200
	DefaultHeight float64 = 160
	InitialX      float64 = 40
	InitialY      float64 = 40
	StackOffset   float64 = 20
	MinWidth      float64 = 120
	MinHeight     float64 = 90
)

type Note struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Content string  `json:"content"`
	ZIndex  int     `json:"zIndex"`
}

// Geometry is the position and size of a note in board space.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Point struct {
	X, Y float64
}

func (n Note) Geometry() Geometry {
	return Geometry{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Center returns the middle of the note in board space.
func (n Note) Center() Point {
	return Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}

// Placement describes where the "New note" control drops notes.
type Placement struct {
	DefaultWidth  float64
	DefaultHeight float64
	InitialX      float64
	InitialY      float64
	StackOffset   float64
}

func DefaultPlacement() Placement {
	return Placement{
		DefaultWidth:  DefaultWidth,
		DefaultHeight: DefaultHeight,
		InitialX:      InitialX,
		InitialY:      InitialY,
		StackOffset:   StackOffset,
	}
}

// Next returns the geometry for a new note, stacked diagonally from the
// previous ones.
func (p Placement) Next(notes []Note) Geometry {
	offset := float64(len(notes)) * p.StackOffset
	return Geometry{
		X:      p.InitialX + offset,
		Y:      p.InitialY + offset,
		Width:  p.DefaultWidth,
		Height: p.DefaultHeight,
	}
}

func findNote(notes []Note, id string) (int, bool) {
	for i, n := range notes {
		if n.ID == id {
			return i, true
		}
	}
	return -1, false
}

func maxZIndex(notes []Note) int {
	top := 0
	for _, n := range notes {
		if n.ZIndex > top {
			top = n.ZIndex
		}
	}
	return top
}

// Find returns the note with the given id.
func Find(notes []Note, id string) (Note, bool) {
	if i, ok := findNote(notes, id); ok {
		return notes[i], true
	}
	return Note{}, false
}
