package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stickies/internal/board"
	"stickies/internal/interaction"
)

// startKeyboardGesture drives the same pointer gesture a mouse would, with a
// virtual pointer parked on the grabbed handle: the top-left corner for a
// move, the bottom-right corner for a resize.
func (m *model) startKeyboardGesture(note board.Note, h interaction.Handle) {
	m.stopEditing()
	origin := m.layout.BoardOrigin()
	m.kbPointer = board.Point{X: origin.X + note.X, Y: origin.Y + note.Y}
	mode := ModeMove
	if h == interaction.HandleResize {
		m.kbPointer.X += note.Width
		m.kbPointer.Y += note.Height
		mode = ModeResize
	}
	if m.controller.PointerDown(note.ID, h, m.kbPointer) {
		m.mode = mode
	}
}

func (m *model) handleGestureKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.controller.PointerUp(m.kbPointer) {
			m.successMessage = "Deleted note"
		}
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Cancel):
		m.controller.Cancel()
		m.mode = ModeNormal
	default:
		m.handlePointerMove(msg)
	}
}

// handlePointerMove steps the virtual pointer one cell (two with shift).
func (m *model) handlePointerMove(msg tea.KeyMsg) {
	speed := float64(m.getMoveSpeed(msg.String()))
	switch {
	case key.Matches(msg, m.keys.Left):
		m.kbPointer.X -= speed * cellWidth
	case key.Matches(msg, m.keys.Right):
		m.kbPointer.X += speed * cellWidth
	case key.Matches(msg, m.keys.Up):
		m.kbPointer.Y -= speed * cellHeight
	case key.Matches(msg, m.keys.Down):
		m.kbPointer.Y += speed * cellHeight
	default:
		return
	}
	m.controller.PointerMove(m.kbPointer)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
