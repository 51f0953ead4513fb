package main

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"stickies/internal/board"
	"stickies/internal/interaction"
)

func newModel(b *board.Board, cfg *Config, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	layout := &screenLayout{width: 80, height: 24}

	editor := textarea.New()
	editor.Placeholder = "Write…"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetHeight(editorHeight)
	editor.SetWidth(layout.width)

	return model{
		layout:     layout,
		mode:       ModeNormal,
		board:      b,
		controller: interaction.NewController(b, layout),
		placement:  cfg.Placement(),
		config:     cfg,
		logger:     logger,
		keys:       defaultKeyMap(),
		editor:     editor,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) notes() []board.Note {
	return m.board.State().Notes
}

func (m *model) focusedNote() (board.Note, bool) {
	if m.focusedID == "" {
		return board.Note{}, false
	}
	return board.Find(m.notes(), m.focusedID)
}

func (m *model) addNote() {
	m.board.Dispatch(board.AddNote{Geometry: m.placement.Next(m.notes())})
	notes := m.notes()
	m.focusedID = notes[len(notes)-1].ID
	m.successMessage = "Added note"
}

func (m *model) deleteNote(id string) {
	m.board.Dispatch(board.DeleteNote{NoteID: id})
	if !m.controller.Active() {
		m.controller.Release()
	}
	m.successMessage = "Deleted note"
	m.syncFocus()
}

func (m *model) startEditing(id string) tea.Cmd {
	note, ok := board.Find(m.notes(), id)
	if !ok {
		return nil
	}
	m.focusedID = id
	m.mode = ModeEditing
	m.layout.editing = true
	m.editor.SetValue(note.Content)
	return m.editor.Focus()
}

func (m *model) stopEditing() {
	m.editor.Blur()
	m.layout.editing = false
	if m.mode == ModeEditing {
		m.mode = ModeNormal
	}
}

// syncFocus drops focus and editing when the focused note is gone.
func (m *model) syncFocus() {
	if m.focusedID == "" {
		return
	}
	if _, ok := board.Find(m.notes(), m.focusedID); ok {
		return
	}
	m.focusedID = ""
	m.stopEditing()
}

// cycleFocus moves focus through the notes in stacking order.
func (m *model) cycleFocus(step int) {
	ordered := paintOrder(m.notes())
	if len(ordered) == 0 {
		m.focusedID = ""
		return
	}
	idx := -1
	for i, n := range ordered {
		if n.ID == m.focusedID {
			idx = i
			break
		}
	}
	if idx == -1 {
		if step > 0 {
			idx = len(ordered) - 1
		} else {
			idx = 0
		}
	} else {
		idx = (idx + step + len(ordered)) % len(ordered)
	}
	m.focusedID = ordered[idx].ID
}

// hitTest reports what lies under the screen cell (col, row). Notes are
// checked topmost first.
func (m *model) hitTest(col, row int) hit {
	if row < m.layout.boardTop() {
		if row == 0 && col >= 1 && col < 1+len(newNoteLabel) {
			return hit{kind: hitNewNote}
		}
		return hit{}
	}
	if row >= m.layout.boardTop()+m.layout.boardRows() {
		return hit{}
	}

	boardRow := row - m.layout.boardTop()
	ordered := paintOrder(m.notes())
	for i := len(ordered) - 1; i >= 0; i-- {
		n := ordered[i]
		r := cellRect(n)
		if !r.contains(col, boardRow) {
			continue
		}
		right := r.col + r.cols - 1
		bottom := r.row + r.rows - 1
		switch {
		case boardRow == bottom && col == right:
			return hit{kind: hitResize, noteID: n.ID}
		case boardRow == r.row && col >= right-len(deleteLabel) && col < right:
			return hit{kind: hitDelete, noteID: n.ID}
		case boardRow == r.row:
			return hit{kind: hitHeader, noteID: n.ID}
		default:
			return hit{kind: hitBody, noteID: n.ID}
		}
	}

	tc, tr := m.layout.trashCell()
	if col >= tc && col < tc+trashWidth && row >= tr && row < tr+trashHeight {
		return hit{kind: hitTrash}
	}
	return hit{}
}
