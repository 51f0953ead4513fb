package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"stickies/internal/board"
	"stickies/internal/interaction"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.width = msg.Width
		m.layout.height = msg.Height
		m.editor.SetWidth(msg.Width)
		return m, nil

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg), nil
		}
		switch m.mode {
		case ModeEditing:
			cmd = m.handleEditingKey(msg)
		case ModeMove, ModeResize:
			m.handleGestureKey(msg)
		case ModeFileInput:
			m.handleFileInputKey(msg)
		case ModeConfirm:
			m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}

	default:
		if m.mode == ModeEditing {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	m.syncFocus()
	return m, cmd
}

// handleMouse routes pointer events. While a gesture is active every motion
// and release belongs to it, wherever the pointer is.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode == ModeMove || m.mode == ModeResize {
		return nil
	}
	p := screenPoint(msg.X, msg.Y)

	if m.controller.Active() {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.controller.PointerMove(p)
		case tea.MouseActionRelease:
			if m.controller.PointerUp(p) {
				m.successMessage = "Deleted note"
				m.logger.Debug("note dropped in trash")
			}
		}
		return nil
	}

	if m.armed != nil {
		if msg.Action != tea.MouseActionRelease {
			return nil
		}
		armed := *m.armed
		m.armed = nil
		if h := m.hitTest(msg.X, msg.Y); h == armed {
			m.deleteNote(armed.noteID)
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	m.errorMessage = ""
	m.successMessage = ""

	h := m.hitTest(msg.X, msg.Y)
	switch h.kind {
	case hitNewNote:
		m.stopEditing()
		m.addNote()
	case hitDelete:
		m.armed = &h
	case hitHeader, hitResize:
		handle := interaction.HandleHeader
		if h.kind == hitResize {
			handle = interaction.HandleResize
		}
		if h.noteID != m.focusedID {
			m.stopEditing()
		}
		m.focusedID = h.noteID
		m.controller.PointerDown(h.noteID, handle, p)
	case hitBody:
		if m.mode == ModeEditing && h.noteID == m.focusedID {
			return nil
		}
		return m.startEditing(h.noteID)
	default:
		m.stopEditing()
		m.focusedID = ""
	}
	return nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help = true
		m.helpScroll = 0
	case key.Matches(msg, m.keys.Cancel):
		m.focusedID = ""
	case key.Matches(msg, m.keys.New):
		m.addNote()
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Export):
		m.mode = ModeFileInput
		m.filename = ""
	}

	note, ok := m.focusedNote()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEditing(note.ID)
	case key.Matches(msg, m.keys.Move):
		m.startKeyboardGesture(note, interaction.HandleHeader)
	case key.Matches(msg, m.keys.Resize):
		m.startKeyboardGesture(note, interaction.HandleResize)
	case key.Matches(msg, m.keys.Delete):
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteNote
			m.confirmNoteID = note.ID
		} else {
			m.deleteNote(note.ID)
		}
	case key.Matches(msg, m.keys.Copy):
		if err := writeClipboardText(note.Content); err != nil {
			m.errorMessage = "clipboard unavailable"
			m.logger.Warn("copy note", zap.Error(err))
		} else {
			m.successMessage = "Copied note text"
		}
	case key.Matches(msg, m.keys.Paste):
		m.pasteInto(note)
	}
	return m, nil
}

func (m *model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel) {
		m.stopEditing()
		return nil
	}
	note, ok := m.focusedNote()
	if !ok {
		m.stopEditing()
		return nil
	}
	if msg.Type == tea.KeyCtrlV {
		m.pasteInto(note)
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != note.Content {
		m.board.Dispatch(board.UpdateContent{NoteID: note.ID, Content: value})
	}
	return cmd
}

// pasteInto appends clipboard text to the note, or inserts it at the cursor
// while editing.
func (m *model) pasteInto(note board.Note) {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "clipboard unavailable"
		m.logger.Warn("paste note", zap.Error(err))
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		return
	}
	content := note.Content + text
	if m.mode == ModeEditing {
		m.editor.InsertString(text)
		content = m.editor.Value()
	}
	m.board.Dispatch(board.UpdateContent{NoteID: note.ID, Content: content})
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) {
	confirmed := key.Matches(msg, m.keys.ConfirmOK)
	m.mode = ModeNormal
	switch m.confirmAction {
	case ConfirmDeleteNote:
		if confirmed {
			m.deleteNote(m.confirmNoteID)
		}
		m.confirmNoteID = ""
	case ConfirmOverwriteFile:
		if confirmed {
			m.export(m.filename)
		}
	}
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "filename cannot be empty"
			return
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".png" && ext != ".txt" {
			name += ".png"
		}
		m.filename = name
		if _, err := os.Stat(name); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return
		}
		m.mode = ModeNormal
		m.export(name)
	case tea.KeyBackspace:
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
}

// export writes the board to name, choosing the format by extension.
func (m *model) export(name string) {
	var err error
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		err = exportVisualTXT(m.notes(), name, m.layout.boardCols(), m.layout.boardRows())
	} else {
		err = ExportToPNG(m.notes(), name)
	}
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Warn("export board", zap.String("file", name), zap.Error(err))
		if errors.Is(err, os.ErrPermission) {
			m.errorMessage = "permission denied: " + name
		}
		return
	}
	m.successMessage = "Exported " + name
}

func (m model) handleHelpKey(msg tea.KeyMsg) tea.Model {
	switch {
	case key.Matches(msg, m.keys.ScrollDn):
		if m.helpScroll < m.maxHelpScroll() {
			m.helpScroll++
		}
	case key.Matches(msg, m.keys.ScrollUp):
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m
}
