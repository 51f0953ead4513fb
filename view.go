package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolbarStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.toolbarView())

	canvas := renderBoard(m.notes(), m.layout.boardCols(), m.layout.boardRows(), m.focusedID)
	trashCol, trashRow := m.layout.trashCell()
	canvas.DrawTrash(trashCol, trashRow-m.layout.boardTop(), m.controller.OverTrash())
	for _, line := range canvas.Lines(true) {
		result.WriteString("\n")
		result.WriteString(line)
	}

	if m.mode == ModeEditing {
		result.WriteString("\n")
		result.WriteString(dimStyle.Render(strings.Repeat("─", m.layout.boardCols())))
		result.WriteString("\n")
		result.WriteString(m.editor.View())
	}

	result.WriteString("\n")
	result.WriteString(m.statusView())
	return result.String()
}

func (m model) toolbarView() string {
	count := len(m.notes())
	noun := "notes"
	if count == 1 {
		noun = "note"
	}
	return " " + buttonStyle.Render(newNoteLabel) + "  " + toolbarStyle.Render(fmt.Sprintf("%d %s", count, noun))
}

func (m model) statusView() string {
	var status string
	switch m.mode {
	case ModeEditing:
		status = "Mode: EDIT | type to change the note | Esc=done"
	case ModeMove:
		status = "Mode: MOVE | hjkl/arrows=move, Enter=finish, Esc=cancel"
	case ModeResize:
		status = "Mode: RESIZE | hjkl/arrows=resize, Enter=finish, Esc=cancel"
	case ModeFileInput:
		status = fmt.Sprintf("Mode: FILE | Export filename (.png or .txt): %s█ | Enter=confirm, Esc=cancel", m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteNote:
			message = "Delete this note? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		status = "Mode: CONFIRM | " + message
	default:
		status = "Mode: " + m.modeString()
		if note, ok := m.focusedNote(); ok {
			status += fmt.Sprintf(" | Note at (%.0f,%.0f) %.0fx%.0f", note.X, note.Y, note.Width, note.Height)
		}
		if m.errorMessage == "" && m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
	}
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeMove:
		return "MOVE"
	case ModeResize:
		return "RESIZE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"Stickies Help",
	"=============",
	"",
	"Mouse:",
	"------",
	"  [ New note ]     Add a note below the previous one",
	"  drag header      Move a note; drop its center on the Trash to delete it",
	"  drag ◢           Resize a note",
	"  click [x]        Delete a note",
	"  click body       Edit the note text",
	"  click empty      Clear focus",
	"",
	"Notes:",
	"------",
	"  n                New note",
	"  Tab/Shift+Tab    Focus next/previous note",
	"  Enter/e          Edit focused note",
	"  m                Move focused note",
	"  r                Resize focused note",
	"  d                Delete focused note",
	"  y                Copy note text to the clipboard",
	"  p                Paste clipboard text into the note",
	"",
	"Move/Resize Mode:",
	"-----------------",
	"  h/←/j/↓/k/↑/l/→  Move the grabbed handle one cell",
	"  Shift+h/j/k/l    Move 2x faster",
	"  Enter            Finish (a move ending over the Trash deletes the note)",
	"  Esc              Cancel and restore the note",
	"",
	"Editing:",
	"--------",
	"  Ctrl+V           Paste at the cursor",
	"  Esc              Stop editing",
	"",
	"General:",
	"--------",
	"  s                Export the board (.png or .txt)",
	"  Esc              Clear focus",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
	"",
	"Notes are saved automatically after every change.",
}

func (m model) helpVisibleHeight() int {
	visibleHeight := m.layout.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	return visibleHeight
}

func (m model) maxHelpScroll() int {
	if n := len(helpLines) - m.helpVisibleHeight(); n > 0 {
		return n
	}
	return 0
}

func (m model) helpView() string {
	visibleHeight := m.helpVisibleHeight()
	startLine := min(m.helpScroll, m.maxHelpScroll())
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
