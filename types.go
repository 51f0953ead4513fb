package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"go.uber.org/zap"

	"stickies/internal/board"
	"stickies/internal/interaction"
)

type model struct {
	layout         *screenLayout
	mode           Mode
	help           bool
	helpScroll     int
	board          *board.Board
	controller     *interaction.Controller
	placement      board.Placement
	config         *Config
	logger         *zap.Logger
	keys           keyMap
	editor         textarea.Model
	focusedID      string
	armed          *hit
	kbPointer      board.Point
	filename       string
	confirmAction  ConfirmAction
	confirmNoteID  string
	errorMessage   string
	successMessage string
}

// hit is what lies under a terminal cell.
type hit struct {
	kind   hitKind
	noteID string
}

// noteRect is a note's footprint in board-area cells.
type noteRect struct {
	col, row   int
	cols, rows int
}

func (r noteRect) contains(col, row int) bool {
	return col >= r.col && col < r.col+r.cols && row >= r.row && row < r.row+r.rows
}

type keyMap struct {
	New       key.Binding
	Next      key.Binding
	Prev      key.Binding
	Edit      key.Binding
	Move      key.Binding
	Resize    key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Paste     key.Binding
	Export    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	ConfirmOK key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus next note")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus previous note")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit focused note")),
		Move:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move focused note")),
		Resize:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resize focused note")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete focused note")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy note text")),
		Paste:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste into note")),
		Export:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "export board (.png or .txt)")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Left:      key.NewBinding(key.WithKeys("h", "left", "H", "shift+left")),
		Right:     key.NewBinding(key.WithKeys("l", "right", "L", "shift+right")),
		Up:        key.NewBinding(key.WithKeys("k", "up", "K", "shift+up")),
		Down:      key.NewBinding(key.WithKeys("j", "down", "J", "shift+down")),
		ScrollUp:  key.NewBinding(key.WithKeys("k", "up")),
		ScrollDn:  key.NewBinding(key.WithKeys("j", "down")),
		ConfirmOK: key.NewBinding(key.WithKeys("y", "Y")),
	}
}

// screenLayout tracks the terminal size and reports where the board and the
// trash target sit, in cells and in screen pixels.
type screenLayout struct {
	width   int
	height  int
	editing bool
}

func (l *screenLayout) boardTop() int {
	return toolbarHeight
}

func (l *screenLayout) boardRows() int {
	rows := l.height - toolbarHeight - statusHeight
	if l.editing {
		rows -= editorHeight + 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *screenLayout) boardCols() int {
	if l.width < 1 {
		return 1
	}
	return l.width
}

// trashCell returns the trash target's top-left cell in screen coordinates.
func (l *screenLayout) trashCell() (int, int) {
	col := l.boardCols() - trashWidth - trashMargin
	row := l.boardTop() + l.boardRows() - trashHeight - trashMargin
	if col < 0 {
		col = 0
	}
	if row < l.boardTop() {
		row = l.boardTop()
	}
	return col, row
}

func (l *screenLayout) BoardOrigin() board.Point {
	return board.Point{X: 0, Y: float64(l.boardTop() * cellHeight)}
}

func (l *screenLayout) TrashRect() interaction.Rect {
	col, row := l.trashCell()
	return interaction.Rect{
		Left:   float64(col * cellWidth),
		Top:    float64(row * cellHeight),
		Right:  float64((col + trashWidth) * cellWidth),
		Bottom: float64((row + trashHeight) * cellHeight),
	}
}

// screenPoint converts a terminal cell to screen pixels.
func screenPoint(col, row int) board.Point {
	return board.Point{X: float64(col * cellWidth), Y: float64(row * cellHeight)}
}
