package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeMove
	ModeResize
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteNote ConfirmAction = iota
	ConfirmOverwriteFile
)

// Board pixels per terminal cell.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Screen layout, in cells.
const (
	toolbarHeight = 1
	statusHeight  = 1
	editorHeight  = 3
	trashWidth    = 10
	trashHeight   = 3
	trashMargin   = 1
)

// Smallest note that still has room for its border, delete button and
// resize handle.
const (
	minNoteCols = 8
	minNoteRows = 3
)

const newNoteLabel = "[ New note ]"

const deleteLabel = "[x]"

type hitKind int

const (
	hitNone hitKind = iota
	hitNewNote
	hitHeader
	hitDelete
	hitResize
	hitBody
	hitTrash
)
