package main

import (
	"math"
	"os/exec"
	"runtime"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"stickies/internal/board"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText drops control characters and normalizes line endings.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\t", "    ")
}

// cellRect maps a note's board geometry onto board-area cells.
func cellRect(n board.Note) noteRect {
	r := noteRect{
		col:  int(math.Floor(n.X / cellWidth)),
		row:  int(math.Floor(n.Y / cellHeight)),
		cols: int(n.Width / cellWidth),
		rows: int(n.Height / cellHeight),
	}
	if r.cols < minNoteCols {
		r.cols = minNoteCols
	}
	if r.rows < minNoteRows {
		r.rows = minNoteRows
	}
	return r
}

// paintOrder returns the notes sorted bottom to top.
func paintOrder(notes []board.Note) []board.Note {
	ordered := make([]board.Note, len(notes))
	copy(ordered, notes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})
	return ordered
}
