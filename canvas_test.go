package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickies/internal/board"
)

func TestCellRect(t *testing.T) {
	cases := []struct {
		name string
		note board.Note
		want noteRect
	}{
		{"default note", board.Note{X: 40, Y: 40, Width: 200, Height: 160}, noteRect{col: 5, row: 2, cols: 25, rows: 10}},
		{"negative position floors", board.Note{X: -4, Y: -20, Width: 120, Height: 90}, noteRect{col: -1, row: -2, cols: 15, rows: 5}},
		{"tiny note keeps its chrome", board.Note{Width: 8, Height: 8}, noteRect{cols: minNoteCols, rows: minNoteRows}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cellRect(tc.note))
		})
	}
}

func TestDrawNote(t *testing.T) {
	c := NewCanvas(30, 12)
	c.DrawNote(board.Note{ID: "a", Width: 200, Height: 160, Content: "hello world"}, false)

	lines := c.Lines(false)
	require.Len(t, lines, 12)
	assert.Equal(t, "┌"+strings.Repeat("─", 20)+"[x]┐", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "│hello world"))
	assert.Equal(t, '◢', []rune(lines[9])[24])
	assert.Equal(t, '└', []rune(lines[9])[0])
}

func TestDrawNoteFocusedBorder(t *testing.T) {
	c := NewCanvas(30, 12)
	c.DrawNote(board.Note{Width: 200, Height: 160}, true)

	assert.Equal(t, '╔', []rune(c.Lines(false)[0])[0])
}

func TestRenderBoardPaintsHigherZOnTop(t *testing.T) {
	notes := []board.Note{
		{ID: "top", X: 16, Y: 16, Width: 120, Height: 90, Content: "top", ZIndex: 5},
		{ID: "bottom", X: 0, Y: 0, Width: 120, Height: 90, Content: "bottom", ZIndex: 1},
	}

	lines := renderBoard(notes, 40, 10, "").Lines(false)

	assert.Equal(t, '┌', []rune(lines[1])[2])
	assert.Equal(t, "│top", string([]rune(lines[2])[2:6]))
}

func TestWrapContent(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, wrapContent("hello world", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrapContent("abcdefgh", 5))
	assert.Nil(t, wrapContent("x", 0))
}

func TestDrawTrash(t *testing.T) {
	c := NewCanvas(trashWidth, trashHeight)
	c.DrawTrash(0, 0, true)

	lines := c.Lines(false)
	assert.Equal(t, "┆ Trash  ┆", lines[1])
	assert.Equal(t, styleTrashHot, c.styles[1][3])
}

func TestExportVisualTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	notes := []board.Note{{ID: "a", Width: 200, Height: 160, Content: "groceries"}}

	require.NoError(t, exportVisualTXT(notes, path, 40, 12))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "┌"+strings.Repeat("─", 20)+"[x]┐", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "│groceries"), lines[1])
	assert.Empty(t, lines[11])
}

func TestExportToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	notes := []board.Note{
		{ID: "a", X: 40, Y: 40, Width: 200, Height: 160, Content: "one", ZIndex: 1},
		{ID: "b", X: 60, Y: 60, Width: 200, Height: 160, Content: "two", ZIndex: 2},
	}

	require.NoError(t, ExportToPNG(notes, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 252, img.Bounds().Dx())
	assert.Equal(t, 212, img.Bounds().Dy())
}

func TestExportToPNGEmptyBoard(t *testing.T) {
	err := ExportToPNG(nil, filepath.Join(t.TempDir(), "empty.png"))

	assert.Error(t, err)
}
