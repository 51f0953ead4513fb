package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"stickies/internal/board"
)

type cellStyle int

const (
	stylePlain cellStyle = iota
	styleNote
	styleFocused
	styleButton
	styleHandle
	styleTrash
	styleTrashHot
)

var cellStyles = map[cellStyle]lipgloss.Style{
	styleNote:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	styleFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	styleButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	styleHandle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	styleTrash:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	styleTrashHot: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
}

type borderRunes struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical rune
}

var (
	plainBorder   = borderRunes{'┌', '┐', '└', '┘', '─', '│'}
	focusedBorder = borderRunes{'╔', '╗', '╚', '╝', '═', '║'}
)

const resizeRune = '◢'

// Canvas is a rune grid with a style per cell.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
	styles [][]cellStyle
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
		styles: make([][]cellStyle, height),
	}
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
		c.styles[y] = make([]cellStyle, width)
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
	return c
}

func (c *Canvas) set(x, y int, r rune, s cellStyle) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = r
	c.styles[y][x] = s
}

func (c *Canvas) drawString(x, y int, text string, s cellStyle) {
	for i, r := range []rune(text) {
		c.set(x+i, y, r, s)
	}
}

// DrawNote paints a note as an opaque bordered box: the top border is the
// drag handle and carries the delete button, the bottom-right corner is the
// resize handle.
func (c *Canvas) DrawNote(n board.Note, focused bool) {
	r := cellRect(n)
	border, style := plainBorder, styleNote
	if focused {
		border, style = focusedBorder, styleFocused
	}
	right := r.col + r.cols - 1
	bottom := r.row + r.rows - 1

	for y := r.row; y <= bottom; y++ {
		for x := r.col; x <= right; x++ {
			var ch rune
			switch {
			case y == r.row && x == r.col:
				ch = border.topLeft
			case y == r.row && x == right:
				ch = border.topRight
			case y == bottom && x == r.col:
				ch = border.bottomLeft
			case y == bottom && x == right:
				ch = border.bottomRight
			case y == r.row || y == bottom:
				ch = border.horizontal
			case x == r.col || x == right:
				ch = border.vertical
			default:
				ch = ' '
			}
			c.set(x, y, ch, style)
		}
	}

	c.drawString(r.col+r.cols-1-len(deleteLabel), r.row, deleteLabel, styleButton)
	c.set(right, bottom, resizeRune, styleHandle)

	inner := r.cols - 2
	for i, line := range wrapContent(n.Content, inner) {
		if i >= r.rows-2 {
			break
		}
		runes := []rune(line)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		c.drawString(r.col+1, r.row+1+i, string(runes), stylePlain)
	}
}

// DrawTrash paints the trash target with its top-left cell at (x, y).
func (c *Canvas) DrawTrash(x, y int, hot bool) {
	style := styleTrash
	if hot {
		style = styleTrashHot
	}
	for row := 0; row < trashHeight; row++ {
		for col := 0; col < trashWidth; col++ {
			ch := ' '
			switch {
			case row == 0 && col == 0:
				ch = '┌'
			case row == 0 && col == trashWidth-1:
				ch = '┐'
			case row == trashHeight-1 && col == 0:
				ch = '└'
			case row == trashHeight-1 && col == trashWidth-1:
				ch = '┘'
			case row == 0 || row == trashHeight-1:
				ch = '┄'
			case col == 0 || col == trashWidth-1:
				ch = '┆'
			}
			c.set(x+col, y+row, ch, style)
		}
	}
	label := "Trash"
	c.drawString(x+(trashWidth-len(label))/2, y+trashHeight/2, label, style)
}

// Lines returns the grid as strings, styled with lipgloss when styled is
// set.
func (c *Canvas) Lines(styled bool) []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		if !styled {
			lines[y] = string(row)
			continue
		}
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			run := string(row[start:x])
			if s, ok := cellStyles[c.styles[y][start]]; ok {
				run = s.Render(run)
			}
			line.WriteString(run)
			start = x
		}
		lines[y] = line.String()
	}
	return lines
}

func wrapContent(content string, width int) []string {
	if width < 1 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(content, width), width)
	return strings.Split(wrapped, "\n")
}

// renderBoard draws notes bottom to top onto a board-area canvas.
func renderBoard(notes []board.Note, width, height int, focusedID string) *Canvas {
	c := NewCanvas(width, height)
	for _, n := range paintOrder(notes) {
		c.DrawNote(n, n.ID == focusedID)
	}
	return c
}

var (
	noteFill   = color.RGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff}
	noteBorder = color.RGBA{R: 0xb8, G: 0x9b, B: 0x00, A: 0xff}
)

// ExportToPNG draws the notes in board pixels, cropped to their bounds.
func ExportToPNG(notes []board.Note, filename string) error {
	if len(notes) == 0 {
		return fmt.Errorf("nothing to export")
	}

	minX, minY := notes[0].X, notes[0].Y
	maxX, maxY := notes[0].X+notes[0].Width, notes[0].Y+notes[0].Height
	for _, n := range notes[1:] {
		minX = min(minX, n.X)
		minY = min(minY, n.Y)
		maxX = max(maxX, n.X+n.Width)
		maxY = max(maxY, n.Y+n.Height)
	}

	padding := 16.0
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	dc := gg.NewContext(int(maxX-minX), int(maxY-minY))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, n := range paintOrder(notes) {
		drawNotePNG(dc, n, minX, minY)
	}

	return dc.SavePNG(filename)
}

func drawNotePNG(dc *gg.Context, n board.Note, minX, minY float64) {
	x := n.X - minX
	y := n.Y - minY

	dc.SetColor(noteFill)
	dc.DrawRectangle(x, y, n.Width, n.Height)
	dc.Fill()

	dc.SetLineWidth(1.0)
	dc.SetColor(noteBorder)
	dc.DrawRectangle(x, y, n.Width, n.Height)
	dc.Stroke()
	dc.DrawLine(x, y+cellHeight, x+n.Width, y+cellHeight)
	dc.Stroke()

	dc.Push()
	dc.DrawRectangle(x, y+cellHeight, n.Width, n.Height-cellHeight)
	dc.Clip()
	dc.SetColor(color.Black)
	lines := dc.WordWrap(n.Content, n.Width-2*cellWidth)
	for i, line := range lines {
		dc.DrawString(line, x+cellWidth, y+2*cellHeight+float64(i)*cellHeight)
	}
	dc.Pop()
}
