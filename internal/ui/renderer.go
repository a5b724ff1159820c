package ui

import "github.com/gdamore/tcell/v2"

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing console rows to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws rows from the top of the screen and places the cursor.
func (r *Renderer) Render(rows []string, cursorX, cursorY int) {
	r.screen.Clear()
	for y, row := range rows {
		r.RenderMessage(row, y)
	}
	r.screen.ShowCursor(cursorX, cursorY)
	r.screen.Show()
}

// RenderMessage draws a single row at y.
func (r *Renderer) RenderMessage(msg string, y int) {
	mapRow := isMapRow(msg)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, runeStyle(ch, mapRow))
		x++
	}
}

func runeStyle(ch rune, mapRow bool) tcell.Style {
	switch {
	case ch == '→':
		return promptStyle
	case mapRow && ch == 'M':
		return playerStyle
	default:
		return textStyle
	}
}

// isMapRow reports whether a row looks like a rendered map row: only map
// glyphs, optionally followed by a legend after " | ".
func isMapRow(row string) bool {
	grid := row
	for i := 0; i+3 <= len(row); i++ {
		if row[i:i+3] == " | " {
			grid = row[:i]
			break
		}
	}
	if len(grid) == 0 {
		return false
	}
	for _, ch := range grid {
		switch ch {
		case ' ', '.', '?', '#', 'X', 'M':
		default:
			return false
		}
	}
	return true
}
