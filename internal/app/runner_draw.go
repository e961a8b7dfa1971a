package app

import "fmt"

// Clear blanks the screen using the theme's text style.
func (r *Runner) Clear() {
	r.Screen.SetStyle(r.Theme.TextStyle())
	r.Screen.Clear()
}

// DrawText writes text starting at (row, col), one rune per cell.
func (r *Runner) DrawText(row, col int, text string) {
	style := r.Theme.TextStyle()
	for i, ch := range []rune(text) {
		r.Screen.SetContent(col+i, row, ch, nil, style)
	}
}

// MoveCursor places the terminal cursor at (row, col).
func (r *Runner) MoveCursor(row, col int) {
	r.Screen.ShowCursor(col, row)
}

// Show draws the status line and flushes the frame.
func (r *Runner) Show() {
	r.drawStatus()
	r.Screen.Show()
}

// drawStatus fills the bottom screen row, below the editor window.
func (r *Runner) drawStatus() {
	width, height := r.Screen.Size()
	if height < 1 {
		return
	}
	style := r.Theme.StatusStyle()
	text := r.statusText()
	if r.status != "" {
		style = r.Theme.ErrorStyle()
	}
	runes := []rune(text)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.Screen.SetContent(x, height-1, ch, nil, style)
	}
}

func (r *Runner) statusText() string {
	if r.status != "" {
		return r.status
	}
	if r.Editor == nil {
		return "q to quit"
	}
	return fmt.Sprintf("%s  %d lines  q to quit", r.Editor.Cursor(), r.Buf.LineCount())
}
