package editor

// Render draws the visible lines, each truncated to the window width, and
// places the terminal cursor. Lines are never wrapped.
func (e *Editor) Render(scr Screen) {
	scr.Clear()
	rows := min(e.win.nrow, e.buf.LineCount())
	for i := 0; i < rows; i++ {
		scr.DrawText(i, 0, truncate(e.line(i), e.win.ncol))
	}
	scr.MoveCursor(e.cur.Row, e.cur.Col)
	scr.Show()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
