package editor

import (
	"errors"
	"fmt"

	"example.com/cursornav/pkg/buffer"
)

// ErrInvalidArgument reports negative dimensions or an out-of-bounds
// cursor placement.
var ErrInvalidArgument = errors.New("editor: invalid argument")

// KeySource blocks until one key symbol is available.
type KeySource interface {
	ReadKey() (Key, error)
}

// Screen is the draw sink the Editor renders into.
type Screen interface {
	Clear()
	DrawText(row, col int, text string)
	MoveCursor(row, col int)
	Show()
}

// Editor moves a cursor over a read-only Buffer seen through a Window.
//
// Between calls the cursor satisfies
//
//	0 <= row < min(rows, lineCount)
//	0 <= col < min(cols, lineLength(row))
//
// except that a zero-sized window or an empty line pins the affected
// coordinate at 0.
type Editor struct {
	win     Window
	buf     *buffer.Buffer
	cur     Cursor
	running bool
}

// New returns a running Editor with the cursor at the origin.
func New(win Window, buf *buffer.Buffer) *Editor {
	return &Editor{win: win, buf: buf, running: true}
}

// Window returns the viewport geometry.
func (e *Editor) Window() Window { return e.win }

// Buffer returns the document.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Cursor returns a copy of the cursor position.
func (e *Editor) Cursor() Cursor { return e.cur }

// Running reports whether quit has not yet been dispatched.
func (e *Editor) Running() bool { return e.running }

// Place moves the cursor to (row, col) if that position is reachable.
func (e *Editor) Place(row, col int) error {
	if row < 0 || row > e.maxRow() {
		return fmt.Errorf("%w: row %d outside [0, %d]", ErrInvalidArgument, row, e.maxRow())
	}
	if col < 0 || col > e.maxCol(row) {
		return fmt.Errorf("%w: col %d outside [0, %d]", ErrInvalidArgument, col, e.maxCol(row))
	}
	e.cur = Cursor{Row: row, Col: col}
	return nil
}

// Dispatch applies the handler bound to k. Unbound symbols do nothing.
func (e *Editor) Dispatch(k Key) {
	switch k {
	case KeyQuit:
		e.Quit()
	case KeyUp:
		e.Up()
	case KeyDown:
		e.Down()
	case KeyLeft:
		e.Left()
	case KeyRight:
		e.Right()
	case KeyNone:
	}
}

// Quit stops the interaction loop. It cannot be undone.
func (e *Editor) Quit() {
	e.running = false
}

// Left moves one column left unless already at column 0.
func (e *Editor) Left() {
	if e.cur.Col > 0 {
		e.cur.Col--
	}
}

// Right moves one column right, bounded by the narrower of the window and
// the current line.
func (e *Editor) Right() {
	if e.cur.Col+1 <= min(e.win.ncol-1, e.lineLength(e.cur.Row)-1) {
		e.cur.Col++
	}
}

// Up moves one row up and pulls the column back onto the new line.
func (e *Editor) Up() {
	if e.cur.Row > 0 {
		e.cur.Row--
	}
	e.clampCol()
}

// Down moves one row down, bounded by the window and the document, and
// pulls the column back onto the new line.
func (e *Editor) Down() {
	if e.cur.Row+1 <= e.maxRow() {
		e.cur.Row++
	}
	e.clampCol()
}

// clampCol runs after every vertical move, whether or not the row changed.
func (e *Editor) clampCol() {
	e.cur.Col = max(0, min(e.cur.Col, e.lineLength(e.cur.Row)-1))
}

func (e *Editor) maxRow() int {
	return max(0, min(e.win.nrow-1, e.buf.LineCount()-1))
}

func (e *Editor) maxCol(row int) int {
	return max(0, min(e.win.ncol-1, e.lineLength(row)-1))
}

// lineLength panics on a bad row: the movement rules never produce one.
func (e *Editor) line(row int) string {
	s, err := e.buf.Line(row)
	if err != nil {
		panic(fmt.Sprintf("editor: row outside the document: %v", err))
	}
	return s
}

func (e *Editor) lineLength(row int) int {
	n, err := e.buf.LineLength(row)
	if err != nil {
		panic(fmt.Sprintf("editor: cursor escaped the document: %v", err))
	}
	return n
}

// Run renders and dispatches keys until quit. A read failure ends the
// session and is returned.
func (e *Editor) Run(keys KeySource, scr Screen) error {
	for e.running {
		e.Render(scr)
		k, err := keys.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		e.Dispatch(k)
	}
	return nil
}
