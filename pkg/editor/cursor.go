package editor

import "fmt"

// Cursor is a (row, col) position. It does not check bounds; the Editor
// keeps it inside the window and the document.
type Cursor struct {
	Row int
	Col int
}

// NewCursor returns a Cursor at (row, col).
func NewCursor(row, col int) (Cursor, error) {
	if row < 0 || col < 0 {
		return Cursor{}, fmt.Errorf("%w: cursor (%d, %d)", ErrInvalidArgument, row, col)
	}
	return Cursor{Row: row, Col: col}, nil
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
