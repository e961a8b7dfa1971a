package editor

import "fmt"

// Window is the fixed-size visible region of the document.
type Window struct {
	nrow, ncol int
}

// NewWindow returns a Window of nrow rows by ncol columns.
func NewWindow(nrow, ncol int) (Window, error) {
	if nrow < 0 || ncol < 0 {
		return Window{}, fmt.Errorf("%w: window %dx%d", ErrInvalidArgument, nrow, ncol)
	}
	return Window{nrow: nrow, ncol: ncol}, nil
}

// Rows reports the number of visible rows.
func (w Window) Rows() int { return w.nrow }

// Cols reports the number of visible columns.
func (w Window) Cols() int { return w.ncol }
