package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmpty is returned when a document is built from zero lines.
	ErrEmpty = errors.New("buffer: document must contain at least one line")
	// ErrOutOfRange is returned when a row index falls outside [0, LineCount).
	ErrOutOfRange = errors.New("buffer: row out of range")
)

// Buffer is an immutable, ordered sequence of text lines.
// Lengths are measured in runes, one rune per screen column.
type Buffer struct {
	lines []string
}

// New returns a Buffer holding a copy of lines.
func New(lines []string) (*Buffer, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	return &Buffer{lines: append([]string(nil), lines...)}, nil
}

// FromString splits text into lines. CRLF is normalized to LF and a single
// trailing newline does not produce an extra empty line.
func FromString(text string) (*Buffer, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return New(strings.Split(normalized, "\n"))
}

// Load reads the file at path into a Buffer.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromString(string(data))
}

// LineCount reports the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line row.
func (b *Buffer) Line(row int) (string, error) {
	if row < 0 || row >= len(b.lines) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, row, len(b.lines))
	}
	return b.lines[row], nil
}

// LineLength returns the rune length of line row.
func (b *Buffer) LineLength(row int) (int, error) {
	line, err := b.Line(row)
	if err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(line), nil
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}
