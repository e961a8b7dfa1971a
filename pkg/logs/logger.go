package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger {
	return &Logger{}
}

// NewWriter returns a logger writing to w. If w is an io.Closer it is
// closed by Close.
func NewWriter(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true, now: time.Now}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Open appends to the file at path, creating it if needed.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return NewWriter(f), nil
}

// NewFromEnv returns a logger if CURSORNAV_LOG is set to a truthy value
// or if CURSORNAV_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./cursornav.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("CURSORNAV_LOG_FILE")
	enabled := lf != ""
	if v := os.Getenv("CURSORNAV_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = filepath.Join(".", "cursornav.log")
	}
	l, err := Open(lf)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return Disabled()
	}
	return l
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Close flushes and closes the underlying writer if enabled.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, action, cursor, rows, cols, error.
func (l *Logger) Event(event string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
