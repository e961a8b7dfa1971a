package app

import (
	"context"
	"errors"

	"example.com/cursornav/pkg/buffer"
	"example.com/cursornav/pkg/config"
	"example.com/cursornav/pkg/editor"
	"example.com/cursornav/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

var (
	// ErrInputClosed is returned when the screen stops delivering events.
	ErrInputClosed = errors.New("app: terminal input closed")
	// ErrInterrupted is returned when the run context is cancelled.
	ErrInterrupted = errors.New("app: interrupted")
)

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

// Runner owns the terminal lifecycle and feeds terminal events to an
// editor.Editor. It is the editor's key source and draw sink.
type Runner struct {
	Screen tcell.Screen
	Buf    *buffer.Buffer
	Keymap config.Keymap
	Theme  config.Theme
	Logger *logs.Logger
	Editor *editor.Editor

	// status is shown on the reserved bottom row until the next bound key.
	status string
}

// New creates a Runner for buf using the keymap and theme from cfg.
func New(buf *buffer.Buffer, cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{Buf: buf, Keymap: cfg.Keymap, Theme: cfg.Theme}
}

// InitScreen initializes a tcell screen if one is not already set.
// This puts the terminal into raw mode until Fini.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := newScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(r.Theme.TextStyle())
	s.Clear()
	r.Screen = s
	return nil
}

// Fini restores the terminal and closes the logger.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	if r.Logger != nil {
		r.Logger.Close()
	}
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the quit key is pressed, input fails or ctx is cancelled.
// A screen the Runner initialized is finalized on every return path,
// including panics.
func (r *Runner) Run(ctx context.Context) error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			if r.Logger != nil {
				r.Logger.Close()
			}
			return err
		}
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}

	win, err := r.window()
	if err != nil {
		return err
	}
	r.Editor = editor.New(win, r.Buf)
	r.Logger.Event("run.start", map[string]any{
		"rows":  win.Rows(),
		"cols":  win.Cols(),
		"lines": r.Buf.LineCount(),
	})

	screen := r.Screen
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(ErrInterrupted))
	})
	defer stop()

	if err := r.Editor.Run(r, r); err != nil {
		r.Logger.Event("run.error", map[string]any{"error": err.Error()})
		return err
	}
	r.Logger.Event("run.end", map[string]any{"cursor": r.Editor.Cursor().String()})
	return nil
}

// window sizes the viewport one row and one column smaller than the
// screen. The last row holds the status line.
func (r *Runner) window() (editor.Window, error) {
	width, height := r.Screen.Size()
	return editor.NewWindow(max(height-1, 0), max(width-1, 0))
}
