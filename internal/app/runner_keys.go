package app

import (
	"fmt"

	"example.com/cursornav/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

// ReadKey blocks until the next key event and translates it through the
// keymap. Resize events are absorbed; the window keeps its initial size.
func (r *Runner) ReadKey() (editor.Key, error) {
	for {
		ev := r.Screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return editor.KeyNone, ErrInputClosed
		case *tcell.EventInterrupt:
			if err, ok := ev.Data().(error); ok {
				return editor.KeyNone, err
			}
		case *tcell.EventKey:
			k := r.translate(ev)
			r.logEvent("key", map[string]any{
				"name":   ev.Name(),
				"action": k.String(),
			})
			return k, nil
		case *tcell.EventResize:
			r.Screen.Sync()
		}
	}
}

// translate maps a terminal key to an editor key symbol and records an
// unbound key on the status line.
func (r *Runner) translate(ev *tcell.EventKey) editor.Key {
	name, ok := r.Keymap.Lookup(ev)
	if !ok {
		r.status = fmt.Sprintf("%s is not bound", ev.Name())
		return editor.KeyNone
	}
	r.status = ""
	k, _ := editor.ParseKey(name)
	return k
}

func (r *Runner) logEvent(event string, fields map[string]any) {
	if r.Logger != nil {
		r.Logger.Event(event, fields)
	}
}
