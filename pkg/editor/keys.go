package editor

// Key is a key symbol understood by the Editor. Terminal drivers translate
// their own events into one of these; anything unrecognized is KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyQuit:  "quit",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "none"
	}
	return keyNames[k]
}

// ParseKey maps an action name ("quit", "up", ...) to its Key.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyNone {
			return Key(k), true
		}
	}
	return KeyNone, false
}
