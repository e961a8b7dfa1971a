package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Action names accepted in the keymap section.
const (
	ActionQuit  = "quit"
	ActionUp    = "up"
	ActionDown  = "down"
	ActionLeft  = "left"
	ActionRight = "right"
)

var actions = []string{ActionQuit, ActionUp, ActionDown, ActionLeft, ActionRight}

var (
	// ErrUnknownAction is returned for keymap entries that name no action.
	ErrUnknownAction = errors.New("config: unknown action")
	// ErrNoBindings is returned when a keymap entry lists no keys. An
	// action without keys, quit in particular, could never be triggered.
	ErrNoBindings = errors.New("config: action has no key bindings")
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Keymap binds action names to the keys that trigger them.
type Keymap map[string][]Keybinding

// Config holds user configuration values.
type Config struct {
	Keymap  Keymap `yaml:"keymap"`
	Theme   Theme  `yaml:"theme"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{Keymap: DefaultKeymap(), Theme: DefaultTheme()}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		ActionQuit:  {mustParse("q"), mustParse("Q")},
		ActionUp:    {mustParse("Up")},
		ActionDown:  {mustParse("Down")},
		ActionLeft:  {mustParse("Left")},
		ActionRight: {mustParse("Right")},
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Actions listed in the file replace the
// default bindings for that action only.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	file := struct {
		Keymap  map[string]bindingList `yaml:"keymap"`
		Theme   Theme                  `yaml:"theme"`
		LogFile string                 `yaml:"log_file"`
	}{Theme: cfg.Theme}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, bindings := range file.Keymap {
		if !isAction(name) {
			return nil, fmt.Errorf("%w %q in %s", ErrUnknownAction, name, path)
		}
		if len(bindings) == 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrNoBindings, name, path)
		}
		cfg.Keymap[name] = []Keybinding(bindings)
	}
	cfg.Theme = file.Theme
	cfg.LogFile = file.LogFile
	return cfg, nil
}

// DefaultPath returns ~/.cursornav/config.yaml, or "" without a home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cursornav", "config.yaml")
}

// LoadDefault attempts to read ~/.cursornav/config.yaml.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func isAction(name string) bool {
	for _, a := range actions {
		if a == name {
			return true
		}
	}
	return false
}

// Lookup returns the action bound to ev, if any.
func (km Keymap) Lookup(ev *tcell.EventKey) (string, bool) {
	for _, name := range actions {
		for _, kb := range km[name] {
			if kb.Matches(ev) {
				return name, true
			}
		}
	}
	return "", false
}

// keyNames maps lower-cased tcell key names ("up", "pgdn", ...) to keys.
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeybinding converts a textual key description into a Keybinding.
// Accepted forms are a tcell key name ("Up", "Esc", "F1"), a single
// character ("q") and Ctrl+<letter>.
func ParseKeybinding(s string) (Keybinding, error) {
	if r := []rune(s); len(r) == 1 {
		return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModNone}, nil
	}
	if parts := strings.Split(s, "+"); len(parts) == 2 {
		if !strings.EqualFold(parts[0], "ctrl") {
			return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
		}
		r := []rune(strings.ToLower(parts[1]))
		if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
			return Keybinding{}, errors.New("invalid key in keybinding: " + s)
		}
		return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
	}
	if k, ok := keyNames[strings.ToLower(s)]; ok && k != tcell.KeyRune {
		return Keybinding{Key: k, Mod: tcell.ModNone}, nil
	}
	return Keybinding{}, errors.New("invalid keybinding: " + s)
}

// UnmarshalYAML decodes a keybinding from its textual form.
func (k *Keybinding) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kb, err := ParseKeybinding(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kb
	return nil
}

// bindingList accepts either a single key ("q") or a list ([q, Q]).
type bindingList []Keybinding

func (b *bindingList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var kb Keybinding
		if err := value.Decode(&kb); err != nil {
			return err
		}
		*b = bindingList{kb}
	case yaml.SequenceNode:
		var kbs []Keybinding
		if err := value.Decode(&kbs); err != nil {
			return err
		}
		*b = kbs
	default:
		return fmt.Errorf("line %d: expected a key or a list of keys", value.Line)
	}
	return nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
// Plain character bindings ignore Shift so "Q" matches however the
// terminal reports it.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModNone {
		return ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune && ev.Modifiers()&^tcell.ModShift == 0
	}
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key != tcell.KeyRune && k.Key == ev.Key() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}
