package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !kb.Matches(ev) {
		t.Fatalf("expected match for Ctrl+X")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for KeyCtrlX")
	}
}

func TestParseKeybinding_Named(t *testing.T) {
	for _, name := range []string{"Up", "down", "LEFT", "Right", "Esc", "F1"} {
		kb, err := ParseKeybinding(name)
		require.NoError(t, err, name)
		assert.NotEqual(t, tcell.KeyRune, kb.Key, name)
	}
	kb, err := ParseKeybinding("Up")
	require.NoError(t, err)
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
}

func TestParseKeybinding_Rune(t *testing.T) {
	kb, err := ParseKeybinding("Q")
	require.NoError(t, err)
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)))
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift)))
	assert.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModAlt)))
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"", "Ctrl+", "Alt+x", "Ctrl+1", "Hyper"} {
		_, err := ParseKeybinding(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	cases := map[string]*tcell.EventKey{
		ActionQuit:  tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		ActionUp:    tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		ActionDown:  tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		ActionLeft:  tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
		ActionRight: tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
	}
	for want, ev := range cases {
		got, ok := km.Lookup(ev)
		require.True(t, ok, want)
		assert.Equal(t, want, got)
	}
	got, ok := km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, ActionQuit, got)

	_, ok = km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
}

func TestLoadConfigRemap(t *testing.T) {
	path := writeConfig(t, "keymap:\n  quit: [Ctrl+X]\n  up: [k, Up]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !cfg.Keymap[ActionQuit][0].Matches(ev) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	_, ok := cfg.Keymap.Lookup(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.False(t, ok, "q no longer quits")

	got, ok := cfg.Keymap.Lookup(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, ActionUp, got)

	got, ok = cfg.Keymap.Lookup(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	require.True(t, ok, "unlisted actions keep defaults")
	assert.Equal(t, ActionDown, got)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownAction(t *testing.T) {
	_, err := Load(writeConfig(t, "keymap:\n  insert: [i]\n"))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestLoad_EmptyBindings(t *testing.T) {
	for _, body := range []string{
		"keymap:\n  quit: []\n",
		"keymap:\n  quit:\n",
		"keymap:\n  left: []\n",
	} {
		_, err := Load(writeConfig(t, body))
		assert.ErrorIs(t, err, ErrNoBindings, "%q", body)
	}
}

func TestLoad_SingleKeyBinding(t *testing.T) {
	cfg, err := Load(writeConfig(t, "keymap:\n  quit: x\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Keymap[ActionQuit], 1)

	got, ok := cfg.Keymap.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, ActionQuit, got)
}

func TestLoad_BindingMapRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "keymap:\n  up:\n    key: k\n"))
	assert.ErrorContains(t, err, "expected a key or a list of keys")
}

func TestLoad_BadKey(t *testing.T) {
	_, err := Load(writeConfig(t, "keymap:\n  up: [Meta+k]\n"))
	assert.ErrorContains(t, err, "Meta+k")
}

func TestLoad_ThemeAndLogFile(t *testing.T) {
	path := writeConfig(t, "theme:\n  status: yellow\n  status_background: '#000080'\nlog_file: /tmp/nav.log\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultTheme()
	want.StatusForeground = tcell.ColorYellow
	want.StatusBackground = tcell.NewHexColor(0x000080)
	assert.Equal(t, want, cfg.Theme)
	assert.Equal(t, "/tmp/nav.log", cfg.LogFile)
}

func TestLoad_BadColor(t *testing.T) {
	_, err := Load(writeConfig(t, "theme:\n  text: octarine\n"))
	assert.ErrorContains(t, err, "octarine")
}
