package config

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Theme holds the colors used to draw the document and the status line.
type Theme struct {
	TextForeground   tcell.Color
	TextBackground   tcell.Color
	StatusForeground tcell.Color
	StatusBackground tcell.Color
	ErrorForeground  tcell.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		TextForeground:   tcell.ColorDefault,
		TextBackground:   tcell.ColorDefault,
		StatusForeground: tcell.ColorBlack,
		StatusBackground: tcell.ColorWhite,
		ErrorForeground:  tcell.ColorRed,
	}
}

// TextStyle is the style for document text.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// StatusStyle is the style for the status line.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// ErrorStyle is the status line style used while an error is shown.
func (t Theme) ErrorStyle() tcell.Style {
	return t.StatusStyle().Foreground(t.ErrorForeground).Bold(true)
}

// UnmarshalYAML overrides only the colors present in the node. Colors are
// tcell names ("white", "darkblue") or hex ("#ff8800").
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Text       string `yaml:"text"`
		Background string `yaml:"background"`
		Status     string `yaml:"status"`
		StatusBG   string `yaml:"status_background"`
		Error      string `yaml:"error"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	fields := []struct {
		name string
		in   string
		out  *tcell.Color
	}{
		{"text", raw.Text, &t.TextForeground},
		{"background", raw.Background, &t.TextBackground},
		{"status", raw.Status, &t.StatusForeground},
		{"status_background", raw.StatusBG, &t.StatusBackground},
		{"error", raw.Error, &t.ErrorForeground},
	}
	for _, f := range fields {
		if f.in == "" {
			continue
		}
		c, err := parseColor(f.in)
		if err != nil {
			return fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.out = c
	}
	return nil
}

func parseColor(s string) (tcell.Color, error) {
	if s == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
