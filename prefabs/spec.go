package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dialogbox/dialog"
	"gopkg.in/yaml.v3"
)

// DialogSpec describes one dialog prefab: its script, optional hook script,
// pacing, look and key bindings.
type DialogSpec struct {
	Name           string            `yaml:"name"`
	Script         string            `yaml:"script"`
	Hooks          string            `yaml:"hooks"`
	RevealInterval time.Duration     `yaml:"reveal_interval"`
	SkipDebounce   time.Duration     `yaml:"skip_debounce"`
	Style          StyleSpec         `yaml:"style"`
	Portraits      map[string]string `yaml:"portraits"`
	Keys           KeysSpec          `yaml:"keys"`
}

type StyleSpec struct {
	BackColor   string  `yaml:"back_color"`
	BorderColor string  `yaml:"border_color"`
	TextColor   string  `yaml:"text_color"`
	BorderWidth float64 `yaml:"border_width"`
	Padding     float64 `yaml:"padding"`
	Height      float64 `yaml:"height"`
}

// KeysSpec lists ebiten key names per dialog input.
type KeysSpec struct {
	Show []string `yaml:"show"`
	Skip []string `yaml:"skip"`
	Up   []string `yaml:"up"`
	Down []string `yaml:"down"`
}

// Style is a StyleSpec with colors resolved and defaults applied.
type Style struct {
	BackColor   color.Color
	BorderColor color.Color
	TextColor   color.Color
	BorderWidth float64
	Padding     float64
	Height      float64
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadDialogSpec(filename string) (DialogSpec, error) {
	return LoadSpec[DialogSpec](filename)
}

// LoadDialog loads a dialog prefab and parses its script.
func LoadDialog(filename string) (DialogSpec, *dialog.Script, error) {
	spec, err := LoadDialogSpec(filename)
	if err != nil {
		return spec, nil, err
	}
	script, err := spec.LoadScript()
	if err != nil {
		return spec, nil, err
	}
	return spec, script, nil
}

// LoadScript reads and parses the spec's dialog script.
func (s DialogSpec) LoadScript() (*dialog.Script, error) {
	if strings.TrimSpace(s.Script) == "" {
		return nil, fmt.Errorf("prefabs: dialog %q has no script", s.Name)
	}
	data, err := LoadScript(s.Script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", s.Script, err)
	}
	script, err := dialog.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("prefabs: parse script %s: %w", s.Script, err)
	}
	return script, nil
}

// Config maps the spec onto a dialog.Config.
func (s DialogSpec) Config(logger *log.Logger) dialog.Config {
	cfg := dialog.DefaultConfig()
	if s.RevealInterval > 0 {
		cfg.RevealInterval = s.RevealInterval
	}
	if s.SkipDebounce > 0 {
		cfg.SkipDebounce = s.SkipDebounce
	}
	cfg.Logger = logger
	return cfg
}

// Resolve parses the style colors and fills unset values with defaults.
func (s StyleSpec) Resolve() (Style, error) {
	style := Style{
		BackColor:   color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xa3},
		BorderColor: color.Black,
		TextColor:   color.White,
		BorderWidth: 2,
		Padding:     8,
		Height:      160,
	}

	for _, c := range []struct {
		raw string
		dst *color.Color
	}{
		{s.BackColor, &style.BackColor},
		{s.BorderColor, &style.BorderColor},
		{s.TextColor, &style.TextColor},
	} {
		if strings.TrimSpace(c.raw) == "" {
			continue
		}
		clr, err := parseHexColor(c.raw)
		if err != nil {
			return style, err
		}
		*c.dst = clr
	}

	if s.BorderWidth > 0 {
		style.BorderWidth = s.BorderWidth
	}
	if s.Padding > 0 {
		style.Padding = s.Padding
	}
	if s.Height > 0 {
		style.Height = s.Height
	}
	return style, nil
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
