// Package theme stores each identity's color theme: one of the presets or
// a custom palette edited one color at a time.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
)

const (
	SoulfulCalm  = "soulfulCalm"
	FocusFlow    = "focusFlow"
	SoulfulNight = "soulfulNight"
	Custom       = "custom"

	Default = SoulfulCalm
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownField = errors.New("unknown color field")
)

// Palette colors are "H S% L%" strings ready for hsl().
type Palette struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Border        string `json:"border"`
	Primary       string `json:"primary"`
	PrimaryAccent string `json:"primaryAccent"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextOnPrimary string `json:"textOnPrimary"`
}

type Preset struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Swatches []string `json:"swatches"`
	Colors   Palette  `json:"colors"`
}

var presets = []Preset{
	{
		ID:       SoulfulCalm,
		Name:     "Soulful Calm",
		Swatches: []string{"#EBF4FA", "#D6E4F0", "#6B7F9A"},
		Colors: Palette{
			Background:    "230 50% 96%",
			Surface:       "0 0% 100%",
			Border:        "208 44% 80%",
			Primary:       "212 36% 45%",
			PrimaryAccent: "212 26% 84%",
			TextPrimary:   "0 0% 30%",
			TextSecondary: "0 0% 40%",
			TextOnPrimary: "0 0% 100%",
		},
	},
	{
		ID:       FocusFlow,
		Name:     "Focus Flow",
		Swatches: []string{"#FEF7F0", "#FBD9B3", "#E97A35"},
		Colors: Palette{
			Background:    "39 100% 97%",
			Surface:       "0 0% 100%",
			Border:        "39 89% 80%",
			Primary:       "14 83% 53%",
			PrimaryAccent: "14 83% 90%",
			TextPrimary:   "14 50% 25%",
			TextSecondary: "14 30% 45%",
			TextOnPrimary: "0 0% 100%",
		},
	},
	{
		ID:       SoulfulNight,
		Name:     "Soulful Night",
		Swatches: []string{"#232E3A", "#3C5069", "#8AB4F8"},
		Colors: Palette{
			Background:    "212 35% 15%",
			Surface:       "212 35% 20%",
			Border:        "212 30% 35%",
			Primary:       "212 80% 70%",
			PrimaryAccent: "212 50% 40%",
			TextPrimary:   "210 30% 95%",
			TextSecondary: "210 20% 70%",
			TextOnPrimary: "212 35% 15%",
		},
	},
}

// Presets lists the built-in themes.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func preset(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Fields lists the palette field names in display order.
var Fields = []string{
	"background", "surface", "border", "primary",
	"primaryAccent", "textPrimary", "textSecondary", "textOnPrimary",
}

func (p *Palette) field(name string) *string {
	switch name {
	case "background":
		return &p.Background
	case "surface":
		return &p.Surface
	case "border":
		return &p.Border
	case "primary":
		return &p.Primary
	case "primaryAccent":
		return &p.PrimaryAccent
	case "textPrimary":
		return &p.TextPrimary
	case "textSecondary":
		return &p.TextSecondary
	case "textOnPrimary":
		return &p.TextOnPrimary
	}
	return nil
}

type CSSVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CSSVariables maps each field to a --color-kebab-case custom property.
func (p Palette) CSSVariables() []CSSVariable {
	vars := make([]CSSVariable, 0, len(Fields))
	for _, name := range Fields {
		vars = append(vars, CSSVariable{Name: cssName(name), Value: *p.field(name)})
	}
	return vars
}

// CSS renders the palette as a :root rule.
func (p Palette) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range p.CSSVariables() {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

func cssName(field string) string {
	var b strings.Builder
	b.WriteString("--color-")
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// State is an identity's theme selection.
type State struct {
	Theme  string  `json:"theme"`
	Custom Palette `json:"customColors"`
}

// Colors returns the palette in effect.
func (s State) Colors() Palette {
	if s.Theme == Custom {
		return s.Custom
	}
	if p, ok := preset(s.Theme); ok {
		return p.Colors
	}
	return presets[0].Colors
}

type Service struct {
	kv kvstore.Store
}

func NewService(kv kvstore.Store) *Service {
	return &Service{kv: kv}
}

// Load reads the theme of id. Missing values fall back to the default
// theme; a malformed custom palette is logged and ignored.
func (s *Service) Load(ctx context.Context, id string) (State, error) {
	state := State{Theme: Default, Custom: presets[0].Colors}

	name, ok, err := s.kv.Get(ctx, kvstore.ThemeKey(id))
	if err != nil {
		return State{}, fmt.Errorf("read theme: %w", err)
	}
	if ok && name != "" {
		state.Theme = name
	}

	raw, ok, err := s.kv.Get(ctx, kvstore.CustomColorsKey(id))
	if err != nil {
		return State{}, fmt.Errorf("read custom colors: %w", err)
	}
	if ok {
		custom := presets[0].Colors
		if err := json.Unmarshal([]byte(raw), &custom); err != nil {
			slog.Warn("ignoring malformed custom colors", "identity", id, "error", err)
		} else {
			state.Custom = custom
		}
	}
	return state, nil
}

// SetTheme selects a preset or the custom palette.
func (s *Service) SetTheme(ctx context.Context, id, name string) (State, error) {
	if _, ok := preset(name); !ok && name != Custom {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if err := s.kv.Set(ctx, kvstore.ThemeKey(id), name); err != nil {
		return State{}, fmt.Errorf("persist theme: %w", err)
	}
	return s.Load(ctx, id)
}

// SetCustomColor sets one custom palette field from a #rgb or #rrggbb
// color.
func (s *Service) SetCustomColor(ctx context.Context, id, field, hex string) (State, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return State{}, err
	}
	state, err := s.Load(ctx, id)
	if err != nil {
		return State{}, err
	}

	dst := state.Custom.field(field)
	if dst == nil {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*dst = hsl

	data, err := json.Marshal(state.Custom)
	if err != nil {
		return State{}, err
	}
	if err := s.kv.Set(ctx, kvstore.CustomColorsKey(id), string(data)); err != nil {
		return State{}, fmt.Errorf("persist custom colors: %w", err)
	}
	return state, nil
}
