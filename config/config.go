package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid reports a missing or malformed configuration field.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrKeyOverlap reports a key code bound to more than one of the
	// left, right and wave groups.
	ErrKeyOverlap = errors.New("config: overlapping osu! keybinds")
)

// Device modes index the per-device decoration arrays.
const (
	DeviceMouse  = 0
	DeviceTablet = 1
)

// ModeOsu is the only supported mascot mode.
const ModeOsu = 1

var requiredSections = []string{"resolution", "decoration", "osu"}

// Config is the user configuration. It is loaded once and treated as
// read-only by the animation code; hot reload replaces the whole value.
type Config struct {
	Mode       int              `yaml:"mode"`
	Resolution ResolutionConfig `yaml:"resolution"`
	Decoration DecorationConfig `yaml:"decoration"`
	Osu        OsuConfig        `yaml:"osu"`
}

// ResolutionConfig describes the game's logical resolution and, when
// letterboxing, where the game sits on the desktop.
type ResolutionConfig struct {
	Letterboxing       bool `yaml:"letterboxing"`
	Width              int  `yaml:"width"`
	Height             int  `yaml:"height"`
	HorizontalPosition int  `yaml:"horizontalPosition"`
	VerticalPosition   int  `yaml:"verticalPosition"`
}

// DecorationConfig holds per-device offsets and scales. Index 0 is used in
// mouse mode and index 1 in tablet mode.
type DecorationConfig struct {
	LeftHanded bool      `yaml:"leftHanded"`
	Background Color     `yaml:"rgb"`
	OffsetX    []int     `yaml:"offsetX"`
	OffsetY    []int     `yaml:"offsetY"`
	Scalar     []float64 `yaml:"scalar"`
}

type OsuConfig struct {
	Mouse       bool   `yaml:"mouse"`
	ToggleSmoke bool   `yaml:"toggleSmoke"`
	Paw         Color  `yaml:"paw"`
	PawEdge     Color  `yaml:"pawEdge"`
	Left        []int  `yaml:"key1"`
	Right       []int  `yaml:"key2"`
	Smoke       []int  `yaml:"smoke"`
	Wave        []int  `yaml:"wave"`
	TitlePrefix string `yaml:"titlePrefix"`
	SmokeFadeMs int    `yaml:"smokeFadeMs"`
}

// Default returns the stock configuration shipped with the mascot.
func Default() *Config {
	return &Config{
		Mode: ModeOsu,
		Resolution: ResolutionConfig{
			Width:  1920,
			Height: 1080,
		},
		Decoration: DecorationConfig{
			Background: opaque(colornames.White),
			OffsetX:    []int{0, 11},
			OffsetY:    []int{0, -65},
			Scalar:     []float64{1.0, 1.0},
		},
		Osu: OsuConfig{
			Mouse:       true,
			Paw:         opaque(colornames.White),
			PawEdge:     opaque(colornames.Black),
			Left:        []int{90},
			Right:       []int{88},
			Smoke:       []int{67},
			Wave:        []int{},
			TitlePrefix: "osu!",
		},
	}
}

// Load reads and validates the configuration at path. JSON files are
// accepted as they are valid YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, section := range requiredSections {
		if _, ok := raw[section]; !ok {
			return nil, fmt.Errorf("%w: missing %q section", ErrInvalid, section)
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if errors.Is(err, ErrInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and that the left, right and wave key groups
// are pairwise disjoint. The smoke group is not checked against the others.
func (c *Config) Validate() error {
	if c.Mode != ModeOsu {
		return fmt.Errorf("%w: mode %d is not supported", ErrInvalid, c.Mode)
	}
	if c.Resolution.Width <= 0 || c.Resolution.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalid, c.Resolution.Width, c.Resolution.Height)
	}
	d := c.Decoration
	if len(d.OffsetX) < 2 || len(d.OffsetY) < 2 || len(d.Scalar) < 2 {
		return fmt.Errorf("%w: decoration offsetX, offsetY and scalar need mouse and tablet entries", ErrInvalid)
	}
	if c.Osu.SmokeFadeMs < 0 {
		return fmt.Errorf("%w: smokeFadeMs %d", ErrInvalid, c.Osu.SmokeFadeMs)
	}

	groups := []struct {
		name  string
		codes []int
	}{
		{"key1", c.Osu.Left},
		{"key2", c.Osu.Right},
		{"wave", c.Osu.Wave},
	}
	owner := make(map[int]string)
	for _, g := range groups {
		for _, code := range g.codes {
			if code < 0 {
				return fmt.Errorf("%w: %s has negative key code %d", ErrInvalid, g.name, code)
			}
			if prev, ok := owner[code]; ok && prev != g.name {
				return fmt.Errorf("%w: %s and %s both bind %d", ErrKeyOverlap, prev, g.name, code)
			}
			owner[code] = g.name
		}
	}
	return nil
}

// Device returns the decoration index for the configured device mode.
func (c *Config) Device() int {
	if c.Osu.Mouse {
		return DeviceMouse
	}
	return DeviceTablet
}

// DeviceOffset returns the configured device offset for the active mode.
func (c *Config) DeviceOffset() (float64, float64) {
	i := c.Device()
	return float64(c.Decoration.OffsetX[i]), float64(c.Decoration.OffsetY[i])
}

// DeviceScale returns the configured device scale for the active mode.
func (c *Config) DeviceScale() float64 {
	return c.Decoration.Scalar[c.Device()]
}
