package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color decoded from either a [r, g, b(, a)] sequence or a
// "#rrggbb(aa)" string. Alpha defaults to 255.
type Color struct {
	color.NRGBA
}

func RGB(r, g, b uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: 255}}
}

// opaque converts a named color; all of them have full alpha, so the
// premultiplied and straight forms agree.
func opaque(c color.RGBA) Color {
	return Color{color.NRGBA(c)}
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var parts []int
		if err := value.Decode(&parts); err != nil {
			return fmt.Errorf("%w: color: %v", ErrInvalid, err)
		}
		return c.setChannels(parts)
	case yaml.ScalarNode:
		return c.setHex(value.Value)
	default:
		return fmt.Errorf("%w: color must be a list or a hex string (line %d)", ErrInvalid, value.Line)
	}
}

func (c *Color) setChannels(parts []int) error {
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("%w: color needs 3 or 4 channels, got %d", ErrInvalid, len(parts))
	}
	ch := [4]uint8{0, 0, 0, 255}
	for i, v := range parts {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: color channel %d out of range", ErrInvalid, v)
		}
		ch[i] = uint8(v)
	}
	c.NRGBA = color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return nil
}

func (c *Color) setHex(raw string) error {
	s := strings.TrimPrefix(raw, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("%w: invalid color format: %s", ErrInvalid, raw)
	}

	parts := make([]int, 0, 4)
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return fmt.Errorf("%w: invalid color format: %s", ErrInvalid, raw)
		}
		parts = append(parts, int(v))
	}
	return c.setChannels(parts)
}
