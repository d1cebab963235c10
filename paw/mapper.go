package paw

import (
	"math"
	"strings"

	"github.com/milk9111/bongocat/common"
)

const (
	// regionScale is the share of the logical height covered by the osu!
	// playfield; the playfield is always 4:3.
	regionScale = 0.8

	// regionTop is the playfield's distance from the top of the game area,
	// as a share of the logical height.
	regionTop = 0.117
)

// Settings is the slice of the configuration the Mapper reads.
type Settings struct {
	TitlePrefix        string
	LogicalW, LogicalH int
	Letterbox          bool

	// HorizontalPosition and VerticalPosition range over -100..100 with 0
	// centring the game on the desktop.
	HorizontalPosition int
	VerticalPosition   int
	LeftHanded         bool
}

// Region is the screen rectangle whose extent maps onto the paw's reach.
type Region struct {
	X, Y          float64
	Width, Height float64
}

// Mapper converts cursor positions into paw targets and remembers the last
// valid target for frames where the cursor cannot be read.
type Mapper struct {
	settings Settings
	last     common.Vec2
	valid    bool
}

func NewMapper(s Settings) *Mapper {
	return &Mapper{settings: s}
}

// SetSettings swaps the settings, keeping the last target.
func (m *Mapper) SetSettings(s Settings) {
	m.settings = s
}

// Map returns the paw target for in. When the cursor is unavailable the
// previous target is returned; ok is false until a target has been computed.
func (m *Mapper) Map(in FrameInput) (common.Vec2, bool) {
	if !in.CursorOK {
		return m.last, m.valid
	}

	r := ActiveRegion(in, m.settings)
	cx, cy := float64(in.CursorX), float64(in.CursorY)
	if !m.settings.Letterbox && m.settings.LogicalW > 0 && m.settings.LogicalH > 0 {
		lw, lh := float64(m.settings.LogicalW), float64(m.settings.LogicalH)
		r.X = math.Floor(cx/lw) * lw
		r.Y = math.Floor(cy/lh) * lh
	}

	fx := (cx - r.X) / r.Width
	if m.settings.LeftHanded {
		fx = 1 - fx
	}
	fy := (cy - r.Y) / r.Height

	m.last = Remap(common.Clamp01(fx), common.Clamp01(fy))
	m.valid = true
	return m.last, true
}

// ActiveRegion computes the region the cursor is measured against before
// the per-tile origin adjustment of non-letterboxed mode.
func ActiveRegion(in FrameInput, s Settings) Region {
	desktop := Region{Width: float64(in.DesktopW), Height: float64(in.DesktopH)}
	if !in.WindowOK || in.Window.Title == "" || !strings.HasPrefix(in.Window.Title, s.TitlePrefix) {
		return desktop
	}

	lh := float64(s.LogicalH)
	r := Region{Height: lh * regionScale}
	r.Width = r.Height * 4 / 3

	if !s.Letterbox {
		if in.Window.Width == in.DesktopW && in.Window.Height == in.DesktopH {
			return desktop
		}
		r.X = float64(in.Window.X) + (float64(in.Window.Width)-r.Width)/2
		r.Y = float64(in.Window.Y) + lh*regionTop
		return r
	}

	lw := float64(s.LogicalW)
	left := (float64(in.DesktopW) - lw) * float64(s.HorizontalPosition+100) / 200
	r.X = left + (lw-r.Width)/2
	r.Y = (float64(in.DesktopH)-lh)*float64(s.VerticalPosition+100)/200 + lh*regionTop
	return r
}

// Remap applies the fixed affine transform from a cursor fraction to the
// paw's reach in mascot-local space.
func Remap(fx, fy float64) common.Vec2 {
	return common.Vec2{
		X: -97*fx + 44*fy + 184,
		Y: -76*fx - 40*fy + 324,
	}
}
