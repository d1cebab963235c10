// Package render draws one frame of the mascot with ebiten.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bongocat/assets"
	"github.com/milk9111/bongocat/common"
	"github.com/milk9111/bongocat/keys"
	"github.com/milk9111/bongocat/paw"
)

// Style is the configurable look of the mascot.
type Style struct {
	Background color.Color
	Paw        color.NRGBA
	Edge       color.NRGBA

	// Mouse draws the device under the arm; a tablet goes on top.
	Mouse bool

	DeviceOffset common.Vec2
	DeviceScale  float64
}

// Frame is everything that changes between two draws.
type Frame struct {
	Arm    paw.Arm
	ArmOK  bool
	Sprite keys.Sprite
	Smoke  float32
}

type Renderer struct {
	sprites *assets.Sprites
	style   Style
	white   *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint16
}

func New(sprites *assets.Sprites, style Style) *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{
		sprites: sprites,
		style:   style,
		white:   white,
	}
}

func (r *Renderer) SetStyle(style Style) {
	r.style = style
}

func (r *Renderer) SetSprites(sprites *assets.Sprites) {
	r.sprites = sprites
}

// Draw paints f over dst back to front: background, mouse, arm fill,
// shadow and solid outlines, paw sprite, tablet, smoke.
func (r *Renderer) Draw(dst *ebiten.Image, f Frame) {
	if r.style.Background != nil {
		dst.Fill(r.style.Background)
	}
	drawSprite(dst, r.sprites.Background, 0, 0, 1, 1)

	if f.ArmOK {
		if r.style.Mouse {
			r.drawDevice(dst, f.Arm)
		}
		curve := f.Arm.Curve()
		r.drawStrip(dst, paw.FillStrip(curve), r.style.Paw)
		r.drawTaper(dst, curve, paw.ShadowWidth, withAlpha(r.style.Edge, 3))
		r.drawTaper(dst, curve, paw.SolidWidth, r.style.Edge)
	}

	drawSprite(dst, r.pawSprite(f.Sprite), 0, 0, 1, 1)

	if f.ArmOK && !r.style.Mouse {
		r.drawDevice(dst, f.Arm)
	}

	if f.Smoke > 0 {
		drawSprite(dst, r.sprites.Smoke, 0, 0, 1, f.Smoke)
	}
}

// DrawDebug marks the paw target and device anchor and prints the frame
// state in the top-left corner.
func (r *Renderer) DrawDebug(dst *ebiten.Image, f Frame, state keys.State) {
	msg := fmt.Sprintf("FPS: %.1f\nstate: %s", ebiten.ActualFPS(), state)
	if f.ArmOK {
		// Smooth starts at the shoulder, so its shift is the display shift.
		shift := f.Arm.Smooth[0].Sub(paw.Shoulder)
		crosshair(dst, f.Arm.Target.Add(shift), colornames.Red)
		crosshair(dst, f.Arm.Device.Add(r.style.DeviceOffset), colornames.Blue)
		msg += fmt.Sprintf("\ntarget: %.1f, %.1f", f.Arm.Target.X, f.Arm.Target.Y)
	}
	ebitenutil.DebugPrint(dst, msg)
}

func (r *Renderer) pawSprite(s keys.Sprite) *ebiten.Image {
	switch s {
	case keys.SpriteLeft:
		return r.sprites.Left
	case keys.SpriteRight:
		return r.sprites.Right
	case keys.SpriteWave:
		return r.sprites.Wave
	default:
		return r.sprites.Up
	}
}

func (r *Renderer) drawDevice(dst *ebiten.Image, arm paw.Arm) {
	pos := arm.Device.Add(r.style.DeviceOffset)
	drawSprite(dst, r.sprites.Device, pos.X, pos.Y, r.style.DeviceScale, 1)
}

func (r *Renderer) drawStrip(dst *ebiten.Image, pts []common.Vec2, c color.NRGBA) {
	r.verts = appendVertices(r.verts[:0], pts, c)
	r.inds = appendStripIndices(r.inds[:0], 0, len(pts))
	dst.DrawTriangles(r.verts, r.inds, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawTaper(dst *ebiten.Image, pts []common.Vec2, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	t := paw.TaperStrip(pts, width, paw.TaperStep)
	first, last := pts[0], pts[len(pts)-1]
	vector.DrawFilledCircle(dst, float32(first.X), float32(first.Y), float32(t.StartRadius), c, true)
	r.drawStrip(dst, t.Vertices, c)
	vector.DrawFilledCircle(dst, float32(last.X), float32(last.Y), float32(t.EndRadius), c, true)
}

func drawSprite(dst, img *ebiten.Image, x, y, scale float64, alpha float32) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

func crosshair(dst *ebiten.Image, p common.Vec2, c color.Color) {
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(dst, x-5, y, x+5, y, 1, c, false)
	vector.StrokeLine(dst, x, y-5, x, y+5, 1, c, false)
}
