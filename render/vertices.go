package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bongocat/common"
)

// appendVertices converts points into solid-colored vertices sampling the
// centre of the white pixel.
func appendVertices(dst []ebiten.Vertex, pts []common.Vec2, c color.NRGBA) []ebiten.Vertex {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for _, p := range pts {
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return dst
}

// appendStripIndices triangulates a triangle strip of n vertices starting
// at base.
func appendStripIndices(dst []uint16, base, n int) []uint16 {
	for i := 0; i+2 < n; i++ {
		v := uint16(base + i)
		dst = append(dst, v, v+1, v+2)
	}
	return dst
}

// withAlpha returns c with its alpha divided by div, the way the shadow
// stroke is tinted.
func withAlpha(c color.NRGBA, div uint8) color.NRGBA {
	c.A /= div
	return c
}
