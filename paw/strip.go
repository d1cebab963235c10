package paw

import "github.com/milk9111/bongocat/common"

// Outline stroke parameters. The shadow stroke is drawn first at a third of
// the edge alpha, then the solid stroke on top.
const (
	ShadowWidth = 7.0
	SolidWidth  = 6.0
	TaperStep   = 0.08
)

// FillStrip orders the points of a closed curve for a triangle strip by
// pairing the i-th point from the start with the i-th point from the end.
func FillStrip(pts []common.Vec2) []common.Vec2 {
	n := len(pts)
	out := make([]common.Vec2, 0, n)
	for k := 0; k < n/2; k++ {
		out = append(out, pts[k], pts[n-1-k])
	}
	if n%2 == 1 {
		out = append(out, pts[n/2])
	}
	return out
}

// Taper is a triangle strip of two vertices per curve point, offset to
// either side of the curve by a half-width that shrinks along the strip.
type Taper struct {
	Vertices []common.Vec2

	// StartRadius and EndRadius size the round caps at the curve's ends.
	StartRadius float64
	EndRadius   float64
}

// TaperStrip strokes pts starting at width and narrowing by step after each
// point.
func TaperStrip(pts []common.Vec2, width, step float64) Taper {
	n := len(pts)
	if n < 2 {
		return Taper{StartRadius: width / 2, EndRadius: width / 2}
	}

	t := Taper{
		Vertices:    make([]common.Vec2, 2*n),
		StartRadius: width / 2,
	}
	for i := 0; i < n-1; i++ {
		d := pts[i].Sub(pts[i+1])
		off := common.Vec2{X: d.Y, Y: -d.X}.Scale(width / 2 / d.Len())
		t.Vertices[2*i] = pts[i].Add(off)
		t.Vertices[2*i+1] = pts[i].Sub(off)
		width -= step
	}

	// The last segment is walked backwards, so the sides swap.
	d := pts[n-1].Sub(pts[n-2])
	off := common.Vec2{X: d.Y, Y: -d.X}.Scale(width / 2 / d.Len())
	t.Vertices[2*n-1] = pts[n-1].Add(off)
	t.Vertices[2*n-2] = pts[n-1].Sub(off)
	t.EndRadius = width / 2
	return t
}
