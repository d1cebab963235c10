package common

import "math"

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec interpolates component-wise between a and b.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Bezier evaluates the Bézier curve defined by pts at t using de Casteljau's
// algorithm. Any number of control points is accepted; an empty slice yields
// the zero vector and a single point is returned as is.
func Bezier(t float64, pts []Vec2) Vec2 {
	switch len(pts) {
	case 0:
		return Vec2{}
	case 1:
		return pts[0]
	}

	buf := make([]Vec2, len(pts))
	copy(buf, pts)
	for n := len(buf) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			buf[i] = LerpVec(buf[i], buf[i+1], t)
		}
	}
	return buf[0]
}
