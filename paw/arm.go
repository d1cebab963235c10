package paw

import "github.com/milk9111/bongocat/common"

// Outline holds three arcs of ArcSamples steps plus the shoulder. Smooth
// holds SmoothSamples Bézier samples; the drawn curve adds the closing
// anchor for CurvePoints in total.
const (
	ArcSamples    = 6
	SmoothSamples = 25
	OutlinePoints = 3*ArcSamples + 1
	CurvePoints   = SmoothSamples + 1
)

const (
	handLength  = 60
	tangentPush = 20
)

var (
	// Shoulder is where the arm leaves the body.
	Shoulder = common.Vec2{X: 211, Y: 159}

	// Destination is where the arm rejoins the body.
	Destination = common.Vec2{X: 258, Y: 228}

	// DisplayOffset shifts the arm into the sprite's coordinate space.
	DisplayOffset = common.Vec2{X: -38, Y: -50}

	deviceAnchor = common.Vec2{X: -52 - 15, Y: -34 + 5}
)

// Arm is the geometry of one frame.
type Arm struct {
	Target common.Vec2

	// Tip is the far corner of the hand.
	Tip common.Vec2

	// Outline is the closed loop shoulder → target → tip → destination in
	// mascot-local space.
	Outline []common.Vec2

	// Smooth resamples Outline as a single Bézier at t = k/SmoothSamples
	// and is translated into display space.
	Smooth []common.Vec2

	// Close is Outline's last point in display space. It ends the drawn
	// curve after Smooth.
	Close common.Vec2

	// Device is the top-left of the mouse or tablet sprite, before the
	// configured device offset.
	Device common.Vec2
}

// BuildArm derives the arm silhouette for target. offset is added to every
// displayed point on top of DisplayOffset.
//
// A target equal to Shoulder divides by zero; the result then contains NaN
// coordinates. The paw's reach never gets there.
func BuildArm(target, offset common.Vec2) Arm {
	x, y := target.X, target.Y
	pts := make([]common.Vec2, 0, OutlinePoints)
	pts = append(pts, Shoulder)

	dist := common.Dist(Shoulder, target)
	elbow := common.Vec2{
		X: Shoulder.X - 0.7237*dist/2,
		Y: Shoulder.Y + 0.69*dist/2,
	}
	upper := []common.Vec2{Shoulder, elbow, target}
	for i := 1; i < ArcSamples; i++ {
		pts = append(pts, common.Bezier(float64(i)/ArcSamples, upper))
	}
	pts = append(pts, target)

	n := common.Vec2{X: y - elbow.Y, Y: elbow.X - x}
	tip := target.Add(n.Scale(handLength / n.Len()))

	dist = common.Dist(Destination, tip)
	wrist := common.Vec2{
		X: Destination.X - 0.6*dist/2,
		Y: Destination.Y + 0.8*dist/2,
	}

	push0 := target.Sub(elbow)
	push0 = push0.Scale(tangentPush / push0.Len())
	push1 := tip.Sub(wrist)
	push1 = push1.Scale(tangentPush / push1.Len())
	hand := []common.Vec2{target, target.Add(push0), tip.Add(push1), tip}
	for i := 1; i < ArcSamples; i++ {
		pts = append(pts, common.Bezier(float64(i)/ArcSamples, hand))
	}
	pts = append(pts, tip)

	lower := []common.Vec2{Destination, wrist, tip}
	for i := ArcSamples - 1; i > 0; i-- {
		pts = append(pts, common.Bezier(float64(i)/ArcSamples, lower))
	}
	pts = append(pts, Destination)

	shift := DisplayOffset.Add(offset)
	smooth := make([]common.Vec2, 0, CurvePoints)
	smooth = append(smooth, pts[0].Add(shift))
	for i := 1; i < SmoothSamples; i++ {
		smooth = append(smooth, common.Bezier(float64(i)/SmoothSamples, pts).Add(shift))
	}

	mid := common.LerpVec(tip, target, 0.5)
	return Arm{
		Target:  target,
		Tip:     tip,
		Outline: pts,
		Smooth:  smooth,
		Close:   pts[len(pts)-1].Add(shift),
		Device:  mid.Add(deviceAnchor).Add(shift),
	}
}

// Curve returns the drawn curve: Smooth followed by Close.
func (a Arm) Curve() []common.Vec2 {
	out := make([]common.Vec2, 0, len(a.Smooth)+1)
	out = append(out, a.Smooth...)
	return append(out, a.Close)
}
