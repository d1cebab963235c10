package render

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases the smoke sprite's alpha toward shown or hidden. A zero
// duration switches instantly.
type Fade struct {
	duration float32
	tween    *gween.Tween
	target   float32
	alpha    float32
}

func NewFade(d time.Duration) *Fade {
	f := &Fade{}
	f.SetDuration(d)
	return f
}

// SetDuration changes the time a full 0 to 1 fade takes. A fade in flight
// keeps its old pace.
func (f *Fade) SetDuration(d time.Duration) {
	f.duration = float32(d.Seconds())
}

// Update advances the fade by dt seconds and returns the alpha to draw with.
func (f *Fade) Update(on bool, dt float32) float32 {
	var target float32
	if on {
		target = 1
	}

	if f.duration <= 0 {
		f.tween = nil
		f.target = target
		f.alpha = target
		return f.alpha
	}

	if target != f.target {
		f.target = target
		f.tween = nil
		// Reversing midway only covers the remaining distance.
		if span := f.duration * abs32(target-f.alpha); span > 0 {
			f.tween = gween.New(f.alpha, target, span, ease.Linear)
		} else {
			f.alpha = target
		}
	}

	if f.tween != nil {
		v, done := f.tween.Update(dt)
		f.alpha = v
		if done {
			f.tween = nil
			f.alpha = f.target
		}
	}
	return f.alpha
}

// Alpha is the alpha returned by the last Update.
func (f *Fade) Alpha() float32 {
	return f.alpha
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
