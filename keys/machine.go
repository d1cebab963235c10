// Package keys selects the mascot's paw sprite from key group activity.
package keys

import "time"

// KeypressThreshold is how long the last action sprite must have been shown
// before a different action sprite may replace it.
const KeypressThreshold = 31 * time.Millisecond

// State is the logically active key group.
type State int

const (
	Idle State = iota
	Left
	Right
	Wave
)

func (s State) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Wave:
		return "wave"
	default:
		return "idle"
	}
}

// Sprite is the paw sprite to draw this frame.
type Sprite int

const (
	SpriteUp Sprite = iota
	SpriteLeft
	SpriteRight
	SpriteWave
)

// Bindings maps key groups to key codes.
type Bindings struct {
	Left, Right, Wave, Smoke []int

	// ToggleSmoke flips smoke on each press instead of showing it while held.
	ToggleSmoke bool

	// LeftHanded swaps the left and right paw sprites.
	LeftHanded bool
}

// Frame is the outcome of one Update.
type Frame struct {
	State  State
	Sprite Sprite
	Smoke  bool
}

// AnimationContext is the key state carried across frames. The zero value
// is ready to use.
type AnimationContext struct {
	state State
	held  [4]bool

	// pending marks groups pressed in the same frame as a higher-priority
	// group. They take over if the active group is released first.
	pending [4]bool

	// last records when each group's action sprite was last drawn.
	last [4]time.Time

	smokeHeld bool
	smokeOn   bool
}

// Update advances the context by one frame. pressed reports whether a key
// code is currently down.
//
// Groups are checked left, right, wave. When several go down in the same
// frame the first one becomes active and the others wait while held; if the
// active group is released first, the highest-priority waiting group takes
// over.
func (c *AnimationContext) Update(pressed func(code int) bool, b Bindings, now time.Time) Frame {
	groups := [...]struct {
		state State
		codes []int
	}{
		{Left, b.Left},
		{Right, b.Right},
		{Wave, b.Wave},
	}

	activated := false
	for _, g := range groups {
		if !anyPressed(pressed, g.codes) {
			c.held[g.state] = false
			c.pending[g.state] = false
			continue
		}
		if c.held[g.state] {
			continue
		}
		c.held[g.state] = true
		if activated {
			c.pending[g.state] = true
			continue
		}
		c.state = g.state
		activated = true
	}

	if !activated && c.state != Idle && !c.held[c.state] {
		for _, g := range groups {
			if c.pending[g.state] {
				c.state = g.state
				c.pending[g.state] = false
				break
			}
		}
	}
	if !c.held[Left] && !c.held[Right] && !c.held[Wave] {
		c.state = Idle
	}

	f := Frame{State: c.state, Sprite: c.sprite(now, b.LeftHanded)}

	smoke := anyPressed(pressed, b.Smoke)
	if b.ToggleSmoke {
		if smoke && !c.smokeHeld {
			c.smokeOn = !c.smokeOn
		}
	} else {
		c.smokeOn = smoke
	}
	c.smokeHeld = smoke
	f.Smoke = c.smokeOn
	return f
}

// State returns the currently active group.
func (c *AnimationContext) State() State {
	return c.state
}

func (c *AnimationContext) sprite(now time.Time, leftHanded bool) Sprite {
	if c.state == Idle {
		return SpriteUp
	}

	var latest time.Time
	for _, s := range [...]State{Left, Right, Wave} {
		if s != c.state && c.last[s].After(latest) {
			latest = c.last[s]
		}
	}
	if now.Sub(latest) <= KeypressThreshold {
		return SpriteUp
	}
	c.last[c.state] = now

	switch c.state {
	case Left:
		if leftHanded {
			return SpriteRight
		}
		return SpriteLeft
	case Right:
		if leftHanded {
			return SpriteLeft
		}
		return SpriteRight
	default:
		return SpriteWave
	}
}

func anyPressed(pressed func(code int) bool, codes []int) bool {
	for _, code := range codes {
		if pressed(code) {
			return true
		}
	}
	return false
}
