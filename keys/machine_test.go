package keys

import (
	"testing"
	"time"
)

type keyboard map[int]bool

func (k keyboard) pressed(code int) bool { return k[code] }

var bindings = Bindings{
	Left:  []int{1, 11},
	Right: []int{2},
	Wave:  []int{3},
	Smoke: []int{4},
}

func TestIdleWithoutKeys(t *testing.T) {
	var c AnimationContext
	f := c.Update(keyboard{}.pressed, bindings, time.Unix(100, 0))
	if f.State != Idle || f.Sprite != SpriteUp || f.Smoke {
		t.Fatalf("got %+v, want idle/up/no smoke", f)
	}
}

func TestPriorityOnSimultaneousPress(t *testing.T) {
	cases := []struct {
		name string
		keys keyboard
		want State
	}{
		{"left_right", keyboard{1: true, 2: true}, Left},
		{"right_wave", keyboard{2: true, 3: true}, Right},
		{"all", keyboard{1: true, 2: true, 3: true}, Left},
		{"wave", keyboard{3: true}, Wave},
		{"second_left_key", keyboard{11: true}, Left},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var ctx AnimationContext
			f := ctx.Update(c.keys.pressed, bindings, time.Unix(100, 0))
			if f.State != c.want {
				t.Fatalf("state = %v, want %v", f.State, c.want)
			}
		})
	}
}

func TestEdgeTriggered(t *testing.T) {
	var c AnimationContext
	now := time.Unix(100, 0)
	step := func(k keyboard) Frame {
		now = now.Add(100 * time.Millisecond)
		return c.Update(k.pressed, bindings, now)
	}

	if f := step(keyboard{1: true}); f.State != Left {
		t.Fatalf("press left: state = %v", f.State)
	}
	// Right pressed while left is still held takes over.
	if f := step(keyboard{1: true, 2: true}); f.State != Right {
		t.Fatalf("press right: state = %v", f.State)
	}
	// Holding both does not re-trigger left.
	if f := step(keyboard{1: true, 2: true}); f.State != Right {
		t.Fatalf("hold both: state = %v", f.State)
	}
	// Releasing right leaves the state on right while left is held.
	if f := step(keyboard{1: true}); f.State != Right {
		t.Fatalf("release right: state = %v", f.State)
	}
	if f := step(keyboard{}); f.State != Idle {
		t.Fatalf("release all: state = %v", f.State)
	}
	if f := step(keyboard{1: true}); f.State != Left {
		t.Fatalf("press left again: state = %v", f.State)
	}
}

func TestSuppressedGroupTakesOver(t *testing.T) {
	var c AnimationContext
	now := time.Unix(100, 0)

	c.Update(keyboard{1: true, 2: true}.pressed, bindings, now)
	// Right went down with left and lost; it takes over once left is
	// released while right stays held.
	f := c.Update(keyboard{2: true}.pressed, bindings, now.Add(time.Second))
	if f.State != Right || f.Sprite != SpriteRight {
		t.Fatalf("got %+v, want right state and sprite", f)
	}

	// Taking over is not a new press; holding on keeps right.
	f = c.Update(keyboard{2: true}.pressed, bindings, now.Add(2*time.Second))
	if f.State != Right {
		t.Fatalf("state = %v, want right", f.State)
	}
}

func TestReleasedSuppressedGroupDoesNotTakeOver(t *testing.T) {
	var c AnimationContext
	now := time.Unix(100, 0)

	c.Update(keyboard{1: true, 2: true, 3: true}.pressed, bindings, now)
	// Right is let go first, so only wave is still waiting.
	c.Update(keyboard{1: true, 3: true}.pressed, bindings, now.Add(time.Second))
	f := c.Update(keyboard{3: true}.pressed, bindings, now.Add(2*time.Second))
	if f.State != Wave {
		t.Fatalf("state = %v, want wave", f.State)
	}

	var d AnimationContext
	d.Update(keyboard{1: true, 2: true}.pressed, bindings, now)
	d.Update(keyboard{1: true}.pressed, bindings, now.Add(time.Second))
	f = d.Update(keyboard{1: true, 2: true}.pressed, bindings, now.Add(2*time.Second))
	if f.State != Right {
		t.Fatalf("state = %v, want right after a fresh press", f.State)
	}
}

func TestDebounceDelaysSwitch(t *testing.T) {
	var c AnimationContext
	t0 := time.Unix(100, 0)

	f := c.Update(keyboard{1: true}.pressed, bindings, t0)
	if f.Sprite != SpriteLeft {
		t.Fatalf("t0: sprite = %v, want left", f.Sprite)
	}

	eps := time.Millisecond
	f = c.Update(keyboard{2: true}.pressed, bindings, t0.Add(eps))
	if f.State != Right || f.Sprite != SpriteUp {
		t.Fatalf("t0+eps: got %+v, want right state drawn as up", f)
	}

	f = c.Update(keyboard{2: true}.pressed, bindings, t0.Add(KeypressThreshold))
	if f.Sprite != SpriteUp {
		t.Fatalf("t0+T: sprite = %v, want up", f.Sprite)
	}

	f = c.Update(keyboard{2: true}.pressed, bindings, t0.Add(KeypressThreshold+eps))
	if f.Sprite != SpriteRight {
		t.Fatalf("after threshold: sprite = %v, want right", f.Sprite)
	}
}

func TestDebounceStampsOnlyWhenDrawn(t *testing.T) {
	var c AnimationContext
	t0 := time.Unix(100, 0)

	c.Update(keyboard{1: true}.pressed, bindings, t0)
	// Right is held but suppressed; it must not stamp its own timer.
	c.Update(keyboard{2: true}.pressed, bindings, t0.Add(time.Millisecond))
	if !c.last[Right].IsZero() {
		t.Fatalf("right timer stamped while suppressed: %v", c.last[Right])
	}

	// Left is drawn every frame it is active, keeping its timer fresh.
	c.Update(keyboard{}.pressed, bindings, t0.Add(2*time.Millisecond))
	c.Update(keyboard{1: true}.pressed, bindings, t0.Add(time.Second))
	if got := c.last[Left]; !got.Equal(t0.Add(time.Second)) {
		t.Fatalf("left timer = %v, want %v", got, t0.Add(time.Second))
	}
}

func TestSameGroupIsNotDebounced(t *testing.T) {
	var c AnimationContext
	t0 := time.Unix(100, 0)
	c.Update(keyboard{1: true}.pressed, bindings, t0)
	c.Update(keyboard{}.pressed, bindings, t0.Add(time.Millisecond))
	f := c.Update(keyboard{11: true}.pressed, bindings, t0.Add(2*time.Millisecond))
	if f.Sprite != SpriteLeft {
		t.Fatalf("sprite = %v, want left", f.Sprite)
	}
}

func TestLeftHandedSwapsSprites(t *testing.T) {
	b := bindings
	b.LeftHanded = true

	var c AnimationContext
	if f := c.Update(keyboard{1: true}.pressed, b, time.Unix(100, 0)); f.State != Left || f.Sprite != SpriteRight {
		t.Fatalf("left key: got %+v", f)
	}
	var d AnimationContext
	if f := d.Update(keyboard{2: true}.pressed, b, time.Unix(100, 0)); f.State != Right || f.Sprite != SpriteLeft {
		t.Fatalf("right key: got %+v", f)
	}
	var w AnimationContext
	if f := w.Update(keyboard{3: true}.pressed, b, time.Unix(100, 0)); f.Sprite != SpriteWave {
		t.Fatalf("wave key: got %+v", f)
	}
}

func TestSmokeToggle(t *testing.T) {
	b := bindings
	b.ToggleSmoke = true

	var c AnimationContext
	now := time.Unix(100, 0)
	frames := []struct {
		smokeDown bool
		want      bool
	}{
		{false, false},
		{true, true},
		{true, true},
		{true, true},
		{false, true},
		{true, false},
		{false, false},
	}
	for i, fr := range frames {
		now = now.Add(16 * time.Millisecond)
		f := c.Update(keyboard{4: fr.smokeDown}.pressed, b, now)
		if f.Smoke != fr.want {
			t.Fatalf("frame %d: smoke = %v, want %v", i, f.Smoke, fr.want)
		}
	}
}

func TestSmokeHold(t *testing.T) {
	var c AnimationContext
	now := time.Unix(100, 0)
	for i, down := range []bool{false, true, true, false, true} {
		f := c.Update(keyboard{4: down}.pressed, bindings, now)
		if f.Smoke != down {
			t.Fatalf("frame %d: smoke = %v, want %v", i, f.Smoke, down)
		}
	}
}

func TestSmokeSharesKeysWithGroups(t *testing.T) {
	b := bindings
	b.Smoke = []int{1}

	var c AnimationContext
	f := c.Update(keyboard{1: true}.pressed, b, time.Unix(100, 0))
	if f.State != Left || !f.Smoke {
		t.Fatalf("got %+v, want left with smoke", f)
	}
}
