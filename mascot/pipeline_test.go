package mascot

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/bongocat/config"
	"github.com/milk9111/bongocat/keys"
	"github.com/milk9111/bongocat/paw"
)

type fakeDesktop struct {
	x, y    int
	window  paw.Window
	focused bool
	pressed map[int]bool
}

func (f *fakeDesktop) CursorPosition() (int, int, bool) {
	return f.x, f.y, true
}

func (f *fakeDesktop) FocusedWindow() (paw.Window, bool) {
	return f.window, f.focused
}

func (f *fakeDesktop) DesktopResolution() (int, int) {
	return 1920, 1080
}

func (f *fakeDesktop) IsKeyPressed(code int) bool {
	return f.pressed[code]
}

func TestStepBuildsArmFromCursor(t *testing.T) {
	src := &fakeDesktop{x: 960, y: 540, pressed: map[int]bool{}}
	p := NewPipeline(config.Default())

	f := p.Step(src, time.Unix(100, 0), 1.0/60)
	if !f.ArmOK {
		t.Fatalf("arm not built")
	}
	want := paw.Remap(0.5, 0.5)
	got := f.Arm.Target
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("target = %v, want %v", got, want)
	}
	if len(f.Arm.Smooth) != 25 {
		t.Fatalf("smooth points = %d, want 25", len(f.Arm.Smooth))
	}
}

func TestStepKeysAndSmoke(t *testing.T) {
	src := &fakeDesktop{pressed: map[int]bool{90: true, 67: true}}
	p := NewPipeline(config.Default())

	f := p.Step(src, time.Unix(100, 0), 1.0/60)
	if f.Sprite != keys.SpriteLeft {
		t.Fatalf("sprite = %v, want left", f.Sprite)
	}
	if f.Smoke != 1 {
		t.Fatalf("smoke = %v, want 1", f.Smoke)
	}

	src.pressed = map[int]bool{}
	f = p.Step(src, time.Unix(101, 0), 1.0/60)
	if f.Sprite != keys.SpriteUp || f.Smoke != 0 {
		t.Fatalf("after release: sprite = %v, smoke = %v", f.Sprite, f.Smoke)
	}
}

func TestStepUsesFocusedOsuWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Resolution.Letterboxing = true
	src := &fakeDesktop{
		window:  paw.Window{Title: "osu! - song", X: 100, Y: 100, Width: 1280, Height: 720},
		focused: true,
		pressed: map[int]bool{},
	}
	p := NewPipeline(cfg)

	in := paw.Poll(src)
	region := paw.ActiveRegion(in, Settings(cfg))
	src.x = int(region.X)
	src.y = int(region.Y)

	f := p.Step(src, time.Unix(100, 0), 1.0/60)
	want := paw.Remap(0, 0)
	got := f.Arm.Target
	if math.Abs(got.X-want.X) > 1 || math.Abs(got.Y-want.Y) > 1 {
		t.Fatalf("target = %v, want about %v", got, want)
	}
}

func TestConfigConversions(t *testing.T) {
	cfg := config.Default()
	cfg.Osu.Mouse = false
	cfg.Decoration.LeftHanded = true
	cfg.Osu.ToggleSmoke = true

	s := Settings(cfg)
	if s.TitlePrefix != "osu!" || s.LogicalW != 1920 || s.LogicalH != 1080 || !s.LeftHanded {
		t.Errorf("settings = %+v", s)
	}

	b := Bindings(cfg)
	if !b.ToggleSmoke || !b.LeftHanded || len(b.Left) != 1 || b.Left[0] != 90 {
		t.Errorf("bindings = %+v", b)
	}

	st := Style(cfg)
	if st.Mouse || st.DeviceOffset.X != 11 || st.DeviceOffset.Y != -65 || st.DeviceScale != 1 {
		t.Errorf("style = %+v", st)
	}
}

func TestConfigureSwapsBindings(t *testing.T) {
	src := &fakeDesktop{x: 10, y: 10, pressed: map[int]bool{65: true}}
	p := NewPipeline(config.Default())
	before := p.Step(src, time.Unix(100, 0), 1.0/60)
	if before.Sprite != keys.SpriteUp {
		t.Fatalf("sprite = %v before rebinding, want up", before.Sprite)
	}

	cfg := config.Default()
	cfg.Osu.Left = []int{65}
	cfg.Osu.SmokeFadeMs = 100
	p.Configure(cfg)

	src.pressed = map[int]bool{}
	p.Step(src, time.Unix(101, 0), 1.0/60)
	src.pressed = map[int]bool{65: true, 67: true}
	f := p.Step(src, time.Unix(102, 0), 0.05)
	if f.Sprite != keys.SpriteLeft {
		t.Fatalf("sprite = %v after rebinding, want left", f.Sprite)
	}
	if math.Abs(float64(f.Smoke)-0.5) > 1e-4 {
		t.Fatalf("smoke = %v, want halfway through the fade", f.Smoke)
	}
	if last := p.Frame(); last.Sprite != f.Sprite || last.Smoke != f.Smoke || last.Arm.Target != f.Arm.Target {
		t.Fatalf("Frame() = %+v, want the last Step", last)
	}
}
