// Package mascot runs the per-frame animation pipeline: poll the desktop,
// map the cursor, build the arm, then resolve the paw sprite and smoke.
package mascot

import (
	"time"

	"github.com/milk9111/bongocat/common"
	"github.com/milk9111/bongocat/config"
	"github.com/milk9111/bongocat/keys"
	"github.com/milk9111/bongocat/paw"
	"github.com/milk9111/bongocat/render"
)

// Pipeline holds the animation state carried between frames.
type Pipeline struct {
	mapper   *paw.Mapper
	anim     keys.AnimationContext
	bindings keys.Bindings
	smoke    *render.Fade
	frame    render.Frame
}

func NewPipeline(cfg *config.Config) *Pipeline {
	p := &Pipeline{
		mapper: paw.NewMapper(Settings(cfg)),
		smoke:  render.NewFade(0),
	}
	p.Configure(cfg)
	return p
}

// Configure switches to cfg, keeping the last paw target and key state.
func (p *Pipeline) Configure(cfg *config.Config) {
	p.bindings = Bindings(cfg)
	p.mapper.SetSettings(Settings(cfg))
	p.smoke.SetDuration(time.Duration(cfg.Osu.SmokeFadeMs) * time.Millisecond)
}

// Step advances one frame using src and returns what to draw. dt is the
// frame time in seconds.
func (p *Pipeline) Step(src paw.Source, now time.Time, dt float32) render.Frame {
	target, ok := p.mapper.Map(paw.Poll(src))
	p.frame.ArmOK = ok
	if ok {
		p.frame.Arm = paw.BuildArm(target, common.Vec2{})
	}

	f := p.anim.Update(src.IsKeyPressed, p.bindings, now)
	p.frame.Sprite = f.Sprite
	p.frame.Smoke = p.smoke.Update(f.Smoke, dt)
	return p.frame
}

// Frame returns the result of the last Step.
func (p *Pipeline) Frame() render.Frame {
	return p.frame
}

func (p *Pipeline) State() keys.State {
	return p.anim.State()
}

// Settings extracts the mapper settings from cfg.
func Settings(cfg *config.Config) paw.Settings {
	r := cfg.Resolution
	return paw.Settings{
		TitlePrefix:        cfg.Osu.TitlePrefix,
		LogicalW:           r.Width,
		LogicalH:           r.Height,
		Letterbox:          r.Letterboxing,
		HorizontalPosition: r.HorizontalPosition,
		VerticalPosition:   r.VerticalPosition,
		LeftHanded:         cfg.Decoration.LeftHanded,
	}
}

func Bindings(cfg *config.Config) keys.Bindings {
	return keys.Bindings{
		Left:        cfg.Osu.Left,
		Right:       cfg.Osu.Right,
		Wave:        cfg.Osu.Wave,
		Smoke:       cfg.Osu.Smoke,
		ToggleSmoke: cfg.Osu.ToggleSmoke,
		LeftHanded:  cfg.Decoration.LeftHanded,
	}
}

// Style extracts the renderer's look for the configured device mode.
func Style(cfg *config.Config) render.Style {
	x, y := cfg.DeviceOffset()
	return render.Style{
		Background:   cfg.Decoration.Background.NRGBA,
		Paw:          cfg.Osu.Paw.NRGBA,
		Edge:         cfg.Osu.PawEdge.NRGBA,
		Mouse:        cfg.Osu.Mouse,
		DeviceOffset: common.Vec2{X: x, Y: y},
		DeviceScale:  cfg.DeviceScale(),
	}
}
