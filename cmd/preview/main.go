package main

import (
	"flag"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bongocat/assets"
	"github.com/milk9111/bongocat/config"
	"github.com/milk9111/bongocat/mascot"
	"github.com/milk9111/bongocat/paw"
	"github.com/milk9111/bongocat/render"
)

const (
	screenWidth  = 612
	screenHeight = 352

	// tapFrames is how long each scripted key tap and each gap lasts.
	tapFrames = 15
)

// script stands in for the desktop: the cursor traces a figure eight over
// a virtual screen and the bound keys are tapped one after another.
type script struct {
	tick  int
	w, h  int
	codes []int
}

func (s *script) CursorPosition() (int, int, bool) {
	t := float64(s.tick) / 120
	x := float64(s.w) / 2 * (1 + 0.9*math.Sin(t))
	y := float64(s.h) / 2 * (1 + 0.9*math.Sin(2*t))
	return int(x), int(y), true
}

func (s *script) FocusedWindow() (paw.Window, bool) {
	return paw.Window{}, false
}

func (s *script) DesktopResolution() (int, int) {
	return s.w, s.h
}

func (s *script) IsKeyPressed(code int) bool {
	if len(s.codes) == 0 {
		return false
	}
	phase := s.tick / tapFrames
	if phase%2 == 1 {
		return false
	}
	return s.codes[(phase/2)%len(s.codes)] == code
}

type Game struct {
	src      *script
	pipeline *mascot.Pipeline
	renderer *render.Renderer
}

func NewGame(cfg *config.Config, sprites *assets.Sprites) *Game {
	var codes []int
	for _, group := range [][]int{cfg.Osu.Left, cfg.Osu.Right, cfg.Osu.Wave, cfg.Osu.Smoke} {
		if len(group) > 0 {
			codes = append(codes, group[0])
		}
	}

	return &Game{
		src:      &script{w: cfg.Resolution.Width, h: cfg.Resolution.Height, codes: codes},
		pipeline: mascot.NewPipeline(cfg),
		renderer: render.New(sprites, mascot.Style(cfg)),
	}
}

func (g *Game) Update() error {
	g.src.tick++
	g.pipeline.Step(g.src, time.Now(), 1/float32(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.pipeline.Frame()
	g.renderer.Draw(screen, frame)
	g.renderer.DrawDebug(screen, frame, g.pipeline.State())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "config.json", "path to the YAML or JSON configuration")
	skinDir := flag.String("skin", ".", "directory containing the img/osu sprites")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	sprites, err := assets.Load(os.DirFS(*skinDir), cfg.Osu.Mouse)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("bongocat preview")

	if err := ebiten.RunGame(NewGame(cfg, sprites)); err != nil {
		log.Fatal(err)
	}
}
