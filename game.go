package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bongocat/assets"
	"github.com/milk9111/bongocat/config"
	"github.com/milk9111/bongocat/mascot"
	"github.com/milk9111/bongocat/paw"
	"github.com/milk9111/bongocat/render"
)

const (
	baseWidth  = 612
	baseHeight = 352
)

type Game struct {
	frames int
	debug  bool

	src     paw.Source
	closer  io.Closer
	skin    fs.FS
	cfg     *config.Config
	watcher *config.Watcher

	pipeline *mascot.Pipeline
	renderer *render.Renderer
}

func NewGame(cfg *config.Config, skin fs.FS, src paw.Source, debug bool) (*Game, error) {
	g := &Game{
		debug:    debug,
		src:      src,
		skin:     skin,
		pipeline: mascot.NewPipeline(cfg),
		renderer: render.New(nil, mascot.Style(cfg)),
	}
	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Watch reloads the configuration whenever the file at path changes.
func (g *Game) Watch(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// Close stops the config watcher and releases the input source.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	if g.closer != nil {
		errs = append(errs, g.closer.Close())
	}
	return errors.Join(errs...)
}

func (g *Game) Update() error {
	g.frames++
	g.reload()
	g.pipeline.Step(g.src, time.Now(), 1/float32(ebiten.TPS()))
	return nil
}

// reload drains pending watcher events between frames. A configuration that
// fails to load keeps the current one.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("config: reload %s: %v", path, err)
				continue
			}
			if err := g.apply(cfg); err != nil {
				log.Printf("config: reload %s: %v", path, err)
				continue
			}
			log.Printf("config: reloaded %s", path)
		case err := <-g.watcher.Errors:
			log.Printf("config: watch: %v", err)
		default:
			return
		}
	}
}

// apply switches to cfg, reloading sprites when the device mode changes.
func (g *Game) apply(cfg *config.Config) error {
	if g.cfg == nil || g.cfg.Osu.Mouse != cfg.Osu.Mouse {
		sprites, err := assets.Load(g.skin, cfg.Osu.Mouse)
		if err != nil {
			return fmt.Errorf("load sprites: %w", err)
		}
		g.renderer.SetSprites(sprites)
	}

	g.cfg = cfg
	g.pipeline.Configure(cfg)
	g.renderer.SetStyle(mascot.Style(cfg))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.pipeline.Frame()
	g.renderer.Draw(screen, frame)
	if g.debug {
		g.renderer.DrawDebug(screen, frame, g.pipeline.State())
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
