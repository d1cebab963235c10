package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bongocat/config"
	"github.com/milk9111/bongocat/paw"
	"github.com/milk9111/bongocat/platform"
)

// closableSource is a paw.Source holding system resources, such as the
// global input hook.
type closableSource interface {
	paw.Source
	Close() error
}

func main() {
	configPath := flag.String("config", "config.json", "path to the YAML or JSON configuration")
	skinDir := flag.String("skin", ".", "directory containing the img/osu sprites")
	watch := flag.Bool("watch", false, "reload the configuration when the file changes")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("bongocat")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)

	// run returns instead of exiting so the input hook is always released.
	if err := run(cfg, *configPath, os.DirFS(*skinDir), *watch, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, configPath string, skin fs.FS, watch, debug bool) error {
	game, err := newOverlay(cfg, skin, platform.NewDesktop(), debug)
	if err != nil {
		return err
	}
	defer game.Close()

	if watch {
		if err := game.Watch(configPath); err != nil {
			log.Printf("failed to watch %s: %v", configPath, err)
		}
	}

	// A background color with zero alpha leaves only the mascot visible.
	return ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true})
}

// newOverlay builds the game around src, which the game then owns. src is
// closed when the game cannot start.
func newOverlay(cfg *config.Config, skin fs.FS, src closableSource, debug bool) (*Game, error) {
	game, err := NewGame(cfg, skin, src, debug)
	if err != nil {
		if cerr := src.Close(); cerr != nil {
			log.Printf("failed to close input source: %v", cerr)
		}
		return nil, fmt.Errorf("failed to start: %w", err)
	}
	game.closer = src
	return game, nil
}
