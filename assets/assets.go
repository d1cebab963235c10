// Package assets loads the mascot sprites from a skin directory.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Dir is where the sprites live inside a skin.
const Dir = "img/osu"

// Sprites is the image set for one device mode.
type Sprites struct {
	Background *ebiten.Image
	Up         *ebiten.Image
	Left       *ebiten.Image
	Right      *ebiten.Image
	Wave       *ebiten.Image
	Smoke      *ebiten.Image

	// Device is the mouse or the tablet, depending on the mode it was
	// loaded for.
	Device *ebiten.Image
}

// Names lists the sprite files in Sprites field order.
func Names(mouse bool) []string {
	bg, device := "tabletbg.png", "tablet.png"
	if mouse {
		bg, device = "mousebg.png", "mouse.png"
	}
	return []string{bg, "up.png", "left.png", "right.png", "wave.png", "smoke.png", device}
}

// Load decodes the sprite set for the device mode and uploads it.
func Load(fsys fs.FS, mouse bool) (*Sprites, error) {
	imgs, err := Decode(fsys, mouse)
	if err != nil {
		return nil, err
	}

	s := &Sprites{}
	dst := []**ebiten.Image{&s.Background, &s.Up, &s.Left, &s.Right, &s.Wave, &s.Smoke, &s.Device}
	for i, img := range imgs {
		*dst[i] = ebiten.NewImageFromImage(img)
	}
	return s, nil
}

// Decode reads every sprite of the set without touching the GPU.
func Decode(fsys fs.FS, mouse bool) ([]image.Image, error) {
	names := Names(mouse)
	imgs := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := DecodeImage(fsys, path.Join(Dir, name))
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// DecodeImage decodes one image by skin-relative path.
func DecodeImage(fsys fs.FS, name string) (image.Image, error) {
	clean := cleanAssetPath(name)
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

func cleanAssetPath(name string) string {
	if name == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(name))
	if idx := strings.LastIndex(s, "/"+Dir+"/"); idx >= 0 {
		return s[idx+1:]
	}
	return strings.TrimPrefix(s, "/")
}
