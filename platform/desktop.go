// Package platform queries the desktop for the cursor, the focused window
// and global key state.
package platform

import (
	"log"
	"sync"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
	hook "github.com/robotn/gohook"

	"github.com/milk9111/bongocat/paw"
)

var _ paw.Source = (*Desktop)(nil)

// Desktop is a paw.Source backed by the running desktop session.
type Desktop struct {
	keys   *KeyState
	events chan hook.Event
	once   sync.Once
}

// NewDesktop starts the global input hook. Close must be called to release
// it.
func NewDesktop() *Desktop {
	d := &Desktop{
		keys:   NewKeyState(),
		events: hook.Start(),
	}
	go d.listen()
	return d
}

func (d *Desktop) listen() {
	for ev := range d.events {
		d.keys.Apply(ev)
	}
	d.keys.Reset()
	log.Printf("platform: input hook stopped")
}

func (d *Desktop) Close() error {
	d.once.Do(hook.End)
	return nil
}

func (d *Desktop) CursorPosition() (x, y int, ok bool) {
	x, y = robotgo.Location()
	return x, y, true
}

func (d *Desktop) FocusedWindow() (paw.Window, bool) {
	pid := robotgo.GetPid()
	if pid == 0 {
		return paw.Window{}, false
	}
	x, y, w, h := robotgo.GetBounds(pid)
	return focusedWindow(robotgo.GetTitle(), x, y, w, h)
}

// focusedWindow reports no window when its bounds could not be read, so the
// mapper falls back to the full desktop.
func focusedWindow(title string, x, y, w, h int) (paw.Window, bool) {
	if w <= 0 || h <= 0 {
		return paw.Window{}, false
	}
	return paw.Window{
		Title:  title,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}, true
}

// DesktopResolution reports the primary display size, falling back to the
// main screen size when no display is enumerated.
func (d *Desktop) DesktopResolution() (w, h int) {
	if screenshot.NumActiveDisplays() > 0 {
		b := screenshot.GetDisplayBounds(0)
		return b.Dx(), b.Dy()
	}
	return robotgo.GetScreenSize()
}

func (d *Desktop) IsKeyPressed(code int) bool {
	return d.keys.IsPressed(code)
}
