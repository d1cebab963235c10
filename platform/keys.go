package platform

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// Mouse buttons share the key code space with the keyboard, using the
// Windows virtual key codes for the buttons.
const (
	MouseLeft   = 1
	MouseRight  = 2
	MouseMiddle = 4
)

// gohook reports libuiohook buttons as 1 = left, 2 = right, 3 = middle.
var buttonCodes = map[uint16]int{
	1: MouseLeft,
	2: MouseRight,
	3: MouseMiddle,
}

// KeyState is the set of currently held key codes, written by the hook
// goroutine and read from the frame thread.
type KeyState struct {
	mu      sync.RWMutex
	pressed map[int]bool
}

func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[int]bool)}
}

// Apply folds one hook event into the set. gohook names its kinds after
// libuiohook's enum order, so KeyHold and MouseHold are the press events
// and KeyUp and MouseDown are the releases.
func (k *KeyState) Apply(ev hook.Event) {
	code, down, ok := eventCode(ev)
	if !ok {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if down {
		k.pressed[code] = true
	} else {
		delete(k.pressed, code)
	}
}

func (k *KeyState) IsPressed(code int) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.pressed[code]
}

// Reset forgets every held key. Used when the hook stops, since releases
// that happen afterwards are never seen.
func (k *KeyState) Reset() {
	k.mu.Lock()
	clear(k.pressed)
	k.mu.Unlock()
}

func eventCode(ev hook.Event) (code int, down bool, ok bool) {
	switch ev.Kind {
	case hook.KeyHold:
		return int(ev.Rawcode), true, true
	case hook.KeyUp:
		return int(ev.Rawcode), false, true
	case hook.MouseHold:
		code, ok = buttonCodes[ev.Button]
		return code, true, ok
	case hook.MouseDown:
		code, ok = buttonCodes[ev.Button]
		return code, false, ok
	}
	return 0, false, false
}
