package input

import "github.com/veandco/go-sdl2/sdl"

// Key identifies a key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeySpace:   "Space",
	KeyEscape:  "Escape",
	KeyF12:     "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is what happened to a key.
type Action int

const (
	Press   Action = iota // Key went down
	Repeat                // Key held, auto-repeat fired
	Release               // Key went up
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Handler receives key events. The frame driver implements it so input can
// be exercised without a live window.
type Handler interface {
	HandleKey(key Key, action Action)
}

// scancodes maps physical SDL keys to viewer keys. Scancodes keep WASD in
// place on non-QWERTY layouts.
var scancodes = map[sdl.Scancode]Key{
	sdl.SCANCODE_W:      KeyW,
	sdl.SCANCODE_A:      KeyA,
	sdl.SCANCODE_S:      KeyS,
	sdl.SCANCODE_D:      KeyD,
	sdl.SCANCODE_UP:     KeyUp,
	sdl.SCANCODE_DOWN:   KeyDown,
	sdl.SCANCODE_LEFT:   KeyLeft,
	sdl.SCANCODE_RIGHT:  KeyRight,
	sdl.SCANCODE_SPACE:  KeySpace,
	sdl.SCANCODE_ESCAPE: KeyEscape,
	sdl.SCANCODE_F12:    KeyF12,
}

// KeyFromScancode translates an SDL scancode.
func KeyFromScancode(sc sdl.Scancode) Key {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return KeyUnknown
}
