// Package input defines the events the window manager consumes and
// translates tcell events into them.
package input

import "fmt"

// Event is one of MouseButtonDown, MouseButtonUp, MouseMotion, KeyPress or
// Resize.
type Event interface {
	isEvent()
}

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
	WheelUp
	WheelDown
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	case WheelUp:
		return "wheel-up"
	case WheelDown:
		return "wheel-down"
	}
	return "none"
}

// ParseButton maps a button name back to a Button.
func ParseButton(s string) (Button, error) {
	switch s {
	case "", "primary", "left":
		return ButtonPrimary, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	case "middle":
		return ButtonMiddle, nil
	case "wheel-up":
		return WheelUp, nil
	case "wheel-down":
		return WheelDown, nil
	}
	return ButtonNone, fmt.Errorf("unknown button %q", s)
}

// Key is a virtual key code.
type Key int

const (
	KeyRune Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDn
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlQ
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdn",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlQ:     "ctrl+q",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey maps a key name such as "escape" back to a Key.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return KeyRune, fmt.Errorf("unknown key %q", s)
}

// Mod is a modifier bit set.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// MouseButtonDown is a button press at screen cell (X, Y).
type MouseButtonDown struct {
	Button Button
	X, Y   int
}

// MouseButtonUp is a button release at screen cell (X, Y).
type MouseButtonUp struct {
	Button Button
	X, Y   int
}

// MouseMotion is pointer movement to screen cell (X, Y).
type MouseMotion struct {
	X, Y int
}

// KeyPress is a key stroke. Rune is set when Key is KeyRune.
type KeyPress struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// Resize reports a new screen size.
type Resize struct {
	Width, Height int
}

func (MouseButtonDown) isEvent() {}
func (MouseButtonUp) isEvent()   {}
func (MouseMotion) isEvent()     {}
func (KeyPress) isEvent()        {}
func (Resize) isEvent()          {}

// Position returns the pointer position and true for mouse events.
func Position(ev Event) (x, y int, ok bool) {
	switch e := ev.(type) {
	case MouseButtonDown:
		return e.X, e.Y, true
	case MouseButtonUp:
		return e.X, e.Y, true
	case MouseMotion:
		return e.X, e.Y, true
	}
	return 0, 0, false
}
