package input

import "github.com/gdamore/tcell/v2"

// Decoder turns tcell events into Events. tcell reports the current button
// mask on every mouse event, so the decoder diffs it against the previous
// mask to produce distinct press, release and motion events.
type Decoder struct {
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button Button
}{
	{tcell.Button1, ButtonPrimary},
	{tcell.Button2, ButtonSecondary},
	{tcell.Button3, ButtonMiddle},
}

// Decode translates ev. It returns nil for events with no equivalent.
func (d *Decoder) Decode(ev tcell.Event) []Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if k, ok := decodeKey(e); ok {
			return []Event{k}
		}
		return nil
	case *tcell.EventMouse:
		return d.decodeMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []Event{Resize{Width: w, Height: h}}
	}
	return nil
}

func (d *Decoder) decodeMouse(e *tcell.EventMouse) []Event {
	x, y := e.Position()
	mask := e.Buttons()
	var out []Event

	if mask&tcell.WheelUp != 0 {
		out = append(out, MouseButtonDown{Button: WheelUp, X: x, Y: y})
	}
	if mask&tcell.WheelDown != 0 {
		out = append(out, MouseButtonDown{Button: WheelDown, X: x, Y: y})
	}

	moved := x != d.lastX || y != d.lastY
	if moved {
		out = append(out, MouseMotion{X: x, Y: y})
	}
	for _, bm := range buttonMap {
		was := d.buttons&bm.mask != 0
		is := mask&bm.mask != 0
		switch {
		case is && !was:
			out = append(out, MouseButtonDown{Button: bm.button, X: x, Y: y})
		case was && !is:
			out = append(out, MouseButtonUp{Button: bm.button, X: x, Y: y})
		}
	}

	d.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	d.lastX, d.lastY = x, y
	return out
}

var keyMap = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyPgUp:       KeyPgUp,
	tcell.KeyPgDn:       KeyPgDn,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlQ:      KeyCtrlQ,
}

func decodeKey(e *tcell.EventKey) (KeyPress, bool) {
	mod := decodeMod(e.Modifiers())
	if e.Key() == tcell.KeyRune {
		return KeyPress{Key: KeyRune, Rune: e.Rune(), Mod: mod}, true
	}
	k, ok := keyMap[e.Key()]
	if !ok {
		return KeyPress{}, false
	}
	return KeyPress{Key: k, Mod: mod}, true
}

func decodeMod(m tcell.ModMask) Mod {
	var out Mod
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
