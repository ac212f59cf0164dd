package widgets

import (
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
	"github.com/1broseidon/termstack/internal/wm"
	"github.com/mattn/go-runewidth"
)

// Item is one list entry. Hotkey 0 means none.
type Item struct {
	Label  string
	Value  any
	Hotkey rune
}

// List is a scrollable, selectable list of items with a cursor.
type List struct {
	items  []Item
	cursor int
	offset int // first visible item

	// Wrap shows long labels over several rows instead of truncating.
	Wrap bool

	// OnSelect runs when Enter is pressed on an item.
	OnSelect func(Item)
	// OnCursor runs when the cursor moves to a different item.
	OnCursor func(Item)

	owner *wm.Window
	area  tiling.Rect
	rows  []int // item index per rendered row, -1 for none
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Attach ties the list to the window it is shown in so that changes mark
// the window for redraw.
func (l *List) Attach(w *wm.Window) { l.owner = w }

func (l *List) touch() {
	if l.owner != nil {
		l.owner.MarkChanged()
	}
}

// Add appends an item.
func (l *List) Add(label string, value any, hotkey rune) {
	l.items = append(l.items, Item{Label: label, Value: value, Hotkey: hotkey})
	l.touch()
}

// Prepend inserts an item at the top, keeping the cursor on its item.
func (l *List) Prepend(label string, value any, hotkey rune) {
	l.items = append([]Item{{Label: label, Value: value, Hotkey: hotkey}}, l.items...)
	if len(l.items) > 1 {
		l.cursor++
	}
	l.touch()
}

// Clear removes every item.
func (l *List) Clear() {
	l.items = nil
	l.cursor, l.offset = 0, 0
	l.touch()
}

// Len is the number of items.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the items.
func (l *List) Items() []Item { return append([]Item(nil), l.items...) }

// Cursor is the index of the highlighted item.
func (l *List) Cursor() int { return l.cursor }

// Offset is the index of the first visible item.
func (l *List) Offset() int { return l.offset }

// Selected returns the item under the cursor.
func (l *List) Selected() (Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return Item{}, false
	}
	return l.items[l.cursor], true
}

// PageLength is the number of rows shown at the last render.
func (l *List) PageLength() int { return max(l.area.Height, 1) }

// MoveTo puts the cursor on item i, clamped to the list.
func (l *List) MoveTo(i int) {
	old := l.cursor
	l.cursor = tiling.Clamp(i, 0, len(l.items)-1)
	if l.cursor == old {
		return
	}
	l.touch()
	if it, ok := l.Selected(); ok && l.OnCursor != nil {
		l.OnCursor(it)
	}
}

// MoveBy moves the cursor by n items.
func (l *List) MoveBy(n int) { l.MoveTo(l.cursor + n) }

// MoveToEnd puts the cursor on the last item.
func (l *List) MoveToEnd() { l.MoveTo(len(l.items) - 1) }

// itemRows is the number of rows item i needs at width.
func (l *List) itemRows(i, width int) int {
	if !l.Wrap {
		return 1
	}
	return max(surface.TextHeight(width, l.items[i].Label), 1)
}

// scrollToCursor adjusts offset so the cursor item is fully visible.
func (l *List) scrollToCursor(width, height int) {
	l.cursor = tiling.Clamp(l.cursor, 0, len(l.items)-1)
	l.offset = tiling.Clamp(l.offset, 0, max(len(l.items)-1, 0))
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	for l.offset < l.cursor {
		rows := 0
		for i := l.offset; i <= l.cursor; i++ {
			rows += l.itemRows(i, width)
		}
		if rows <= height {
			break
		}
		l.offset++
	}
}

// Render draws the items from offset down, highlighting the cursor.
func (l *List) Render(w *wm.Window, buf *surface.Buffer, area tiling.Rect) error {
	if l.owner == nil {
		l.owner = w
	}
	l.area = area
	l.rows = make([]int, area.Height)
	for i := range l.rows {
		l.rows[i] = -1
	}
	if len(l.items) == 0 || area.Empty() {
		return nil
	}
	l.scrollToCursor(area.Width, area.Height)

	theme := w.Theme()
	row := 0
	for i := l.offset; i < len(l.items) && row < area.Height; i++ {
		fg, bg := theme.Foreground, theme.Background
		if i == l.cursor {
			fg, bg = theme.ForegroundHighlight, theme.BackgroundHighlight
		}
		lines := []string{runewidth.Truncate(l.items[i].Label, area.Width, "")}
		if l.Wrap {
			if lines = surface.Wrap(l.items[i].Label, area.Width); len(lines) == 0 {
				lines = []string{""}
			}
		}
		for _, line := range lines {
			if row >= area.Height {
				break
			}
			y := area.Y + row
			if i == l.cursor {
				buf.Fill(tiling.Rect{X: area.X, Y: y, Width: area.Width, Height: 1}, surface.Blank(fg, bg))
			}
			buf.Print(area.X, y, line, fg, bg)
			l.rows[row] = i
			row++
		}
	}
	return nil
}

// ItemAt returns the index of the item drawn at window-local (lx, ly), or
// -1.
func (l *List) ItemAt(lx, ly int) int {
	if !l.area.Contains(lx, ly) {
		return -1
	}
	row := ly - l.area.Y
	if row >= len(l.rows) {
		return -1
	}
	return l.rows[row]
}

func (l *List) selectCursor() {
	if it, ok := l.Selected(); ok && l.OnSelect != nil {
		l.OnSelect(it)
	}
}

// HandleKey moves the cursor with the navigation keys, jumps to hotkeys
// and selects with Enter.
func (l *List) HandleKey(_ *wm.Window, ev input.KeyPress) bool {
	switch ev.Key {
	case input.KeyUp:
		l.MoveBy(-1)
	case input.KeyDown:
		l.MoveBy(1)
	case input.KeyPgUp:
		l.MoveBy(-l.PageLength())
	case input.KeyPgDn:
		l.MoveBy(l.PageLength())
	case input.KeyHome:
		l.MoveTo(0)
	case input.KeyEnd:
		l.MoveToEnd()
	case input.KeyEnter:
		l.selectCursor()
	case input.KeyRune:
		for i, it := range l.items {
			if it.Hotkey != 0 && it.Hotkey == ev.Rune {
				l.MoveTo(i)
				return true
			}
		}
		return false
	default:
		return false
	}
	return true
}

// HandleMouse moves the cursor to a clicked item, pages on bottom-border
// clicks (primary down, secondary up) and follows the wheel.
func (l *List) HandleMouse(w *wm.Window, ev input.Event, lx, ly int) bool {
	down, ok := ev.(input.MouseButtonDown)
	if !ok {
		return false
	}
	switch down.Button {
	case input.WheelUp:
		l.MoveBy(-1)
		return true
	case input.WheelDown:
		l.MoveBy(1)
		return true
	}
	if w.OnBottomBorder(lx, ly) && w.Has(wm.Framed) {
		switch down.Button {
		case input.ButtonPrimary:
			l.MoveBy(l.PageLength())
			return true
		case input.ButtonSecondary:
			l.MoveBy(-l.PageLength())
			return true
		}
		return false
	}
	if down.Button != input.ButtonPrimary {
		return false
	}
	if i := l.ItemAt(lx, ly); i >= 0 {
		l.MoveTo(i)
		return true
	}
	return false
}

// Decorate draws a position marker on the right border.
func (l *List) Decorate(w *wm.Window, buf *surface.Buffer) {
	if !w.Has(wm.Framed) || len(l.items) == 0 {
		return
	}
	y := 1 + handleOffset(l.cursor, len(l.items)-1, w.Height()-2)
	_ = buf.SetCell(w.Width()-1, y, surface.Blank(w.Theme().ForegroundHighlight, w.Theme().ForegroundHighlight))
}
