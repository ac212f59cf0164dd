package widgets

import (
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/wm"
)

func newManager(t *testing.T) *wm.Manager {
	t.Helper()
	m, err := wm.NewManager(config.DefaultConfig(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func newWindow(t *testing.T, m *wm.Manager, x, y, w, h int, content wm.Content) *wm.Window {
	t.Helper()
	opts := m.Defaults()
	opts.X, opts.Y, opts.Width, opts.Height = x, y, w, h
	opts.Content = content
	win, err := wm.New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return win
}

func screenCell(t *testing.T, m *wm.Manager, x, y int) surface.Cell {
	t.Helper()
	c, err := m.Screen().Cell(x, y)
	if err != nil {
		t.Fatalf("Cell(%d,%d): %v", x, y, err)
	}
	return c
}

func screenRow(m *wm.Manager, y, x, width int) string {
	row := []rune(m.Screen().Row(y))
	return strings.TrimRight(string(row[x:x+width]), " ")
}

func press(b input.Button, x, y int) input.MouseButtonDown {
	return input.MouseButtonDown{Button: b, X: x, Y: y}
}

func key(k input.Key) input.KeyPress { return input.KeyPress{Key: k} }

func TestViewportShowsCanvasRegion(t *testing.T) {
	m := newManager(t)
	vp := NewViewport(40, 20)
	w := newWindow(t, m, 0, 0, 12, 7, vp)
	theme := w.Theme()
	vp.Canvas().Print(0, 0, "hello", theme.Foreground, theme.Background)

	m.Step(nil)
	if got := screenCell(t, m, 1, 1).Rune; got != 'h' {
		t.Fatalf("expected 'h' at the interior origin, got %q", got)
	}

	vp.SetOrigin(1, 0)
	if !w.Changed() {
		t.Fatalf("SetOrigin should mark the window changed")
	}
	m.Step(nil)
	if got := screenCell(t, m, 1, 1).Rune; got != 'e' {
		t.Fatalf("expected 'e' after scrolling, got %q", got)
	}
}

func TestViewportClampsOrigin(t *testing.T) {
	m := newManager(t)
	vp := NewViewport(40, 20)
	newWindow(t, m, 0, 0, 12, 7, vp)
	vp.SetOrigin(100, -4)
	m.Step(nil)

	if x, y := vp.Origin(); x != 30 || y != 0 {
		t.Fatalf("expected origin clamped to (30,0), got (%d,%d)", x, y)
	}

	vp.CenterOn(20, 10)
	if x, y := vp.Origin(); x != 15 || y != 8 {
		t.Fatalf("CenterOn: expected (15,8), got (%d,%d)", x, y)
	}
	if !vp.InViewBounds(20, 10) || vp.InViewBounds(0, 0) {
		t.Fatalf("InViewBounds mismatch")
	}
	if !vp.InContents(39, 19) || vp.InContents(40, 0) || vp.InContents(-1, 3) {
		t.Fatalf("InContents mismatch")
	}
}

func TestViewportSmallCanvasLeavesBlank(t *testing.T) {
	m := newManager(t)
	vp := NewViewport(3, 2)
	w := newWindow(t, m, 0, 0, 12, 7, vp)
	vp.Canvas().Fill(vp.Canvas().Bounds(), surface.Cell{Rune: '#', FG: surface.White, BG: surface.Black})
	m.Step(nil)

	if got := screenRow(m, 1, 1, 10); got != "###" {
		t.Fatalf("row 1: got %q", got)
	}
	if got := screenRow(m, 3, 1, 10); got != "" {
		t.Fatalf("row 3 should be blank, got %q", got)
	}

	vp.Clear(w.Theme())
	m.Step(nil)
	if got := screenRow(m, 1, 1, 10); got != "" {
		t.Fatalf("cleared canvas should render blank, got %q", got)
	}
}

func TestScrollViewScrollBy(t *testing.T) {
	sv := NewScrollView(10, 30)
	sv.SetDisplaySize(10, 5)

	if x, y := sv.ScrollBy(0, 100); x != 0 || y != 25 {
		t.Fatalf("expected (0,25), got (%d,%d)", x, y)
	}
	if x, y := sv.ScrollBy(5, -3); x != 0 || y != 22 {
		t.Fatalf("horizontal scrolling is off; expected (0,22), got (%d,%d)", x, y)
	}
	sv.Horizontal = true
	if x, _ := sv.ScrollBy(5, 0); x != 0 {
		t.Fatalf("canvas is no wider than the display; expected x=0, got %d", x)
	}
}

func TestScrollViewProgrammaticScrollRedraws(t *testing.T) {
	m := newManager(t)
	sv := NewScrollView(100, 100)
	w := newWindow(t, m, 0, 0, 10, 6, sv)
	theme := w.Theme()
	for y := 0; y < 100; y++ {
		sv.Canvas().Print(0, y, string(rune('A'+y%26)), theme.Foreground, theme.Background)
	}
	sv.Touch()
	m.Step(nil)
	if got := screenCell(t, m, 1, 1).Rune; got != 'A' {
		t.Fatalf("expected 'A' before scrolling, got %q", got)
	}

	sv.CenterOn(0, 50)
	if x, y := sv.Origin(); x != 0 || y != 48 {
		t.Fatalf("CenterOn: expected (0,48), got (%d,%d)", x, y)
	}
	if !w.Changed() {
		t.Fatalf("CenterOn should mark the window changed")
	}
	m.Step(nil)
	if got := screenCell(t, m, 1, 1).Rune; got != 'W' {
		t.Fatalf("expected row 48 ('W') after CenterOn, got %q", got)
	}

	sv.ScrollBy(0, 1)
	m.Step(nil)
	if got := screenCell(t, m, 1, 1).Rune; got != 'X' {
		t.Fatalf("expected row 49 ('X') after ScrollBy, got %q", got)
	}

	sv.ScrollBy(0, 0)
	if w.Changed() {
		t.Fatalf("a scroll that does not move should leave the window clean")
	}
}

func TestScrollViewMouse(t *testing.T) {
	m := newManager(t)
	sv := NewScrollView(10, 30)
	w := newWindow(t, m, 0, 0, 12, 7, sv)
	m.Step(nil)

	if got := screenCell(t, m, 11, 1).BG; got != w.Theme().ForegroundHighlight {
		t.Fatalf("expected the scroll handle at the top of the right border, got %s", got)
	}

	m.Step(press(input.ButtonPrimary, 11, 4))
	if _, y := sv.Origin(); y != 5 {
		t.Fatalf("clicking below the handle should page down, got y=%d", y)
	}
	m.Step(press(input.WheelUp, 5, 3))
	if _, y := sv.Origin(); y != 4 {
		t.Fatalf("wheel up should scroll one row, got y=%d", y)
	}
	m.Step(press(input.ButtonPrimary, 11, 4))
	if _, y := sv.Origin(); y != 9 {
		t.Fatalf("expected y=9, got %d", y)
	}
	m.Step(press(input.ButtonPrimary, 11, 1))
	if _, y := sv.Origin(); y != 4 {
		t.Fatalf("clicking above the handle should page up, got y=%d", y)
	}

	m.Step(press(input.ButtonPrimary, 5, 0))
	if m.Capturing() != w {
		t.Fatalf("title bar should still start a drag")
	}
}

func listWithItems(labels ...string) *List {
	l := NewList()
	for i, s := range labels {
		l.Add(s, i, rune('a'+i))
	}
	return l
}

func TestListKeyboardNavigation(t *testing.T) {
	m := newManager(t)
	l := listWithItems("one", "two", "three", "four", "five")
	var moved []int
	l.OnCursor = func(it Item) { moved = append(moved, it.Value.(int)) }
	newWindow(t, m, 0, 0, 12, 5, l)
	m.Step(nil)

	tests := []struct {
		key    input.Key
		cursor int
	}{
		{input.KeyDown, 1},
		{input.KeyDown, 2},
		{input.KeyUp, 1},
		{input.KeyEnd, 4},
		{input.KeyHome, 0},
		{input.KeyPgDn, 3},
		{input.KeyPgUp, 0},
		{input.KeyUp, 0},
	}
	for _, tt := range tests {
		m.Step(key(tt.key))
		if l.Cursor() != tt.cursor {
			t.Fatalf("after %s: expected cursor %d, got %d", tt.key, tt.cursor, l.Cursor())
		}
	}
	if want := []int{1, 2, 1, 4, 0, 3, 0}; !reflect.DeepEqual(moved, want) {
		t.Fatalf("OnCursor calls: got %v want %v", moved, want)
	}
}

func TestListScrollsToCursor(t *testing.T) {
	m := newManager(t)
	l := listWithItems("one", "two", "three", "four", "five")
	newWindow(t, m, 0, 0, 12, 5, l)

	l.MoveToEnd()
	m.Step(nil)
	if l.Offset() != 2 {
		t.Fatalf("expected offset 2, got %d", l.Offset())
	}
	if got := screenRow(m, 3, 1, 10); got != "five" {
		t.Fatalf("last row: got %q", got)
	}
	if got := screenCell(t, m, 8, 3).BG; got != m.Theme().BackgroundHighlight {
		t.Fatalf("cursor row should be highlighted across the width, got %s", got)
	}
}

func TestListSelectAndHotkey(t *testing.T) {
	m := newManager(t)
	l := listWithItems("one", "two", "three")
	var selected []string
	l.OnSelect = func(it Item) { selected = append(selected, it.Label) }
	newWindow(t, m, 0, 0, 12, 5, l)
	m.Step(nil)

	m.Step(input.KeyPress{Key: input.KeyRune, Rune: 'c'})
	if l.Cursor() != 2 {
		t.Fatalf("hotkey should jump to item 2, got %d", l.Cursor())
	}
	m.Step(key(input.KeyEnter))
	if !reflect.DeepEqual(selected, []string{"three"}) {
		t.Fatalf("OnSelect: got %v", selected)
	}
}

func TestListUnknownHotkeyFallsThrough(t *testing.T) {
	m := newManager(t)
	l := listWithItems("one")
	w := newWindow(t, m, 0, 0, 12, 5, l)
	if l.HandleKey(w, input.KeyPress{Key: input.KeyRune, Rune: 'z'}) {
		t.Fatalf("unbound rune should not be consumed")
	}
}

func TestListClickSelectsItem(t *testing.T) {
	m := newManager(t)
	l := listWithItems("one", "two", "three")
	newWindow(t, m, 0, 0, 12, 5, l)
	m.Step(nil)

	m.Step(press(input.ButtonPrimary, 2, 2))
	if l.Cursor() != 1 {
		t.Fatalf("expected click to select item 1, got %d", l.Cursor())
	}
	m.Step(press(input.WheelDown, 2, 2))
	if l.Cursor() != 2 {
		t.Fatalf("wheel should move the cursor, got %d", l.Cursor())
	}
}

func TestListWrapsLongItems(t *testing.T) {
	m := newManager(t)
	l := listWithItems("alpha beta gamma", "two")
	l.Wrap = true
	newWindow(t, m, 0, 0, 12, 6, l)
	m.Step(nil)

	if got := screenRow(m, 1, 1, 10); got != "alpha beta" {
		t.Fatalf("row 1: got %q", got)
	}
	if got := screenRow(m, 2, 1, 10); got != "gamma" {
		t.Fatalf("row 2: got %q", got)
	}
	if got := l.ItemAt(1, 2); got != 0 {
		t.Fatalf("wrapped row belongs to item 0, got %d", got)
	}
	if got := l.ItemAt(1, 3); got != 1 {
		t.Fatalf("row 3 is item 1, got %d", got)
	}
	if got := l.ItemAt(1, 4); got != -1 {
		t.Fatalf("empty row should have no item, got %d", got)
	}
}

func TestListClear(t *testing.T) {
	l := listWithItems("one", "two")
	l.MoveTo(1)
	l.Clear()
	if l.Len() != 0 || l.Cursor() != 0 {
		t.Fatalf("expected empty list with cursor 0")
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("empty list has no selection")
	}
	l.Prepend("b", nil, 0)
	l.Prepend("a", nil, 0)
	if got := l.Items(); got[0].Label != "a" || l.Cursor() != 1 {
		t.Fatalf("prepend should keep the cursor on its item, got %v cursor %d", got, l.Cursor())
	}
}

func TestLogDropsOldest(t *testing.T) {
	lg := NewLog(3)
	for _, msg := range []string{"m1", "m2", "m3", "m4", "m5"} {
		lg.Append(msg)
	}
	if got := lg.Messages(); !reflect.DeepEqual(got, []string{"m3", "m4", "m5"}) {
		t.Fatalf("Messages: %v", got)
	}
	if lg.Cursor() != 2 {
		t.Fatalf("log should follow the tail, cursor=%d", lg.Cursor())
	}
	if NewLog(0).MaxMessages != DefaultMaxMessages {
		t.Fatalf("non-positive limit should use the default")
	}
}

func TestLogWriteSplitsLines(t *testing.T) {
	lg := NewLog(10)
	if _, err := lg.Write([]byte("a\nb\npar")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := lg.Write([]byte("tial\r\n\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := lg.Messages(); !reflect.DeepEqual(got, []string{"a", "b", "partial"}) {
		t.Fatalf("Messages: %v", got)
	}
}

func TestLogShowsTail(t *testing.T) {
	m := newManager(t)
	lg := NewLog(20)
	w := newWindow(t, m, 0, 0, 20, 5, lg)
	lg.Attach(w)
	m.Step(nil)

	for i := 0; i < 10; i++ {
		lg.Append("msg " + string(rune('0'+i)))
	}
	if !w.Changed() {
		t.Fatalf("appending should mark the window changed")
	}
	m.Step(nil)
	if got := screenRow(m, 3, 1, 18); got != "msg 9" {
		t.Fatalf("last row: got %q", got)
	}
	if lg.Offset() != 7 {
		t.Fatalf("expected offset 7, got %d", lg.Offset())
	}
}

func TestTextWrapsAndUpdates(t *testing.T) {
	m := newManager(t)
	txt := NewText("alpha beta gamma")
	newWindow(t, m, 0, 0, 13, 5, txt)
	m.Step(nil)
	if got := screenRow(m, 1, 1, 11); got != "alpha beta" {
		t.Fatalf("row 1 = %q", got)
	}
	if got := screenRow(m, 2, 1, 11); got != "gamma" {
		t.Fatalf("row 2 = %q", got)
	}

	txt.Set("changed")
	m.Step(nil)
	if got := screenRow(m, 1, 1, 11); got != "changed" {
		t.Fatalf("after Set row 1 = %q", got)
	}
	if got := screenRow(m, 2, 1, 11); got != "" {
		t.Fatalf("after Set row 2 = %q", got)
	}
}
