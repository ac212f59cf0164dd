package wm

import (
	"testing"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.DefaultConfig(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func newWindow(t *testing.T, m *Manager, x, y, w, h int, mutate ...func(*Options)) *Window {
	t.Helper()
	opts := m.Defaults()
	opts.X, opts.Y, opts.Width, opts.Height = x, y, w, h
	for _, fn := range mutate {
		fn(&opts)
	}
	win, err := New(opts)
	if err != nil {
		t.Fatalf("New(%d,%d,%d,%d): %v", x, y, w, h, err)
	}
	return win
}

func withFlags(f Flags) func(*Options) {
	return func(o *Options) { o.Flags = f }
}

func withParent(p *Window) func(*Options) {
	return func(o *Options) {
		o.Manager = nil
		o.Parent = p
	}
}

// fillContent paints the interior with one rune.
func fillContent(r rune) Content {
	return ContentFunc(func(w *Window, buf *surface.Buffer, area tiling.Rect) error {
		buf.Fill(area, surface.Cell{Rune: r, FG: w.Theme().Foreground, BG: w.Theme().Background})
		return nil
	})
}

func withContent(c Content) func(*Options) {
	return func(o *Options) { o.Content = c }
}

func ids(ws []*Window) []ID {
	out := make([]ID, len(ws))
	for i, w := range ws {
		out[i] = w.ID()
	}
	return out
}

func screenRune(t *testing.T, m *Manager, x, y int) rune {
	t.Helper()
	c, err := m.Screen().Cell(x, y)
	if err != nil {
		t.Fatalf("screen cell (%d,%d): %v", x, y, err)
	}
	return c.Rune
}

func checkInvariants(t *testing.T, m *Manager) {
	t.Helper()
	visible := m.Stack()
	seen := make(map[ID]bool)
	for _, w := range visible {
		if seen[w.ID()] {
			t.Fatalf("window %d appears twice in the stack", w.ID())
		}
		seen[w.ID()] = true
		if w.Hidden() {
			t.Fatalf("hidden window %d in visible stack", w.ID())
		}
	}
	for _, w := range m.HiddenWindows() {
		if seen[w.ID()] {
			t.Fatalf("window %d is both visible and hidden", w.ID())
		}
		seen[w.ID()] = true
		if len(w.Touching()) != 0 {
			t.Fatalf("hidden window %d still touches %v", w.ID(), ids(w.Touching()))
		}
	}
	if len(seen) != m.Len() {
		t.Fatalf("registry has %d windows, stacks hold %d", m.Len(), len(seen))
	}
	for i, a := range visible {
		for _, b := range visible[i+1:] {
			want := a.Rect().Intersects(b.Rect())
			if a.IsTouching(b) != want || b.IsTouching(a) != want {
				t.Fatalf("touching(%v,%v): a->b=%v b->a=%v want %v", a, b, a.IsTouching(b), b.IsTouching(a), want)
			}
		}
	}
}
