package wm

import (
	"fmt"
	"time"

	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

// due reports whether the damage pass should redraw w at now.
func (w *Window) due(now time.Time) bool {
	if w.changed && w.Has(AutoRedraw) {
		return true
	}
	return w.redrawInterval > 0 && now.Sub(w.lastRedraw) > w.redrawInterval
}

// damagePass redraws every due window, bottom of the stack first. A window
// that fails or panics is logged and skipped.
func (m *Manager) damagePass() {
	now := m.now()
	ids := append([]ID(nil), m.stack...)
	for i := len(ids) - 1; i >= 0; i-- {
		w, ok := m.windows[ids[i]]
		if !ok || w.hidden || !w.due(now) {
			continue
		}
		if err := m.redrawWindow(w, now); err != nil {
			m.log.Warn("window redraw failed", "id", w.id, "title", w.title, "err", err)
		}
	}
}

// redrawWindow prepares w and recomposites its rectangle. The changed flag
// is cleared and the time stamped even on failure so a broken window does
// not fail again every tick until it next changes.
func (m *Manager) redrawWindow(w *Window, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in window %d: %v", w.id, r)
		}
		w.changed = false
		w.lastRedraw = now
	}()
	if err := w.prepare(); err != nil {
		return err
	}
	m.recomposite(w)
	return nil
}

// recomposite draws w and the windows overlying it, clipped to w. When w
// is not opaque the whole area is rebuilt from the background up.
func (m *Manager) recomposite(w *Window) {
	clip := w.Rect()
	if !w.opaque() {
		m.repaintRegion(clip)
		return
	}
	m.paint(w, clip)
	over := w.WindowsOverlying()
	for i := len(over) - 1; i >= 0; i-- {
		m.paint(over[i], clip)
	}
}

// repaintRegion rebuilds r from the desktop colour and every visible window
// intersecting it, bottom first.
func (m *Manager) repaintRegion(r tiling.Rect) {
	r = r.Intersect(m.screen.Bounds())
	if r.Empty() {
		return
	}
	m.paintBackground(r)
	for i := len(m.stack) - 1; i >= 0; i-- {
		w := m.windows[m.stack[i]]
		if w.Rect().Intersects(r) {
			m.paint(w, r)
		}
	}
}

// RepaintAll rebuilds the whole screen.
func (m *Manager) RepaintAll() {
	m.repaintRegion(m.screen.Bounds())
}

func (m *Manager) paintBackground(r tiling.Rect) {
	m.screen.Fill(r, m.desktopCell())
}

func (m *Manager) desktopCell() surface.Cell {
	return surface.Blank(m.theme.Foreground, m.desktop)
}

// paint blends the part of w inside clip onto the screen.
func (m *Manager) paint(w *Window, clip tiling.Rect) {
	area := clip.Intersect(w.Rect()).Intersect(m.screen.Bounds())
	if area.Empty() {
		return
	}
	a := w.alpha()
	w.buf.Blit(m.screen, area.Translate(-w.x, -w.y), area.X, area.Y, a, a)
}
