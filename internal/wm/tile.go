package wm

import (
	"fmt"
	"sort"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/tiling"
)

// tileable returns visible, resizable, top-level plain windows in creation
// order.
func (m *Manager) tileable() []*Window {
	var out []*Window
	for _, w := range m.Stack() {
		if w.kind == KindPlain && w.parent == 0 && w.Has(Resizable) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Tile arranges the tileable windows with layout and repaints the screen.
// Windows beyond the layout's capacity keep their geometry. It returns the
// number of windows placed.
func (m *Manager) Tile(layout *config.Layout, gap int) (int, error) {
	m.cancelGrab()
	ws := m.tileable()
	if len(ws) == 0 {
		return 0, nil
	}
	rects, err := tiling.Arrange(len(ws), m.screen.Bounds(), layout, gap)
	if err != nil {
		return 0, fmt.Errorf("tile %d windows: %w", len(ws), err)
	}
	for i, r := range rects {
		w := ws[i]
		w.setPosition(r.X, r.Y)
		if r.Width >= MinSize && r.Height >= MinSize {
			w.setSize(r.Width, r.Height)
		}
		w.changed = true
	}
	for _, w := range m.Stack() {
		if err := w.prepare(); err != nil {
			m.log.Warn("prepare failed", "id", w.id, "err", err)
		}
	}
	m.RepaintAll()
	m.log.Debug("windows tiled", "count", len(rects), "mode", layout.Mode)
	return len(rects), nil
}

// FocusNeighbor raises the plain window nearest the focused one in dir.
func (m *Manager) FocusNeighbor(dir tiling.Direction) *Window {
	var cands []*Window
	for _, w := range m.Stack() {
		if w.kind == KindPlain && m.acceptsInput(w) {
			cands = append(cands, w)
		}
	}
	if len(cands) < 2 {
		return m.Focused()
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].id < cands[j].id })

	current := -1
	rects := make([]tiling.Rect, len(cands))
	for i, w := range cands {
		rects[i] = w.Rect()
		if w.id == m.focus {
			current = i
		}
	}
	if current < 0 {
		current = 0
	}
	next := tiling.Neighbor(current, dir, rects)
	if next < 0 {
		return m.Focused()
	}
	_ = cands[next].Raise(RedrawAuto)
	return cands[next]
}
