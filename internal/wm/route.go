package wm

import (
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/tiling"
)

// dispatch routes one event: captured pointer events go to the grabbed
// window, other pointer events to the window under the pointer and keys
// to the focused window.
func (m *Manager) dispatch(ev input.Event) {
	if rs, ok := ev.(input.Resize); ok {
		m.SetScreenSize(rs.Width, rs.Height)
		return
	}

	if m.grab.phase != PhaseIdle {
		m.dispatchCaptured(ev)
		return
	}

	switch e := ev.(type) {
	case input.KeyPress:
		if m.handleGlobalKey(e) {
			return
		}
		w := m.keyTarget()
		if w == nil {
			return
		}
		w.onKey(e)
	default:
		x, y, ok := input.Position(ev)
		if !ok {
			return
		}
		w := m.WindowAt(x, y)
		if w == nil || !m.acceptsInput(w) {
			return
		}
		w.onMouse(ev, x, y)
	}
}

func (m *Manager) dispatchCaptured(ev input.Event) {
	w, ok := m.windows[m.grab.win]
	if !ok {
		m.grab.reset()
		return
	}
	switch e := ev.(type) {
	case input.MouseMotion:
		switch m.grab.phase {
		case PhaseDragging:
			m.dragTo(w, e.X, e.Y)
		case PhaseResizing:
			m.resizeTo(w, e.X, e.Y)
		}
	case input.MouseButtonUp:
		if e.Button == input.ButtonPrimary {
			m.endGrab()
		}
	}
}

// activeModal is the topmost visible modal window, if any.
func (m *Manager) activeModal() *Window {
	for _, id := range m.stack {
		if w := m.windows[id]; w.Has(Modal) {
			return w
		}
	}
	return nil
}

// keyTarget is the focused window, or while a modal is visible the topmost
// window of the modal's subtree.
func (m *Manager) keyTarget() *Window {
	if w := m.Focused(); w != nil && m.acceptsInput(w) {
		return w
	}
	if m.activeModal() == nil {
		return nil
	}
	for _, id := range m.stack {
		if w := m.windows[id]; w.kind != KindPassThrough && m.acceptsInput(w) {
			return w
		}
	}
	return nil
}

// acceptsInput is false for windows outside the subtree of a visible modal.
func (m *Manager) acceptsInput(w *Window) bool {
	modal := m.activeModal()
	if modal == nil {
		return true
	}
	for cur := w; cur != nil; cur = cur.Parent() {
		if cur == modal {
			return true
		}
	}
	return false
}

// handleGlobalKey moves focus between windows with Alt+arrow.
func (m *Manager) handleGlobalKey(e input.KeyPress) bool {
	if e.Mod&input.ModAlt == 0 {
		return false
	}
	var dir tiling.Direction
	switch e.Key {
	case input.KeyUp:
		dir = tiling.DirUp
	case input.KeyDown:
		dir = tiling.DirDown
	case input.KeyLeft:
		dir = tiling.DirLeft
	case input.KeyRight:
		dir = tiling.DirRight
	default:
		return false
	}
	m.FocusNeighbor(dir)
	return true
}

func (w *Window) onMouse(ev input.Event, sx, sy int) {
	lx, ly := w.mgr.ScreenToWindow(w, sx, sy)

	if down, ok := ev.(input.MouseButtonDown); ok && down.Button == input.ButtonPrimary {
		_ = w.Raise(RedrawAuto)
		if !w.alive || w.hidden {
			return
		}
	}

	if h, ok := w.content.(MouseHandler); ok && h.HandleMouse(w, ev, lx, ly) {
		w.changed = true
		return
	}

	switch e := ev.(type) {
	case input.MouseButtonDown:
		if e.Button != input.ButtonPrimary {
			return
		}
		switch {
		case w.Has(Draggable) && w.OnTopBorder(lx, ly):
			w.mgr.beginGrab(w, PhaseDragging, sx)
		case w.Has(Resizable) && w.OnResizeCorner(lx, ly):
			w.mgr.beginGrab(w, PhaseResizing, sx)
		}
	case input.MouseButtonUp:
		if e.Button == input.ButtonPrimary && w.Has(Closable) && w.OnCloseCorner(lx, ly) {
			_ = w.Hide()
		}
	}
}

func (w *Window) onKey(e input.KeyPress) {
	if h, ok := w.content.(KeyHandler); ok && h.HandleKey(w, e) {
		w.changed = true
		return
	}
	if e.Key == input.KeyEscape && w.Has(CloseOnEscape) {
		_ = w.Hide()
	}
}
