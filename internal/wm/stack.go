package wm

// RedrawMode selects what Raise draws immediately.
type RedrawMode int

const (
	// RedrawAuto is RedrawArea when Manager.AutoRedraw is set, else RedrawNone.
	RedrawAuto RedrawMode = iota
	// RedrawNone leaves drawing to the next damage pass.
	RedrawNone
	// RedrawCopy copies the window buffer straight onto the screen.
	RedrawCopy
	// RedrawArea re-renders and recomposites the window's area.
	RedrawArea
)

func (m *Manager) resolveMode(mode RedrawMode) RedrawMode {
	if mode != RedrawAuto {
		return mode
	}
	if m.AutoRedraw {
		return RedrawArea
	}
	return RedrawNone
}

// bottomBand is the stack index where background windows start.
func (m *Manager) bottomBand() int {
	for i, id := range m.stack {
		if m.windows[id].kind == KindBackground {
			return i
		}
	}
	return len(m.stack)
}

// insertVisible puts w on top of its band.
func (m *Manager) insertVisible(w *Window) {
	at := 0
	if w.kind == KindBackground {
		at = m.bottomBand()
	}
	m.stack = append(m.stack, 0)
	copy(m.stack[at+1:], m.stack[at:])
	m.stack[at] = w.id
}

// Raise moves a visible window to the top of the stack (the top of the
// background band for background windows) and, with RaiseChildren, raises
// its visible children above it.
func (w *Window) Raise(mode RedrawMode) error {
	if !w.alive {
		return ErrDestroyed
	}
	if w.hidden {
		return ErrNotVisible
	}
	m := w.mgr
	if w.changed {
		if err := w.prepare(); err != nil {
			m.log.Warn("prepare failed", "id", w.id, "err", err)
		}
	}
	m.stack, _ = removeID(m.stack, w.id)
	m.insertVisible(w)
	w.changed = true
	m.refreshFocus()

	switch m.resolveMode(mode) {
	case RedrawCopy:
		m.paint(w, w.Rect())
	case RedrawArea:
		if err := m.redrawWindow(w, m.now()); err != nil {
			m.log.Warn("window redraw failed", "id", w.id, "err", err)
		}
	}

	if w.Has(RaiseChildren) {
		for _, c := range w.Children() {
			if c.alive && !c.hidden {
				_ = c.Raise(mode)
			}
		}
	}
	return nil
}

// Hide removes the window from the visible stack and repaints what it
// covered. Hiding a hidden window does nothing. With RaiseChildren the
// children are hidden too; Ephemeral windows are destroyed.
func (w *Window) Hide() error {
	if !w.alive {
		return ErrDestroyed
	}
	if w.hidden {
		return nil
	}
	m := w.mgr
	if m.grab.win == w.id {
		m.cancelGrab()
	}

	area := w.Rect()
	m.stack, _ = removeID(m.stack, w.id)
	w.untouch()
	w.hidden = true
	if indexOf(m.hidden, w.id) < 0 {
		m.hidden = prependID(m.hidden, w.id)
	}
	m.repaintRegion(area)

	if w.Has(RaiseChildren) {
		for _, c := range w.Children() {
			_ = c.Hide()
		}
	}
	m.refreshFocus()
	m.log.Debug("window hidden", "id", w.id)

	if w.Has(Ephemeral) && !w.destroying {
		return w.Destroy()
	}
	return nil
}

// Unhide returns a hidden window to the top of the stack. Unhiding a
// visible window does nothing.
func (w *Window) Unhide() error {
	if !w.alive {
		return ErrDestroyed
	}
	m := w.mgr
	var found bool
	m.hidden, found = removeID(m.hidden, w.id)
	if !found {
		return nil
	}
	w.hidden = false
	w.touch()
	m.insertVisible(w)
	w.changed = true
	m.refreshFocus()
	if err := m.redrawWindow(w, m.now()); err != nil {
		m.log.Warn("window redraw failed", "id", w.id, "err", err)
	}

	if w.Has(RaiseChildren) {
		for _, c := range w.Children() {
			_ = c.Unhide()
		}
	}
	return nil
}

// Destroy hides the window, detaches it from its parent, destroys its
// children and drops it from the registry. The handle is inert afterwards.
func (w *Window) Destroy() error {
	if !w.alive {
		return ErrDestroyed
	}
	m := w.mgr
	w.destroying = true
	if !w.hidden {
		_ = w.Hide()
	}
	if p := w.Parent(); p != nil {
		p.children, _ = removeID(p.children, w.id)
	}
	for _, c := range w.Children() {
		if c.alive {
			_ = c.Destroy()
		}
	}
	w.children = nil
	m.hidden, _ = removeID(m.hidden, w.id)
	m.stack, _ = removeID(m.stack, w.id)
	delete(m.windows, w.id)
	w.alive = false
	if m.focus == w.id {
		m.focus = 0
		m.refreshFocus()
	}
	m.log.Debug("window destroyed", "id", w.id)
	return nil
}

// StackIndex is the window's position in the visible stack, or -1.
func (w *Window) StackIndex() int {
	return indexOf(w.mgr.stack, w.id)
}

// WindowsAbove returns the visible windows above w, topmost first.
func (w *Window) WindowsAbove() []*Window {
	i := w.StackIndex()
	if i < 0 {
		return nil
	}
	return w.mgr.lookup(w.mgr.stack[:i])
}

// WindowsBelow returns the visible windows below w, nearest first.
func (w *Window) WindowsBelow() []*Window {
	i := w.StackIndex()
	if i < 0 {
		return nil
	}
	return w.mgr.lookup(w.mgr.stack[i+1:])
}

// WindowsOverlying returns windows above w that touch it, topmost first.
func (w *Window) WindowsOverlying() []*Window {
	return w.filterTouching(w.WindowsAbove())
}

// WindowsUnderlying returns windows below w that touch it, nearest first.
func (w *Window) WindowsUnderlying() []*Window {
	return w.filterTouching(w.WindowsBelow())
}

func (w *Window) filterTouching(ws []*Window) []*Window {
	out := ws[:0]
	for _, o := range ws {
		if _, ok := w.touching[o.id]; ok {
			out = append(out, o)
		}
	}
	return out
}
