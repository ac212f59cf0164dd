package wm

// touch recomputes w's touching set against every visible window and
// updates both sides.
func (w *Window) touch() {
	if w.hidden {
		return
	}
	r := w.Rect()
	for _, id := range w.mgr.stack {
		if id == w.id {
			continue
		}
		o := w.mgr.windows[id]
		if r.Intersects(o.Rect()) {
			w.touching[id] = struct{}{}
			o.touching[w.id] = struct{}{}
		}
	}
}

// untouch removes w from every touching set, including its own.
func (w *Window) untouch() {
	for id := range w.touching {
		if o, ok := w.mgr.windows[id]; ok {
			delete(o.touching, w.id)
		}
	}
	clear(w.touching)
}
