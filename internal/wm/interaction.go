package wm

import (
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

// Phase is the direct-manipulation state of a window.
type Phase int

const (
	// PhaseIdle means no drag or resize is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means the window follows the pointer.
	PhaseDragging
	// PhaseResizing means the bottom-right corner follows the pointer.
	PhaseResizing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// interaction is the manager's capture state. At most one window is
// dragged or resized at a time, so the two phases are exclusive.
type interaction struct {
	phase   Phase
	win     ID
	offsetX int // pointer column minus window X at grab time
	scratch *surface.Buffer
	swept   tiling.Rect // every rect the window covered since the grab
}

func (g *interaction) reset() {
	*g = interaction{}
}

// Phase returns w's interaction phase.
func (w *Window) Phase() Phase {
	if w.mgr.grab.win == w.id {
		return w.mgr.grab.phase
	}
	return PhaseIdle
}

// Capturing returns the window being dragged or resized, or nil.
func (m *Manager) Capturing() *Window {
	if m.grab.phase == PhaseIdle {
		return nil
	}
	return m.windows[m.grab.win]
}

// snapshotExcept composites every visible window but skip onto a fresh
// screen-sized buffer.
func (m *Manager) snapshotExcept(skip *Window) *surface.Buffer {
	scratch := surface.NewBuffer(m.ScreenWidth(), m.ScreenHeight())
	scratch.Fill(scratch.Bounds(), m.desktopCell())
	for i := len(m.stack) - 1; i >= 0; i-- {
		w := m.windows[m.stack[i]]
		if w == skip {
			continue
		}
		area := w.Rect().Intersect(scratch.Bounds())
		a := w.alpha()
		w.buf.Blit(scratch, area.Translate(-w.x, -w.y), area.X, area.Y, a, a)
	}
	return scratch
}

func (m *Manager) beginGrab(w *Window, phase Phase, pointerX int) {
	// Raising w may have moved focus; the scratch must show the new frames.
	for _, o := range m.Stack() {
		if o != w && !o.changed {
			continue
		}
		if err := o.prepare(); err != nil {
			m.log.Warn("prepare failed", "id", o.id, "err", err)
		}
	}
	m.grab = interaction{
		phase:   phase,
		win:     w.id,
		offsetX: pointerX - w.x,
		scratch: m.snapshotExcept(w),
		swept:   w.Rect(),
	}
	m.grab.scratch.Blit(m.screen, m.screen.Bounds(), 0, 0, 1, 1)
	m.paint(w, w.Rect())
	m.Flush()
	m.log.Debug("grab started", "id", w.id, "phase", phase.String())
}

// restore copies the pre-grab scene back over r.
func (m *Manager) restore(r tiling.Rect) {
	r = r.Intersect(m.screen.Bounds())
	if r.Empty() || m.grab.scratch == nil {
		return
	}
	m.grab.scratch.Blit(m.screen, r, r.X, r.Y, 1, 1)
}

// dragTo moves the captured window so that it follows the pointer, clamped
// to [0, sw-w-1] × [0, sh-h-1].
func (m *Manager) dragTo(w *Window, px, py int) {
	nx := tiling.Clamp(px-m.grab.offsetX, 0, m.ScreenWidth()-w.width-1)
	ny := tiling.Clamp(py, 0, m.ScreenHeight()-w.height-1)
	if nx == w.x && ny == w.y {
		return
	}
	m.restore(w.Rect())
	w.setPosition(nx, ny)
	m.sweep(w)
	m.paint(w, w.Rect())
	m.Flush()
}

// resizeTo moves the captured window's bottom-right corner to the pointer,
// clamped between the top-left corner and the screen edge.
func (m *Manager) resizeTo(w *Window, px, py int) {
	brx := tiling.Clamp(px, w.x, m.ScreenWidth()-1)
	bry := tiling.Clamp(py, w.y, m.ScreenHeight()-1)
	if brx == w.Right() && bry == w.Bottom() {
		return
	}
	width, height := brx-w.x+1, bry-w.y+1
	if width < MinSize || height < MinSize {
		return
	}
	m.restore(w.Rect())
	w.setSize(width, height)
	m.sweep(w)
	if err := w.prepare(); err != nil {
		m.log.Warn("prepare failed", "id", w.id, "err", err)
	}
	m.paint(w, w.Rect())
	m.Flush()
}

func (m *Manager) sweep(w *Window) {
	m.grab.swept, _ = tiling.Union([]tiling.Rect{m.grab.swept, w.Rect()})
}

// endGrab returns the captured window to idle and recomposites the area it
// passed over.
func (m *Manager) endGrab() {
	w, ok := m.windows[m.grab.win]
	phase := m.grab.phase
	swept := m.grab.swept
	m.grab.reset()
	m.repaintRegion(swept)
	if ok {
		w.changed = true
		m.log.Debug("grab finished", "id", w.id, "phase", phase.String(), "rect", w.Rect())
	}
}

// cancelGrab drops the capture state without touching the window.
func (m *Manager) cancelGrab() {
	m.grab.reset()
}
