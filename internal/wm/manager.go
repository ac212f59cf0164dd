package wm

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

// Opaque is the transparency of a window that fully covers what is below.
const Opaque = 0

// Manager owns every window, the visible stack and the hidden set, and
// composites them onto the screen buffer. It is not safe for concurrent use.
type Manager struct {
	cfg       *config.Config
	log       *slog.Logger
	screen    *surface.Buffer
	presenter surface.Presenter
	now       func() time.Time

	theme   Theme
	desktop surface.Color

	windows map[ID]*Window
	stack   []ID // visible, index 0 topmost
	hidden  []ID
	nextID  ID
	focus   ID

	grab interaction

	// AutoRedraw makes RedrawAuto recomposite immediately.
	AutoRedraw bool
}

// NewManager builds a manager drawing onto screen. A nil screen allocates
// one from cfg.Screen; a nil presenter keeps the manager headless.
func NewManager(cfg *config.Config, screen *surface.Buffer, presenter surface.Presenter, logger *slog.Logger) (*Manager, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	theme, err := ThemeFromConfig(cfg.Theme)
	if err != nil {
		return nil, err
	}
	desktop, err := surface.ParseColor(cfg.Theme.Desktop)
	if err != nil {
		return nil, fmt.Errorf("theme.desktop: %w", err)
	}
	if screen == nil {
		screen = surface.NewBuffer(cfg.Screen.Width, cfg.Screen.Height)
	}

	m := &Manager{
		cfg:        cfg,
		log:        logger,
		screen:     screen,
		presenter:  presenter,
		now:        time.Now,
		theme:      theme,
		desktop:    desktop,
		windows:    make(map[ID]*Window),
		AutoRedraw: cfg.AutoRedraw,
	}
	m.paintBackground(screen.Bounds())
	return m, nil
}

// SetClock replaces the time source used by the damage pass.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config { return m.cfg }

// Logger returns the manager's logger.
func (m *Manager) Logger() *slog.Logger { return m.log }

// Screen returns the composited screen buffer.
func (m *Manager) Screen() *surface.Buffer { return m.screen }

func (m *Manager) ScreenWidth() int  { return m.screen.Width() }
func (m *Manager) ScreenHeight() int { return m.screen.Height() }

// Theme returns the default window theme.
func (m *Manager) Theme() Theme { return m.theme }

// Defaults returns Options carrying the configured window defaults.
func (m *Manager) Defaults() Options {
	d := m.cfg.WindowDefaults
	var flags Flags
	set := func(on bool, f Flags) {
		if on {
			flags |= f
		}
	}
	set(d.Framed, Framed)
	set(d.Resizable, Resizable)
	set(d.Draggable, Draggable)
	set(d.Closable, Closable)
	set(d.CloseOnEscape, CloseOnEscape)
	set(d.RaiseChildren, RaiseChildren)
	set(d.AutoRedraw, AutoRedraw)
	return Options{
		Manager:               m,
		Flags:                 flags,
		RedrawInterval:        d.RedrawInterval(),
		Transparency:          d.Transparency,
		TransparencyUnfocused: d.TransparencyUnfocused,
	}
}

func (m *Manager) resolveGeometry(x, y, width, height int) (int, int, int, int) {
	sw, sh := m.ScreenWidth(), m.ScreenHeight()
	if width <= 0 {
		width = sw + width
	}
	if height <= 0 {
		height = sh + height
	}
	if x < 0 {
		x = sw + x
	}
	if y < 0 {
		y = sh + y
	}
	return x, y, width, height
}

func (m *Manager) register(w *Window, hidden bool) {
	m.nextID++
	w.id = m.nextID
	m.windows[w.id] = w
	if hidden {
		w.hidden = true
		m.hidden = prependID(m.hidden, w.id)
	} else {
		w.touch()
		m.insertVisible(w)
		m.refreshFocus()
	}
	m.log.Debug("window created", "id", w.id, "title", w.title, "rect", w.Rect(), "hidden", hidden)
}

// Window looks up a live window by ID.
func (m *Manager) Window(id ID) (*Window, error) {
	w, ok := m.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, id)
	}
	return w, nil
}

// Len is the number of live windows.
func (m *Manager) Len() int { return len(m.windows) }

// Stack returns the visible windows, topmost first.
func (m *Manager) Stack() []*Window { return m.lookup(m.stack) }

// HiddenWindows returns the hidden set, most recently hidden first.
func (m *Manager) HiddenWindows() []*Window { return m.lookup(m.hidden) }

func (m *Manager) lookup(ids []ID) []*Window {
	out := make([]*Window, 0, len(ids))
	for _, id := range ids {
		if w, ok := m.windows[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Top returns the topmost visible window, or nil.
func (m *Manager) Top() *Window {
	if len(m.stack) == 0 {
		return nil
	}
	return m.windows[m.stack[0]]
}

// Focused returns the topmost visible window that can take input.
func (m *Manager) Focused() *Window {
	if m.focus == 0 {
		return nil
	}
	return m.windows[m.focus]
}

func (m *Manager) focusCandidate() ID {
	for _, id := range m.stack {
		if m.windows[id].kind != KindPassThrough {
			return id
		}
	}
	return 0
}

// refreshFocus marks the old and new focused windows changed when focus
// moves so their frames are redrawn.
func (m *Manager) refreshFocus() {
	next := m.focusCandidate()
	if next == m.focus {
		return
	}
	if old, ok := m.windows[m.focus]; ok {
		old.changed = true
	}
	if w, ok := m.windows[next]; ok {
		w.changed = true
	}
	m.focus = next
}

// ScreenToWindow converts screen coordinates to w-local ones.
func (m *Manager) ScreenToWindow(w *Window, sx, sy int) (int, int) {
	return sx - w.x, sy - w.y
}

// WindowAt returns the topmost visible window containing (sx, sy) that
// accepts input, or nil.
func (m *Manager) WindowAt(sx, sy int) *Window {
	for _, id := range m.stack {
		w := m.windows[id]
		if w.kind == KindPassThrough {
			continue
		}
		if w.Contains(sx, sy) {
			return w
		}
	}
	return nil
}

// SetScreenSize reallocates the screen and recomposites everything.
func (m *Manager) SetScreenSize(width, height int) {
	if width == m.ScreenWidth() && height == m.ScreenHeight() {
		return
	}
	m.cancelGrab()
	m.screen = surface.NewBuffer(width, height)
	m.RepaintAll()
	m.log.Debug("screen resized", "width", width, "height", height)
}

// Step handles one input event (nil for a plain tick), runs the damage
// pass and flushes the screen once.
func (m *Manager) Step(ev input.Event) {
	if ev != nil {
		m.dispatch(ev)
	}
	m.damagePass()
	m.Flush()
}

// Flush presents the screen's dirty region.
func (m *Manager) Flush() {
	if m.presenter == nil {
		return
	}
	if err := m.presenter.Present(m.screen); err != nil {
		m.log.Warn("present failed", "err", err)
	}
}

// Place returns an origin for a width×height window that avoids visible
// windows when possible.
func (m *Manager) Place(width, height int) (int, int) {
	avoid := make([]tiling.Rect, 0, len(m.stack))
	for _, w := range m.Stack() {
		if w.kind == KindPlain {
			avoid = append(avoid, w.Rect())
		}
	}
	return tiling.ChooseOrigin(m.screen.Bounds(), avoid, width, height, 1)
}

func prependID(ids []ID, id ID) []ID {
	ids = append(ids, 0)
	copy(ids[1:], ids)
	ids[0] = id
	return ids
}

func removeID(ids []ID, id ID) ([]ID, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

func indexOf(ids []ID, id ID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
