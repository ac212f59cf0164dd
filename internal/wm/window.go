package wm

import (
	"fmt"
	"sort"
	"time"

	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

// MinSize is the smallest width or height a window may have.
const MinSize = 3

// ID addresses a window in its manager's registry. 0 is never assigned.
type ID uint64

// Kind is the window variant.
type Kind int

const (
	// KindPlain windows stack normally and receive input.
	KindPlain Kind = iota
	// KindPassThrough windows are drawn but never receive input; events
	// fall through to the window below.
	KindPassThrough
	// KindBackground windows stay beneath every plain window.
	KindBackground
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPassThrough:
		return "pass-through"
	case KindBackground:
		return "background"
	}
	return "unknown"
}

// ParseKind maps a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "plain":
		return KindPlain, nil
	case "pass-through", "ghost":
		return KindPassThrough, nil
	case "background":
		return KindBackground, nil
	}
	return KindPlain, fmt.Errorf("unknown window kind %q", s)
}

// Flags are window capabilities.
type Flags uint16

const (
	Framed Flags = 1 << iota
	Resizable
	Draggable
	Closable
	CloseOnEscape
	Ephemeral // destroyed when hidden
	Modal     // input outside the window's subtree is dropped
	RaiseChildren
	AutoRedraw
)

// Options configures New. Start from Manager.Defaults to pick up the
// configured window defaults.
type Options struct {
	Manager *Manager
	Parent  *Window

	// Negative X/Y are measured from the right/bottom screen edge.
	// Non-positive Width/Height are the screen size minus |n|.
	X, Y          int
	Width, Height int

	Title          string
	Hidden         bool
	Kind           Kind
	Flags          Flags
	RedrawInterval time.Duration
	Transparency   int // focused, 0 (opaque) to 100
	// TransparencyUnfocused applies while another window has focus.
	TransparencyUnfocused int
	Theme                 *Theme
	Content               Content
}

// Window is a stacked panel with its own cell buffer. Relations to other
// windows are IDs into the manager registry.
type Window struct {
	id  ID
	mgr *Manager

	parent   ID
	children []ID
	touching map[ID]struct{}

	x, y          int
	width, height int

	title string
	kind  Kind
	flags Flags
	theme Theme

	redrawInterval        time.Duration
	transparency          int
	transparencyUnfocused int

	buf     *surface.Buffer
	content Content

	hidden     bool
	alive      bool
	changed    bool
	destroying bool
	lastRedraw time.Time
}

// New creates a window and registers it with the manager, taken from
// opts.Manager or else from opts.Parent.
func New(opts Options) (*Window, error) {
	m := opts.Manager
	if m == nil && opts.Parent != nil {
		m = opts.Parent.mgr
	}
	if m == nil {
		return nil, ErrConfiguration
	}
	if opts.Parent != nil && !opts.Parent.alive {
		return nil, fmt.Errorf("parent: %w", ErrDestroyed)
	}

	x, y, width, height := m.resolveGeometry(opts.X, opts.Y, opts.Width, opts.Height)
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}

	theme := m.theme
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	w := &Window{
		mgr:                   m,
		touching:              make(map[ID]struct{}),
		x:                     x,
		y:                     y,
		width:                 width,
		height:                height,
		title:                 opts.Title,
		kind:                  opts.Kind,
		flags:                 opts.Flags,
		theme:                 theme,
		redrawInterval:        opts.RedrawInterval,
		transparency:          clampPercent(opts.Transparency),
		transparencyUnfocused: clampPercent(opts.TransparencyUnfocused),
		buf:                   surface.NewBuffer(width, height),
		content:               opts.Content,
		alive:                 true,
		changed:               true,
	}
	w.buf.Fill(w.buf.Bounds(), theme.Blank())
	if opts.Parent != nil {
		w.parent = opts.Parent.id
	}

	m.register(w, opts.Hidden)
	if opts.Parent != nil {
		opts.Parent.children = append(opts.Parent.children, w.id)
	}
	return w, nil
}

func clampPercent(v int) int { return tiling.Clamp(v, 0, 100) }

// ID returns the registry ID.
func (w *Window) ID() ID { return w.id }

// Manager returns the owning manager.
func (w *Window) Manager() *Manager { return w.mgr }

func (w *Window) X() int      { return w.x }
func (w *Window) Y() int      { return w.y }
func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Right is the last column covered by the window.
func (w *Window) Right() int { return w.x + w.width - 1 }

// Bottom is the last row covered by the window.
func (w *Window) Bottom() int { return w.y + w.height - 1 }

// Rect is the window's screen rectangle.
func (w *Window) Rect() tiling.Rect {
	return tiling.Rect{X: w.x, Y: w.y, Width: w.width, Height: w.height}
}

// Interior is the local content rectangle, inset by the frame if any.
func (w *Window) Interior() tiling.Rect {
	if w.Has(Framed) {
		return tiling.Rect{X: 1, Y: 1, Width: w.width - 2, Height: w.height - 2}
	}
	return tiling.Rect{Width: w.width, Height: w.height}
}

func (w *Window) Title() string { return w.title }
func (w *Window) Kind() Kind     { return w.kind }
func (w *Window) Theme() Theme   { return w.theme }
func (w *Window) Hidden() bool   { return w.hidden }
func (w *Window) Alive() bool    { return w.alive }
func (w *Window) Changed() bool  { return w.changed }

// LastRedraw is when the damage pass last drew the window.
func (w *Window) LastRedraw() time.Time { return w.lastRedraw }

// Content returns the content provider, or nil.
func (w *Window) Content() Content { return w.content }

// Buffer exposes the window's backing buffer.
func (w *Window) Buffer() *surface.Buffer { return w.buf }

// Has reports whether all of f are set.
func (w *Window) Has(f Flags) bool { return w.flags&f == f }

// SetFlags turns f on or off.
func (w *Window) SetFlags(f Flags, on bool) {
	if on {
		w.flags |= f
	} else {
		w.flags &^= f
	}
	w.changed = true
}

// SetTitle changes the frame title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.changed = true
}

// SetTheme replaces the window colours.
func (w *Window) SetTheme(t Theme) {
	w.theme = t
	w.changed = true
}

// SetContent replaces the content provider.
func (w *Window) SetContent(c Content) {
	w.content = c
	w.changed = true
}

// SetRedrawInterval sets the forced redraw period; 0 disables it.
func (w *Window) SetRedrawInterval(d time.Duration) { w.redrawInterval = d }

// RedrawInterval returns the forced redraw period.
func (w *Window) RedrawInterval() time.Duration { return w.redrawInterval }

// SetTransparency sets focused and unfocused transparency percentages.
func (w *Window) SetTransparency(focused, unfocused int) {
	w.transparency = clampPercent(focused)
	w.transparencyUnfocused = clampPercent(unfocused)
	w.changed = true
}

// MarkChanged flags the window for the next damage pass.
func (w *Window) MarkChanged() { w.changed = true }

// Parent returns the owning window, or nil.
func (w *Window) Parent() *Window {
	if w.parent == 0 {
		return nil
	}
	return w.mgr.windows[w.parent]
}

// Children returns the owned windows in creation order.
func (w *Window) Children() []*Window {
	out := make([]*Window, 0, len(w.children))
	for _, id := range w.children {
		if c, ok := w.mgr.windows[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Touching returns the visible windows whose rectangles intersect this one,
// ordered by ID.
func (w *Window) Touching() []*Window {
	ids := make([]ID, 0, len(w.touching))
	for id := range w.touching {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*Window, 0, len(ids))
	for _, id := range ids {
		if o, ok := w.mgr.windows[id]; ok {
			out = append(out, o)
		}
	}
	return out
}

// IsTouching reports whether o is in the touching set.
func (w *Window) IsTouching(o *Window) bool {
	_, ok := w.touching[o.id]
	return ok
}

// Contains reports whether screen cell (sx, sy) lies in the window.
func (w *Window) Contains(sx, sy int) bool {
	return w.Rect().Contains(sx, sy)
}

// Border classifiers take window-local coordinates.

func (w *Window) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height
}

// OnBorder reports whether (x, y) is any edge cell.
func (w *Window) OnBorder(x, y int) bool {
	return w.inside(x, y) && (x == 0 || y == 0 || x == w.width-1 || y == w.height-1)
}

// OnTopBorder is the title bar and drag handle, corners excluded.
func (w *Window) OnTopBorder(x, y int) bool {
	return y == 0 && x > 0 && x < w.width-1
}

// OnBottomBorder is the bottom edge, corners excluded.
func (w *Window) OnBottomBorder(x, y int) bool {
	return y == w.height-1 && x > 0 && x < w.width-1
}

// OnLeftBorder is the left edge, corners excluded.
func (w *Window) OnLeftBorder(x, y int) bool {
	return x == 0 && y > 0 && y < w.height-1
}

// OnRightBorder is the right edge, corners excluded.
func (w *Window) OnRightBorder(x, y int) bool {
	return x == w.width-1 && y > 0 && y < w.height-1
}

// OnResizeCorner is the bottom-right cell.
func (w *Window) OnResizeCorner(x, y int) bool {
	return x == w.width-1 && y == w.height-1
}

// OnCloseCorner is the top-right cell.
func (w *Window) OnCloseCorner(x, y int) bool {
	return x == w.width-1 && y == 0
}

// Cell reads a cell of the window buffer in local coordinates.
func (w *Window) Cell(x, y int) (surface.Cell, error) {
	if !w.alive {
		return surface.Cell{}, ErrDestroyed
	}
	return w.buf.Cell(x, y)
}

// SetCell writes a cell of the window buffer and marks the window changed.
func (w *Window) SetCell(x, y int, c surface.Cell) error {
	if !w.alive {
		return ErrDestroyed
	}
	if err := w.buf.SetCell(x, y, c); err != nil {
		return err
	}
	w.changed = true
	return nil
}

// Print writes text at local (x, y) in the window's foreground colour.
func (w *Window) Print(x, y int, text string) error {
	if !w.alive {
		return ErrDestroyed
	}
	if !w.inside(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d window", ErrOutOfBounds, x, y, w.width, w.height)
	}
	w.buf.Print(x, y, text, w.theme.Foreground, w.theme.Background)
	w.changed = true
	return nil
}

// Clear blanks the interior.
func (w *Window) Clear() error {
	if !w.alive {
		return ErrDestroyed
	}
	w.buf.Fill(w.Interior(), w.theme.Blank())
	w.changed = true
	return nil
}

// focused reports whether the window currently holds input focus.
func (w *Window) focused() bool {
	return w.mgr.focus == w.id
}

// alpha is the blend factor used when compositing.
func (w *Window) alpha() float64 {
	t := w.transparency
	if !w.focused() {
		t = w.transparencyUnfocused
	}
	return 1 - float64(t)/100
}

func (w *Window) opaque() bool {
	return w.alpha() >= 1
}

// prepare re-renders content and frame into the window buffer.
func (w *Window) prepare() error {
	if w.content != nil {
		area := w.Interior()
		w.buf.Fill(area, w.theme.Blank())
		if err := w.content.Render(w, w.buf, area); err != nil {
			return fmt.Errorf("render %q: %w", w.title, err)
		}
	}
	if w.Has(Framed) {
		style := surface.FrameSingle
		fg := w.theme.Frame
		if w.focused() {
			style = surface.FrameDouble
			fg = w.theme.FrameFocused
		}
		w.buf.FrameTitled(w.buf.Bounds(), style, w.title, fg, w.theme.Title, w.theme.Background)
		if w.Has(Closable) {
			_ = w.buf.SetCell(w.width-1, 0, surface.Cell{Rune: 'X', FG: fg, BG: w.theme.Background})
		}
		if w.Has(Resizable) {
			_ = w.buf.SetCell(w.width-1, w.height-1, surface.Cell{Rune: '+', FG: fg, BG: w.theme.Background})
		}
	}
	if d, ok := w.content.(Decorator); ok {
		d.Decorate(w, w.buf)
	}
	return nil
}

// setPosition moves without repainting.
func (w *Window) setPosition(x, y int) {
	w.untouch()
	w.x, w.y = x, y
	w.touch()
}

// setSize reallocates the buffer, keeping the interior content.
func (w *Window) setSize(width, height int) {
	w.untouch()
	inset := 0
	if w.Has(Framed) {
		inset = 1
	}
	src := tiling.Rect{X: inset, Y: inset, Width: w.width - 2*inset, Height: w.height - 2*inset}
	nb := surface.NewBuffer(width, height)
	nb.Fill(nb.Bounds(), w.theme.Blank())
	w.buf.Blit(nb, src, inset, inset, 1, 1)
	w.buf = nb
	w.width, w.height = width, height
	w.touch()
}

// Move places the top-left corner at screen (x, y). The vacated area is
// repainted and the window itself is drawn by the next damage pass.
func (w *Window) Move(x, y int) error {
	if !w.alive {
		return ErrDestroyed
	}
	if x == w.x && y == w.y {
		return nil
	}
	old := w.Rect()
	w.setPosition(x, y)
	w.changed = true
	if !w.hidden {
		w.mgr.repaintRegion(old)
	}
	return nil
}

// Resize changes the window size. Sizes below 3×3 are ignored.
func (w *Window) Resize(width, height int) error {
	if !w.alive {
		return ErrDestroyed
	}
	if width < MinSize || height < MinSize {
		return nil
	}
	if width == w.width && height == w.height {
		return nil
	}
	old := w.Rect()
	w.setSize(width, height)
	w.changed = true
	if !w.hidden {
		w.mgr.repaintRegion(old)
	}
	return nil
}

// Redraw re-renders the window and recomposites its area now.
func (w *Window) Redraw() error {
	if !w.alive {
		return ErrDestroyed
	}
	if w.hidden {
		return ErrNotVisible
	}
	return w.mgr.redrawWindow(w, w.mgr.now())
}

func (w *Window) String() string {
	return fmt.Sprintf("Window(%d,%d,%d,%d,title=%q)", w.x, w.y, w.width, w.height, w.title)
}
