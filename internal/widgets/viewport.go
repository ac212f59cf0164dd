// Package widgets provides content providers for wm windows: a viewport
// onto a larger canvas, a scrollable view, a selectable list and a log.
package widgets

import (
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
	"github.com/1broseidon/termstack/internal/wm"
)

// Viewport shows part of a canvas that may be larger than the window.
type Viewport struct {
	canvas *surface.Buffer

	viewX, viewY int
	viewW, viewH int // size of the display area at the last render

	owner *wm.Window
}

// NewViewport allocates a width×height canvas viewed from its origin.
func NewViewport(width, height int) *Viewport {
	return &Viewport{canvas: surface.NewBuffer(width, height)}
}

// Canvas is the buffer content is drawn onto, in canvas coordinates.
func (v *Viewport) Canvas() *surface.Buffer { return v.canvas }

// Origin is the canvas coordinate shown at the top-left of the display.
func (v *Viewport) Origin() (int, int) { return v.viewX, v.viewY }

// Attach ties the viewport to the window it is shown in so that view
// changes mark the window for redraw. Render attaches automatically.
func (v *Viewport) Attach(w *wm.Window) { v.owner = w }

// Touch marks the owning window changed, for callers that draw on the
// canvas directly.
func (v *Viewport) Touch() {
	if v.owner != nil {
		v.owner.MarkChanged()
	}
}

// SetOrigin moves the view. It is clamped to the canvas on the next render.
func (v *Viewport) SetOrigin(x, y int) {
	if x == v.viewX && y == v.viewY {
		return
	}
	v.viewX, v.viewY = x, y
	v.Touch()
}

// SetDisplaySize sets the display area used by CenterOn and InViewBounds
// before the first render.
func (v *Viewport) SetDisplaySize(width, height int) {
	v.viewW, v.viewH = width, height
}

// CenterOn places canvas coordinate (x, y) in the middle of the display.
func (v *Viewport) CenterOn(x, y int) {
	ox, oy := v.viewX, v.viewY
	v.viewX = x - v.viewW/2
	v.viewY = y - v.viewH/2
	v.clamp()
	if v.viewX != ox || v.viewY != oy {
		v.Touch()
	}
}

// InViewBounds reports whether canvas coordinate (x, y) is currently shown.
func (v *Viewport) InViewBounds(x, y int) bool {
	return tiling.Rect{X: v.viewX, Y: v.viewY, Width: v.viewW, Height: v.viewH}.Contains(x, y)
}

// InContents reports whether (x, y) lies on the canvas.
func (v *Viewport) InContents(x, y int) bool {
	return v.canvas.Bounds().Contains(x, y)
}

// Clear blanks the canvas in the window's colours.
func (v *Viewport) Clear(theme wm.Theme) {
	v.canvas.Fill(v.canvas.Bounds(), theme.Blank())
	v.Touch()
}

// ToCanvas converts a window-local coordinate inside area to a canvas one.
func (v *Viewport) ToCanvas(area tiling.Rect, lx, ly int) (int, int) {
	return lx - area.X + v.viewX, ly - area.Y + v.viewY
}

// maxOrigin is the largest origin that keeps the display on the canvas.
func (v *Viewport) maxOrigin() (int, int) {
	return max(v.canvas.Width()-v.viewW, 0), max(v.canvas.Height()-v.viewH, 0)
}

func (v *Viewport) clamp() {
	mx, my := v.maxOrigin()
	v.viewX = tiling.Clamp(v.viewX, 0, mx)
	v.viewY = tiling.Clamp(v.viewY, 0, my)
}

// Render copies the visible part of the canvas into area. A canvas smaller
// than area leaves the rest blank.
func (v *Viewport) Render(w *wm.Window, buf *surface.Buffer, area tiling.Rect) error {
	if v.owner == nil {
		v.owner = w
	}
	v.viewW, v.viewH = area.Width, area.Height
	v.clamp()
	src := tiling.Rect{X: v.viewX, Y: v.viewY, Width: area.Width, Height: area.Height}
	v.canvas.Blit(buf, src, area.X, area.Y, 1, 1)
	return nil
}
