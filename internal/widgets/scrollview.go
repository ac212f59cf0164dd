package widgets

import (
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/wm"
)

// ScrollView is a Viewport with scroll handles on the frame. Clicking the
// scroll border on either side of the handle pages; the wheel scrolls by
// one row.
type ScrollView struct {
	*Viewport
	Vertical   bool
	Horizontal bool
}

// NewScrollView returns a vertically scrolling view onto a width×height
// canvas.
func NewScrollView(width, height int) *ScrollView {
	return &ScrollView{Viewport: NewViewport(width, height), Vertical: true}
}

// ScrollBy moves the view by (dx, dy) within the canvas and returns the
// new origin.
func (s *ScrollView) ScrollBy(dx, dy int) (int, int) {
	ox, oy := s.viewX, s.viewY
	if s.Horizontal {
		s.viewX += dx
	}
	if s.Vertical {
		s.viewY += dy
	}
	s.clamp()
	if s.viewX != ox || s.viewY != oy {
		s.Touch()
	}
	return s.viewX, s.viewY
}

// handleOffset maps pos in [0, limit] onto a track of n cells.
func handleOffset(pos, limit, n int) int {
	if limit <= 0 || n <= 1 {
		return 0
	}
	return min(pos*(n-1)/limit, n-1)
}

// pageStep is one page toward the clicked side of the handle.
func pageStep(at, handle, page int) int {
	page = max(page, 1)
	switch {
	case at < handle:
		return -page
	case at > handle:
		return page
	}
	return 0
}

func (s *ScrollView) vHandle(w *wm.Window) int {
	_, my := s.maxOrigin()
	return 1 + handleOffset(s.viewY, my, w.Height()-2)
}

func (s *ScrollView) hHandle(w *wm.Window) int {
	mx, _ := s.maxOrigin()
	return 1 + handleOffset(s.viewX, mx, w.Width()-2)
}

// Decorate draws the handles over the frame.
func (s *ScrollView) Decorate(w *wm.Window, buf *surface.Buffer) {
	if !w.Has(wm.Framed) {
		return
	}
	handle := surface.Blank(w.Theme().ForegroundHighlight, w.Theme().ForegroundHighlight)
	if s.Vertical {
		_ = buf.SetCell(w.Width()-1, s.vHandle(w), handle)
	}
	if s.Horizontal {
		_ = buf.SetCell(s.hHandle(w), w.Height()-1, handle)
	}
}

// HandleMouse pages on scroll-border clicks and scrolls on the wheel.
func (s *ScrollView) HandleMouse(w *wm.Window, ev input.Event, lx, ly int) bool {
	down, ok := ev.(input.MouseButtonDown)
	if !ok {
		return false
	}
	switch down.Button {
	case input.WheelUp:
		s.ScrollBy(0, -1)
		return true
	case input.WheelDown:
		s.ScrollBy(0, 1)
		return true
	case input.ButtonPrimary:
	default:
		return false
	}
	if !w.Has(wm.Framed) {
		return false
	}
	switch {
	case s.Vertical && w.OnRightBorder(lx, ly):
		s.ScrollBy(0, pageStep(ly, s.vHandle(w), s.viewH))
		return true
	case s.Horizontal && w.OnBottomBorder(lx, ly):
		s.ScrollBy(pageStep(lx, s.hHandle(w), s.viewW), 0)
		return true
	}
	return false
}
