package wm

import (
	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

// Content renders a window's interior. area is in window-local
// coordinates and already cleared to the theme background.
type Content interface {
	Render(w *Window, buf *surface.Buffer, area tiling.Rect) error
}

// MouseHandler is implemented by content that wants pointer events.
// lx, ly are window-local. Returning true consumes the event.
type MouseHandler interface {
	HandleMouse(w *Window, ev input.Event, lx, ly int) bool
}

// KeyHandler is implemented by content that wants key events.
// Returning true consumes the event.
type KeyHandler interface {
	HandleKey(w *Window, ev input.KeyPress) bool
}

// Decorator is implemented by content that draws over the frame, such as
// scroll handles.
type Decorator interface {
	Decorate(w *Window, buf *surface.Buffer)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(w *Window, buf *surface.Buffer, area tiling.Rect) error

func (f ContentFunc) Render(w *Window, buf *surface.Buffer, area tiling.Rect) error {
	return f(w, buf, area)
}
