package widgets

import (
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
	"github.com/1broseidon/termstack/internal/wm"
)

// Text word-wraps a string into the window interior.
type Text struct {
	text  string
	owner *wm.Window
}

// NewText returns content showing s.
func NewText(s string) *Text { return &Text{text: s} }

// String returns the current text.
func (t *Text) String() string { return t.text }

// Set replaces the text and marks the owning window changed.
func (t *Text) Set(s string) {
	if s == t.text {
		return
	}
	t.text = s
	if t.owner != nil {
		t.owner.MarkChanged()
	}
}

func (t *Text) Render(w *wm.Window, buf *surface.Buffer, area tiling.Rect) error {
	t.owner = w
	buf.PrintRect(area, t.text, w.Theme().Foreground, w.Theme().Background)
	return nil
}
