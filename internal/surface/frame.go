package surface

import (
	"github.com/1broseidon/termstack/internal/tiling"
	"github.com/mattn/go-runewidth"
)

// FrameStyle selects the box-drawing set for Frame.
type FrameStyle int

const (
	FrameSingle FrameStyle = iota
	FrameDouble
)

type boxRunes struct {
	h, v, tl, tr, bl, br rune
}

var boxes = map[FrameStyle]boxRunes{
	FrameSingle: {h: '─', v: '│', tl: '┌', tr: '┐', bl: '└', br: '┘'},
	FrameDouble: {h: '═', v: '║', tl: '╔', tr: '╗', bl: '╚', br: '╝'},
}

// Frame draws a border around r with an optional centered title on the
// top edge. The title is truncated to fit between the corners.
func (b *Buffer) Frame(r tiling.Rect, style FrameStyle, title string, fg, bg Color) {
	b.FrameTitled(r, style, title, fg, fg, bg)
}

// FrameTitled is Frame with a separate title colour.
func (b *Buffer) FrameTitled(r tiling.Rect, style FrameStyle, title string, fg, titleFG, bg Color) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	box, ok := boxes[style]
	if !ok {
		box = boxes[FrameSingle]
	}
	cell := func(ch rune) Cell { return Cell{Rune: ch, FG: fg, BG: bg} }

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		b.set(x, r.Y, cell(box.h))
		b.set(x, bottom, cell(box.h))
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.set(r.X, y, cell(box.v))
		b.set(right, y, cell(box.v))
	}
	b.set(r.X, r.Y, cell(box.tl))
	b.set(right, r.Y, cell(box.tr))
	b.set(r.X, bottom, cell(box.bl))
	b.set(right, bottom, cell(box.br))

	if title != "" && r.Width > 4 {
		room := r.Width - 4
		label := runewidth.Truncate(title, room, "")
		w := runewidth.StringWidth(label)
		x := r.X + 1 + (r.Width-2-w-2)/2
		b.set(x, r.Y, cell(' '))
		b.printClipped(x+1, r.Y, right, label, titleFG, bg)
		b.set(x+1+w, r.Y, cell(' '))
	}
	b.MarkDirty(r)
}
