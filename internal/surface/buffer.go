package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/termstack/internal/tiling"
)

// ErrOutOfBounds is returned for direct cell access outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Cell is one grid position. Rune 0 marks the trailing half of a wide glyph.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Blank returns a space on bg.
func Blank(fg, bg Color) Cell { return Cell{Rune: ' ', FG: fg, BG: bg} }

// Buffer is a fixed W×H grid of cells with a single dirty rectangle.
type Buffer struct {
	width  int
	height int
	cells  []Cell

	dirty    tiling.Rect
	hasDirty bool
}

// NewBuffer allocates a width×height buffer of black spaces.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = Blank(White, Black)
	}
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bounds is the buffer rectangle at the origin.
func (b *Buffer) Bounds() tiling.Rect {
	return tiling.Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Cell returns the cell at (x, y).
func (b *Buffer) Cell(x, y int) (Cell, error) {
	if !b.in(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.cells[y*b.width+x], nil
}

// SetCell writes the cell at (x, y) and marks it dirty.
func (b *Buffer) SetCell(x, y int, c Cell) error {
	if !b.in(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.cells[y*b.width+x] = c
	b.MarkDirty(tiling.Rect{X: x, Y: y, Width: 1, Height: 1})
	return nil
}

// set writes without bounds errors; callers clip first.
func (b *Buffer) set(x, y int, c Cell) {
	if b.in(x, y) {
		b.cells[y*b.width+x] = c
	}
}

func (b *Buffer) at(x, y int) Cell {
	return b.cells[y*b.width+x]
}

// Fill sets every cell of r (clipped to the buffer) to c.
func (b *Buffer) Fill(r tiling.Rect, c Cell) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
	b.MarkDirty(r)
}

// Clear fills the whole buffer with blanks on bg.
func (b *Buffer) Clear(fg, bg Color) {
	b.Fill(b.Bounds(), Blank(fg, bg))
}

// Blit copies src (in b's coordinates) onto dst at (dx, dy). fgAlpha and
// bgAlpha blend the source over the destination; 1 copies, 0 leaves the
// destination channel untouched. A source space under partial fgAlpha keeps
// the destination glyph and fades it toward the source background.
func (b *Buffer) Blit(dst *Buffer, src tiling.Rect, dx, dy int, fgAlpha, bgAlpha float64) {
	src = src.Intersect(b.Bounds())
	if src.Empty() {
		return
	}
	target := tiling.Rect{X: dx, Y: dy, Width: src.Width, Height: src.Height}.Intersect(dst.Bounds())
	if target.Empty() {
		return
	}
	ox := src.X - dx
	oy := src.Y - dy

	for y := target.Y; y < target.Bottom(); y++ {
		for x := target.X; x < target.Right(); x++ {
			s := b.at(x+ox, y+oy)
			if fgAlpha >= 1 && bgAlpha >= 1 {
				dst.cells[y*dst.width+x] = s
				continue
			}
			d := dst.at(x, y)
			out := d
			out.BG = Lerp(d.BG, s.BG, bgAlpha)
			switch {
			case fgAlpha >= 1:
				out.Rune = s.Rune
				out.FG = s.FG
			case fgAlpha <= 0:
			case s.Rune == ' ':
				out.FG = Lerp(d.FG, s.BG, fgAlpha)
			default:
				out.Rune = s.Rune
				out.FG = Lerp(d.FG, s.FG, fgAlpha)
			}
			dst.cells[y*dst.width+x] = out
		}
	}
	dst.MarkDirty(target)
}

// MarkDirty grows the dirty rectangle to cover r.
func (b *Buffer) MarkDirty(r tiling.Rect) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	if !b.hasDirty {
		b.dirty = r
		b.hasDirty = true
		return
	}
	b.dirty, _ = tiling.Union([]tiling.Rect{b.dirty, r})
}

// MarkAllDirty marks the whole buffer.
func (b *Buffer) MarkAllDirty() { b.MarkDirty(b.Bounds()) }

// TakeDirty returns and resets the dirty rectangle.
func (b *Buffer) TakeDirty() (tiling.Rect, bool) {
	r, ok := b.dirty, b.hasDirty
	b.dirty = tiling.Rect{}
	b.hasDirty = false
	return r, ok
}

// Resized returns a new width×height buffer holding this buffer's cells
// from src copied to (dx, dy).
func (b *Buffer) Resized(width, height int, src tiling.Rect, dx, dy int) *Buffer {
	nb := NewBuffer(width, height)
	b.Blit(nb, src, dx, dy, 1, 1)
	return nb
}

// String dumps the glyphs row by row, trimming trailing spaces.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			r := b.at(x, y).Rune
			if r == 0 {
				continue
			}
			line.WriteRune(r)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Row returns row y as a string, wide-glyph tails skipped.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.at(x, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Presenter flushes a buffer to a display.
type Presenter interface {
	Present(b *Buffer) error
}
