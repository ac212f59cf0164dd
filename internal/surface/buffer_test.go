package surface

import (
	"errors"
	"strings"
	"testing"

	"github.com/1broseidon/termstack/internal/tiling"
)

func TestCellOutOfBounds(t *testing.T) {
	b := NewBuffer(4, 3)
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"past width", 4, 0},
		{"past height", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Cell(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Cell: expected ErrOutOfBounds, got %v", err)
			}
			if err := b.SetCell(tt.x, tt.y, Blank(White, Black)); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("SetCell: expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestSetCellMarksDirty(t *testing.T) {
	b := NewBuffer(10, 5)
	if _, ok := b.TakeDirty(); ok {
		t.Fatalf("fresh buffer should not be dirty")
	}
	if err := b.SetCell(2, 1, Cell{Rune: 'a'}); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if err := b.SetCell(5, 3, Cell{Rune: 'b'}); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	r, ok := b.TakeDirty()
	if !ok {
		t.Fatalf("expected dirty region")
	}
	want := tiling.Rect{X: 2, Y: 1, Width: 4, Height: 3}
	if r != want {
		t.Fatalf("expected dirty %+v, got %+v", want, r)
	}
	if _, ok := b.TakeDirty(); ok {
		t.Fatalf("TakeDirty should reset")
	}
}

func TestFillClipsToBuffer(t *testing.T) {
	b := NewBuffer(5, 2)
	b.Fill(tiling.Rect{X: 3, Y: -1, Width: 10, Height: 10}, Cell{Rune: '#'})
	if got := b.String(); got != "   ##\n   ##" {
		t.Fatalf("unexpected fill result:\n%s", got)
	}
}

func TestBlitOpaqueCopiesAndClips(t *testing.T) {
	src := NewBuffer(3, 2)
	src.Fill(src.Bounds(), Cell{Rune: 'x', FG: White, BG: Black})
	dst := NewBuffer(4, 3)

	src.Blit(dst, src.Bounds(), 2, 2, 1, 1)
	want := "\n\n  xx"
	if got := dst.String(); got != want {
		t.Fatalf("expected %q, got %q", want, dst.String())
	}
}

func TestBlitBlendsColours(t *testing.T) {
	red := RGB(200, 0, 0)
	src := NewBuffer(1, 1)
	src.Fill(src.Bounds(), Cell{Rune: ' ', FG: White, BG: red})
	dst := NewBuffer(1, 1)
	dst.Fill(dst.Bounds(), Cell{Rune: 'g', FG: White, BG: Black})

	src.Blit(dst, src.Bounds(), 0, 0, 0.5, 0.5)
	c, _ := dst.Cell(0, 0)
	if c.Rune != 'g' {
		t.Fatalf("space under partial alpha should keep destination glyph, got %q", c.Rune)
	}
	if c.BG != RGB(100, 0, 0) {
		t.Fatalf("expected blended bg #640000, got %s", c.BG)
	}

	src.Blit(dst, src.Bounds(), 0, 0, 0, 0)
	after, _ := dst.Cell(0, 0)
	if after != c {
		t.Fatalf("zero alpha must leave destination untouched")
	}
}

func TestResizedKeepsContent(t *testing.T) {
	b := NewBuffer(3, 3)
	_ = b.SetCell(1, 1, Cell{Rune: 'o'})
	nb := b.Resized(5, 5, b.Bounds(), 0, 0)
	c, err := nb.Cell(1, 1)
	if err != nil || c.Rune != 'o' {
		t.Fatalf("expected 'o' to survive resize, got %q (%v)", c.Rune, err)
	}
	if nb.Width() != 5 || nb.Height() != 5 {
		t.Fatalf("expected 5x5, got %dx%d", nb.Width(), nb.Height())
	}
}

func TestFrameWithTitle(t *testing.T) {
	tests := []struct {
		name  string
		style FrameStyle
		title string
		top   string
	}{
		{"single centered", FrameSingle, "Hi", "┌── Hi ──┐"},
		{"double untitled", FrameDouble, "", "╔════════╗"},
		{"truncated", FrameSingle, "abcdefghij", "┌ abcdef ┐"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(10, 3)
			b.Frame(b.Bounds(), tt.style, tt.title, White, Black)
			if got := b.Row(0); got != tt.top {
				t.Fatalf("expected top %q, got %q", tt.top, got)
			}
			if got := b.Row(2); !strings.HasPrefix(got, string(boxes[tt.style].bl)) {
				t.Fatalf("bottom row missing corner: %q", got)
			}
		})
	}
}

func TestPrintWideRunes(t *testing.T) {
	b := NewBuffer(6, 1)
	n := b.Print(0, 0, "a世b", White, Black)
	if n != 4 {
		t.Fatalf("expected 4 columns, got %d", n)
	}
	if got := b.Row(0); got != "a世b  " {
		t.Fatalf("unexpected row %q", got)
	}
}
