package surface

import (
	"strings"

	"github.com/1broseidon/termstack/internal/tiling"
	"github.com/mattn/go-runewidth"
)

// Print writes text on one row starting at (x, y), clipped to the buffer.
// It returns the number of columns consumed.
func (b *Buffer) Print(x, y int, text string, fg, bg Color) int {
	return b.printClipped(x, y, b.width, text, fg, bg)
}

func (b *Buffer) printClipped(x, y, limit int, text string, fg, bg Color) int {
	if y < 0 || y >= b.height {
		return 0
	}
	limit = min(limit, b.width)
	start := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.set(x, y, Cell{Rune: r, FG: fg, BG: bg})
		for i := 1; i < w; i++ {
			b.set(x+i, y, Cell{Rune: 0, FG: fg, BG: bg})
		}
		x += w
	}
	if x > start {
		b.MarkDirty(tiling.Rect{X: start, Y: y, Width: x - start, Height: 1})
	}
	return x - start
}

// PrintRect word-wraps text into r and returns the number of rows written.
// Rows past the bottom of r are dropped.
func (b *Buffer) PrintRect(r tiling.Rect, text string, fg, bg Color) int {
	lines := Wrap(text, r.Width)
	n := 0
	for i, line := range lines {
		if i >= r.Height {
			break
		}
		b.printClipped(r.X, r.Y+i, r.Right(), line, fg, bg)
		n++
	}
	return n
}

// TextHeight is the number of rows text occupies when wrapped to width.
func TextHeight(width int, text string) int {
	return len(Wrap(text, width))
}

// Wrap breaks text into lines no wider than width display columns.
// Newlines force breaks; words longer than width are split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineW := 0
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			for ww > width {
				if lineW > 0 {
					out = append(out, line)
					line, lineW = "", 0
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// A single glyph wider than the line.
					head = string([]rune(word)[:1])
				}
				out = append(out, head)
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			if ww == 0 {
				continue
			}
			switch {
			case lineW == 0:
				line, lineW = word, ww
			case lineW+1+ww <= width:
				line += " " + word
				lineW += 1 + ww
			default:
				out = append(out, line)
				line, lineW = word, ww
			}
		}
		if lineW > 0 {
			out = append(out, line)
		}
	}
	return out
}
