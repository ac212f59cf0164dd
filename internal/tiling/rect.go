package tiling

// Rect is a cell-aligned rectangle. Width and Height count cells, so the
// last column is X+Width-1.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && r.X+r.Width > x && r.Y <= y && r.Y+r.Height > y
}

// Intersects reports whether a and b share at least one cell.
func (r Rect) Intersects(b Rect) bool {
	return r.X < b.X+b.Width &&
		r.X+r.Width > b.X &&
		r.Y < b.Y+b.Height &&
		r.Y+r.Height > b.Y
}

// Intersect returns the overlap of r and b, or an empty Rect.
func (r Rect) Intersect(b Rect) Rect {
	x0 := max(r.X, b.X)
	y0 := max(r.Y, b.Y)
	x1 := min(r.Right(), b.Right())
	y1 := min(r.Bottom(), b.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the bounding box of rects. ok is false for an empty slice.
func Union(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}

	minX := rects[0].X
	minY := rects[0].Y
	maxX := rects[0].Right()
	maxY := rects[0].Bottom()

	for _, rect := range rects[1:] {
		minX = min(minX, rect.X)
		minY = min(minY, rect.Y)
		maxX = max(maxX, rect.Right())
		maxY = max(maxY, rect.Bottom())
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
