package tiling

// ChooseOrigin picks a top-left corner for a width×height rectangle inside
// bounds that avoids the given rectangles. Corners are tried in the order
// top-left, top-right, bottom-left, bottom-right, then a cascade down the
// diagonal. When every candidate overlaps something the top-left corner wins.
func ChooseOrigin(bounds Rect, avoid []Rect, width, height, margin int) (int, int) {
	width = max(width, 1)
	height = max(height, 1)

	left := bounds.X + margin
	right := bounds.X + bounds.Width - margin - width
	top := bounds.Y + margin
	bottom := bounds.Y + bounds.Height - margin - height
	right = max(right, left)
	bottom = max(bottom, top)

	candidates := []Rect{
		{X: left, Y: top, Width: width, Height: height},
		{X: right, Y: top, Width: width, Height: height},
		{X: left, Y: bottom, Width: width, Height: height},
		{X: right, Y: bottom, Width: width, Height: height},
	}
	for x, y := left+2, top+1; x <= right && y <= bottom; x, y = x+2, y+1 {
		candidates = append(candidates, Rect{X: x, Y: y, Width: width, Height: height})
	}

	for _, candidate := range candidates {
		blocked := false
		for _, a := range avoid {
			if candidate.Intersects(a) {
				blocked = true
				break
			}
		}
		if !blocked {
			return ClampOrigin(candidate.X, candidate.Y, bounds, width, height, margin)
		}
	}
	return ClampOrigin(candidates[0].X, candidates[0].Y, bounds, width, height, margin)
}

// ClampOrigin keeps a width×height rectangle at (x, y) inside bounds,
// honouring margin when there is room for it.
func ClampOrigin(x, y int, bounds Rect, width, height, margin int) (int, int) {
	left := bounds.X + margin
	right := bounds.X + bounds.Width - margin - width
	if right < left {
		left = bounds.X
		right = bounds.X + bounds.Width - width
	}
	right = max(right, left)

	top := bounds.Y + margin
	bottom := bounds.Y + bounds.Height - margin - height
	if bottom < top {
		top = bounds.Y
		bottom = bounds.Y + bounds.Height - height
	}
	bottom = max(bottom, top)

	return Clamp(x, left, right), Clamp(y, top, bottom)
}
