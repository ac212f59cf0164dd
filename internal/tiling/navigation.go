package tiling

// Direction is a focus movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// ParseDirection maps a name such as "left" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirUp, false
}

// Neighbor returns the index of the rectangle nearest to rects[current]
// in direction dir, comparing centers by Manhattan distance. When nothing
// lies in that direction it wraps to the far edge, preferring the same
// row or column. It returns current when rects has one element, and -1
// when current is out of range.
func Neighbor(current int, dir Direction, rects []Rect) int {
	if current < 0 || current >= len(rects) {
		return -1
	}

	cur := rects[current]
	cx := cur.X + cur.Width/2
	cy := cur.Y + cur.Height/2

	bestIdx := -1
	bestDist := -1

	for i, r := range rects {
		if i == current {
			continue
		}
		rx := r.X + r.Width/2
		ry := r.Y + r.Height/2

		inDirection := false
		switch dir {
		case DirUp:
			inDirection = ry < cy
		case DirDown:
			inDirection = ry > cy
		case DirLeft:
			inDirection = rx < cx
		case DirRight:
			inDirection = rx > cx
		}
		if !inDirection {
			continue
		}

		dist := abs(rx-cx) + abs(ry-cy)
		if bestIdx == -1 || dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return bestIdx
	}

	// Wrap: furthest in the opposite direction, nearest on the cross axis.
	bestScore := 0
	for i, r := range rects {
		if i == current {
			continue
		}
		rx := r.X + r.Width/2
		ry := r.Y + r.Height/2

		var score int
		switch dir {
		case DirUp:
			score = ry*10000 - abs(rx-cx)
		case DirDown:
			score = -ry*10000 - abs(rx-cx)
		case DirLeft:
			score = rx*10000 - abs(ry-cy)
		case DirRight:
			score = -rx*10000 - abs(ry-cy)
		}
		if bestIdx == -1 || score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return bestIdx
	}
	return current
}

// Closest returns the index of the rectangle whose center is nearest to
// (x, y), or -1 for an empty slice.
func Closest(x, y int, rects []Rect) int {
	bestIdx := -1
	bestDist := -1
	for i, r := range rects {
		dist := abs(x-(r.X+r.Width/2)) + abs(y-(r.Y+r.Height/2))
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}
	return bestIdx
}
