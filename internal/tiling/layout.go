package tiling

import (
	"fmt"
	"math"

	"github.com/1broseidon/termstack/internal/config"
)

// MinCell is the smallest window a layout may produce in either dimension.
const MinCell = 3

// GridSize returns the rows and columns of the squarest grid holding n items.
func GridSize(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return rows, cols
}

// Arrange computes up to n window rectangles inside area using layout.
// Fixed and master-stack layouts may return fewer than n rectangles when
// their capacity is smaller; callers leave the remaining windows in place.
func Arrange(n int, area Rect, layout *config.Layout, gap int) ([]Rect, error) {
	if n <= 0 {
		return nil, nil
	}
	if layout == nil {
		return nil, fmt.Errorf("nil layout")
	}
	area = ApplyRegion(area, layout.TileRegion)

	flexible := layout.FlexibleLastRow
	var rows, cols int

	switch layout.Mode {
	case config.LayoutModeAuto:
		rows, cols = GridSize(n)
	case config.LayoutModeFixed:
		rows, cols = layout.FixedGrid.Rows, layout.FixedGrid.Cols
		n = min(n, rows*cols)
		flexible = false
	case config.LayoutModeVertical:
		rows, cols = n, 1
		flexible = false
	case config.LayoutModeHorizontal:
		rows, cols = 1, n
		flexible = false
	case config.LayoutModeMasterStack:
		return arrangeMasterStack(n, area, layout.MasterStack, gap)
	default:
		return nil, fmt.Errorf("unsupported layout mode: %q", layout.Mode)
	}

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: rows=%d cols=%d", rows, cols)
	}
	return arrangeGrid(n, area, rows, cols, gap, flexible, layout.MaxWindowWidth, layout.MaxWindowHeight)
}

func arrangeGrid(n int, area Rect, rows, cols, gap int, flexible bool, maxW, maxH int) ([]Rect, error) {
	slotW := (area.Width - (cols+1)*gap) / cols
	slotH := (area.Height - (rows+1)*gap) / rows
	if slotW < MinCell || slotH < MinCell {
		return nil, fmt.Errorf(
			"insufficient space for layout: area=%dx%d rows=%d cols=%d gap=%d (slot=%dx%d)",
			area.Width, area.Height, rows, cols, gap, slotW, slotH,
		)
	}

	lastRow := rows - 1
	inLastRow := n - lastRow*cols
	if inLastRow <= 0 {
		inLastRow = cols
	}
	lastSlotW := slotW
	if flexible && inLastRow < cols {
		lastSlotW = (area.Width - (inLastRow+1)*gap) / inLastRow
	}

	out := make([]Rect, n)
	for i := range out {
		row, col := i/cols, i%cols
		sw := slotW
		if row == lastRow && lastSlotW != slotW {
			sw = lastSlotW
		}
		x := area.X + gap + col*(sw+gap)
		y := area.Y + gap + row*(slotH+gap)
		out[i] = fitSlot(Rect{X: x, Y: y, Width: sw, Height: slotH}, maxW, maxH)
	}
	return out, nil
}

func arrangeMasterStack(n int, area Rect, ms config.MasterStack, gap int) ([]Rect, error) {
	masterW := area.Width*ms.MasterWidthPercent/100 - gap
	innerH := area.Height - 2*gap
	master := Rect{X: area.X + gap, Y: area.Y + gap, Width: masterW, Height: innerH}
	if n == 1 {
		if masterW < MinCell || innerH < MinCell {
			return nil, fmt.Errorf("insufficient space for master pane: %dx%d", masterW, innerH)
		}
		return []Rect{master}, nil
	}

	stack := n - 1
	stackCols := Clamp(int(math.Ceil(float64(stack)/float64(ms.MaxStackRows))), 1, ms.MaxStackCols)
	stackRows := min(int(math.Ceil(float64(stack)/float64(stackCols))), ms.MaxStackRows)
	stack = min(stack, stackRows*stackCols)

	right := Rect{
		X:      area.X + masterW + 2*gap,
		Y:      area.Y + gap,
		Width:  area.Width - masterW - 3*gap,
		Height: innerH,
	}
	cellW := (right.Width - (stackCols-1)*gap) / stackCols
	cellH := (right.Height - (stackRows-1)*gap) / stackRows
	if masterW < MinCell || cellW < MinCell || cellH < MinCell {
		return nil, fmt.Errorf(
			"insufficient space for master-stack layout: area=%dx%d master=%d cell=%dx%d gap=%d",
			area.Width, area.Height, masterW, cellW, cellH, gap,
		)
	}

	out := make([]Rect, 0, stack+1)
	out = append(out, master)
	for i := 0; i < stack; i++ {
		row, col := i/stackCols, i%stackCols
		out = append(out, Rect{
			X:      right.X + col*(cellW+gap),
			Y:      right.Y + row*(cellH+gap),
			Width:  cellW,
			Height: cellH,
		})
	}
	return out, nil
}

// fitSlot shrinks slot to the max dimensions and centers the result.
func fitSlot(slot Rect, maxW, maxH int) Rect {
	r := slot
	if maxW > 0 && r.Width > maxW {
		r.Width = maxW
		r.X += (slot.Width - maxW) / 2
	}
	if maxH > 0 && r.Height > maxH {
		r.Height = maxH
		r.Y += (slot.Height - maxH) / 2
	}
	return r
}

// ApplyRegion narrows area to the configured tile region.
func ApplyRegion(area Rect, region config.TileRegion) Rect {
	out := area
	switch region.Type {
	case config.RegionLeftHalf:
		out.Width = area.Width / 2
	case config.RegionRightHalf:
		out.X = area.X + area.Width/2
		out.Width = area.Width - area.Width/2
	case config.RegionTopHalf:
		out.Height = area.Height / 2
	case config.RegionBottomHalf:
		out.Y = area.Y + area.Height/2
		out.Height = area.Height - area.Height/2
	case config.RegionCustom:
		out.X = area.X + area.Width*region.XPercent/100
		out.Y = area.Y + area.Height*region.YPercent/100
		out.Width = area.Width * region.WidthPercent / 100
		out.Height = area.Height * region.HeightPercent / 100
	}
	out.Width = max(out.Width, 1)
	out.Height = max(out.Height, 1)
	return out
}
