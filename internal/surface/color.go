package surface

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// ParseColor resolves a tcell colour name ("navy") or hex value ("#102a43").
func ParseColor(s string) (Color, error) {
	c := tcell.GetColor(strings.TrimSpace(s))
	if c == tcell.ColorDefault {
		return Color{}, fmt.Errorf("unknown colour %q", s)
	}
	r, g, b := c.RGB()
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp blends from a towards b; t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// TCell converts c for a tcell style.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
