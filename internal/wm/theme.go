package wm

import (
	"fmt"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/surface"
)

// Theme holds the colours a window draws with.
type Theme struct {
	Foreground          surface.Color
	Background          surface.Color
	ForegroundHighlight surface.Color
	BackgroundHighlight surface.Color
	Frame               surface.Color
	FrameFocused        surface.Color
	Title               surface.Color
}

// ThemeFromConfig parses the configured colour names.
func ThemeFromConfig(t config.Theme) (Theme, error) {
	var out Theme
	fields := []struct {
		name string
		src  string
		dst  *surface.Color
	}{
		{"foreground", t.Foreground, &out.Foreground},
		{"background", t.Background, &out.Background},
		{"foreground_highlight", t.ForegroundHighlight, &out.ForegroundHighlight},
		{"background_highlight", t.BackgroundHighlight, &out.BackgroundHighlight},
		{"frame", t.Frame, &out.Frame},
		{"frame_focused", t.FrameFocused, &out.FrameFocused},
		{"title", t.Title, &out.Title},
	}
	for _, f := range fields {
		c, err := surface.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// Blank is an empty interior cell.
func (t Theme) Blank() surface.Cell {
	return surface.Blank(t.Foreground, t.Background)
}
