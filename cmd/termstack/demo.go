package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/termstack/internal/widgets"
	"github.com/1broseidon/termstack/internal/wm"
)

const (
	actionTile   = "tile"
	actionLayout = "layout"
	actionNote   = "note"
	actionShow   = "show"
)

// demo is the desktop shown by run and snapshot.
type demo struct {
	mgr *wm.Manager
	log *slog.Logger

	menu    *widgets.List
	events  *widgets.Log
	overlay *widgets.Text

	windows map[string]*wm.Window
	layout  int
	notes   int
}

// buildDemo populates m with the demo windows. Actions chosen from the
// menu are logged to the events window.
func buildDemo(m *wm.Manager) (*demo, error) {
	d := &demo{
		mgr:     m,
		menu:    widgets.NewList(),
		events:  widgets.NewLog(widgets.DefaultMaxMessages),
		overlay: widgets.NewText(""),
		windows: make(map[string]*wm.Window),
	}
	d.log = slog.New(slog.NewTextHandler(d.events, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	d.menu.Add("Tile windows", actionTile, 't')
	d.menu.Add("Next layout", actionLayout, 'l')
	d.menu.Add("New note", actionNote, 'n')
	d.menu.Add("Show hidden", actionShow, 's')
	d.menu.OnSelect = func(it widgets.Item) {
		if action, ok := it.Value.(string); ok {
			d.do(action)
		}
	}

	canvas := widgets.NewScrollView(60, 40)
	theme := m.Theme()
	for y := 0; y < canvas.Canvas().Height(); y++ {
		canvas.Canvas().Print(0, y, fmt.Sprintf("%02d %s", y, strings.Repeat(". ", 28)), theme.Foreground, theme.Background)
	}

	scene := []struct {
		name    string
		x, y    int
		w, h    int
		kind    wm.Kind
		content wm.Content
		mutate  func(*wm.Options)
	}{
		{name: "status", x: 0, y: -3, w: 0, h: 3, kind: wm.KindBackground,
			content: widgets.NewText("Ctrl+Q quit, Alt+arrows focus, drag titles to move"),
			mutate: func(o *wm.Options) {
				o.Flags = wm.Framed | wm.AutoRedraw
			}},
		{name: "menu", x: 2, y: 2, w: 24, h: 8, content: d.menu},
		{name: "events", x: 2, y: 12, w: 40, h: 12, content: d.events},
		{name: "map", x: 30, y: 2, w: 36, h: 14, content: canvas},
		{name: "note", x: 44, y: 20, w: 30, h: 8,
			content: widgets.NewText("Press Escape to close this note. Its sticker follows it."),
			mutate: func(o *wm.Options) {
				o.Flags |= wm.CloseOnEscape
			}},
		{name: "overlay", x: -20, y: 0, w: 18, h: 3, kind: wm.KindPassThrough, content: d.overlay,
			mutate: func(o *wm.Options) {
				o.Flags = wm.AutoRedraw
				o.Transparency = 40
				o.TransparencyUnfocused = 40
			}},
	}
	for _, s := range scene {
		opts := m.Defaults()
		opts.Title = s.name
		opts.X, opts.Y, opts.Width, opts.Height = s.x, s.y, s.w, s.h
		opts.Kind = s.kind
		opts.Content = s.content
		if s.mutate != nil {
			s.mutate(&opts)
		}
		w, err := wm.New(opts)
		if err != nil {
			return nil, fmt.Errorf("demo window %s: %w", s.name, err)
		}
		d.windows[s.name] = w
	}
	d.menu.Attach(d.windows["menu"])
	d.events.Attach(d.windows["events"])

	sticker, err := wm.New(wm.Options{
		Parent:  d.windows["note"],
		X:       46,
		Y:       26,
		Width:   14,
		Height:  3,
		Title:   "sticker",
		Flags:   wm.Framed | wm.AutoRedraw,
		Content: widgets.NewText("child"),
	})
	if err != nil {
		return nil, fmt.Errorf("demo window sticker: %w", err)
	}
	d.windows["sticker"] = sticker

	if err := d.windows["menu"].Raise(wm.RedrawNone); err != nil {
		return nil, err
	}
	d.refresh()
	d.log.Info("desktop ready", "windows", m.Len())
	return d, nil
}

// refresh updates the overlay counters.
func (d *demo) refresh() {
	d.overlay.Set(fmt.Sprintf("%d windows, %d hidden", d.mgr.Len(), len(d.mgr.HiddenWindows())))
}

func (d *demo) do(action string) {
	m := d.mgr
	cfg := m.Config()
	switch action {
	case actionTile, actionLayout:
		names := cfg.LayoutNames()
		name := cfg.Tiling.DefaultLayout
		if action == actionLayout && len(names) > 0 {
			d.layout = (d.layout + 1) % len(names)
			name = names[d.layout]
		}
		if err := d.tile(name); err != nil {
			d.log.Error("tile failed", "layout", name, "err", err)
		}
	case actionNote:
		d.notes++
		opts := m.Defaults()
		opts.Width, opts.Height = 24, 6
		opts.X, opts.Y = m.Place(opts.Width, opts.Height)
		opts.Title = fmt.Sprintf("note %d", d.notes)
		opts.Flags |= wm.Ephemeral | wm.CloseOnEscape
		opts.Content = widgets.NewText("Closing this note destroys it.")
		w, err := wm.New(opts)
		if err != nil {
			d.log.Error("note failed", "err", err)
			return
		}
		d.log.Info("note opened", "id", w.ID(), "x", w.X(), "y", w.Y())
	case actionShow:
		hidden := m.HiddenWindows()
		for _, w := range hidden {
			if err := w.Unhide(); err != nil {
				d.log.Warn("unhide failed", "id", w.ID(), "err", err)
			}
		}
		d.log.Info("windows shown", "count", len(hidden))
	}
	d.refresh()
}

// tile arranges the desktop with the named layout.
func (d *demo) tile(name string) error {
	cfg := d.mgr.Config()
	layout, err := cfg.GetLayout(name)
	if err != nil {
		return err
	}
	n, err := d.mgr.Tile(layout, cfg.Tiling.Gap)
	if err != nil {
		return err
	}
	d.log.Info("tiled", "layout", name, "windows", n)
	return nil
}
