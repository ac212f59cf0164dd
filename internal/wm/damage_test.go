package wm

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/tiling"
)

func countingContent(n *int) Content {
	return ContentFunc(func(*Window, *surface.Buffer, tiling.Rect) error {
		*n++
		return nil
	})
}

func TestDamagePassHonorsInterval(t *testing.T) {
	m := newTestManager(t)
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := t0
	m.SetClock(func() time.Time { return now })

	var renders int
	newWindow(t, m, 0, 0, 10, 5, withFlags(Framed), withContent(countingContent(&renders)),
		func(o *Options) { o.RedrawInterval = 100 * time.Millisecond })

	m.Step(nil)
	if renders != 1 {
		t.Fatalf("first pass should redraw, renders=%d", renders)
	}
	now = t0.Add(50 * time.Millisecond)
	m.Step(nil)
	if renders != 1 {
		t.Fatalf("redraw before the interval elapsed, renders=%d", renders)
	}
	now = t0.Add(150 * time.Millisecond)
	m.Step(nil)
	if renders != 2 {
		t.Fatalf("expected a forced redraw, renders=%d", renders)
	}
}

func TestDamagePassRedrawsChanged(t *testing.T) {
	m := newTestManager(t)
	var renders int
	w := newWindow(t, m, 0, 0, 10, 5, withContent(countingContent(&renders)))

	m.Step(nil)
	m.Step(nil)
	if renders != 1 {
		t.Fatalf("unchanged window should not be redrawn, renders=%d", renders)
	}
	w.MarkChanged()
	m.Step(nil)
	if renders != 2 || w.Changed() {
		t.Fatalf("changed window should be redrawn once, renders=%d", renders)
	}

	w.SetFlags(AutoRedraw, false)
	w.MarkChanged()
	m.Step(nil)
	if renders != 2 {
		t.Fatalf("window without AutoRedraw waits for an explicit redraw")
	}
	if err := w.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if renders != 3 {
		t.Fatalf("explicit redraw should render, renders=%d", renders)
	}
}

func TestDamagePassSkipsFailingWindows(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	m, err := NewManager(config.DefaultConfig(), nil, nil, logger)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	newWindow(t, m, 0, 0, 10, 5, withContent(ContentFunc(func(*Window, *surface.Buffer, tiling.Rect) error {
		panic("boom")
	})))
	newWindow(t, m, 20, 0, 10, 5, withContent(ContentFunc(func(*Window, *surface.Buffer, tiling.Rect) error {
		return errors.New("render failed")
	})))
	var renders int
	ok := newWindow(t, m, 40, 0, 10, 5, withContent(countingContent(&renders)))

	m.Step(nil)
	if renders != 1 || ok.Changed() {
		t.Fatalf("healthy window should still be drawn, renders=%d", renders)
	}
	out := logs.String()
	if strings.Count(out, "window redraw failed") != 2 {
		t.Fatalf("expected two logged failures, got:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("panic value should be logged, got:\n%s", out)
	}

	logs.Reset()
	m.Step(nil)
	if logs.Len() != 0 {
		t.Fatalf("failed windows should not retry until changed, got:\n%s", logs.String())
	}
}

func TestCompositeRespectsStacking(t *testing.T) {
	m := newTestManager(t)
	newWindow(t, m, 0, 0, 10, 5, withFlags(AutoRedraw), withContent(fillContent('a')))
	b := newWindow(t, m, 5, 2, 10, 5, withFlags(AutoRedraw), withContent(fillContent('b')))
	m.Step(nil)

	if got := screenRune(t, m, 2, 1); got != 'a' {
		t.Fatalf("(2,1): got %q", got)
	}
	if got := screenRune(t, m, 6, 3); got != 'b' {
		t.Fatalf("overlap should show the upper window, got %q", got)
	}

	if err := b.Hide(); err != nil {
		t.Fatalf("Hide: %v", err)
	}
	if got := screenRune(t, m, 6, 3); got != 'a' {
		t.Fatalf("hiding should uncover the lower window, got %q", got)
	}
	if got := screenRune(t, m, 12, 3); got != ' ' {
		t.Fatalf("area outside any window should show the desktop, got %q", got)
	}
	c, _ := m.Screen().Cell(12, 3)
	if want := surface.MustParseColor(m.Config().Theme.Desktop); c.BG != want {
		t.Fatalf("desktop colour: got %s want %s", c.BG, want)
	}
}

func TestRedrawOfLowerWindowKeepsUpperOnTop(t *testing.T) {
	m := newTestManager(t)
	a := newWindow(t, m, 0, 0, 10, 5, withFlags(AutoRedraw), withContent(fillContent('a')))
	newWindow(t, m, 5, 2, 10, 5, withFlags(AutoRedraw), withContent(fillContent('b')))
	m.Step(nil)

	if err := a.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if got := screenRune(t, m, 6, 3); got != 'b' {
		t.Fatalf("overlying window must be recomposited, got %q", got)
	}
}

func TestTransparentWindowBlends(t *testing.T) {
	m := newTestManager(t)
	red := Theme{Foreground: surface.White, Background: surface.RGB(200, 0, 0)}
	blue := Theme{Foreground: surface.White, Background: surface.RGB(0, 0, 200)}
	newWindow(t, m, 0, 0, 10, 5, withFlags(AutoRedraw), func(o *Options) { o.Theme = &red })
	newWindow(t, m, 0, 0, 10, 5, withFlags(AutoRedraw), func(o *Options) {
		o.Theme = &blue
		o.Transparency = 50
	})
	m.Step(nil)

	c, _ := m.Screen().Cell(3, 3)
	if c.BG != surface.RGB(100, 0, 100) {
		t.Fatalf("expected blended background, got %s", c.BG)
	}
}
