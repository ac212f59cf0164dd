package surface

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalPresentsDirtyCells(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminalWithScreen(sim)
	if err != nil {
		t.Fatalf("NewTerminalWithScreen: %v", err)
	}
	defer term.Fini()
	sim.SetSize(10, 4)

	b := NewBuffer(10, 4)
	b.Print(2, 1, "hey", White, RGB(0, 0, 128))
	if err := term.Present(b); err != nil {
		t.Fatalf("Present: %v", err)
	}

	r, _, style, _ := sim.GetContent(3, 1)
	if r != 'e' {
		t.Fatalf("expected 'e' at (3,1), got %q", r)
	}
	_, bg, _ := style.Decompose()
	if bg != RGB(0, 0, 128).TCell() {
		t.Fatalf("expected navy background, got %v", bg)
	}
	if _, ok := b.TakeDirty(); ok {
		t.Fatalf("Present should consume the dirty region")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102a43")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != RGB(0x10, 0x2a, 0x43) {
		t.Fatalf("unexpected colour %s", c)
	}
	if _, err := ParseColor("nope"); err == nil {
		t.Fatalf("expected error for unknown colour")
	}
	if got := Lerp(Black, White, 0.5); got != RGB(128, 128, 128) {
		t.Fatalf("unexpected midpoint %s", got)
	}
}
