package surface

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal presents buffers on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal opens the controlling terminal with mouse reporting enabled.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewTerminalWithScreen(s)
}

// NewTerminalWithScreen wraps an uninitialised screen, such as
// tcell.NewSimulationScreen.
func NewTerminalWithScreen(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.Clear()
	return &Terminal{screen: s}, nil
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Present copies the buffer's dirty rectangle to the screen and shows it.
func (t *Terminal) Present(b *Buffer) error {
	r, ok := b.TakeDirty()
	if !ok {
		return nil
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := b.at(x, y)
			if c.Rune == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(c.FG.TCell()).Background(c.BG.TCell())
			t.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Sync forces a full repaint on the next Present, after a terminal resize.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// PollEvent blocks for the next tcell event; nil after Fini.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}
