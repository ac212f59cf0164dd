package wm

import (
	"errors"

	"github.com/1broseidon/termstack/internal/surface"
)

var (
	// ErrConfiguration is returned by New when neither a manager nor a
	// parent is given.
	ErrConfiguration = errors.New("window needs a parent or a manager")
	// ErrInvalidGeometry is returned by New for windows smaller than 3×3.
	ErrInvalidGeometry = errors.New("window geometry below 3x3 minimum")
	// ErrOutOfBounds is returned for cell access outside a window.
	ErrOutOfBounds = surface.ErrOutOfBounds
	// ErrDestroyed is returned by every operation on a destroyed window.
	ErrDestroyed = errors.New("window destroyed")
	// ErrNotVisible is returned when raising a hidden window.
	ErrNotVisible = errors.New("window not visible")
	// ErrUnknownWindow is returned for IDs missing from the registry.
	ErrUnknownWindow = errors.New("unknown window")
)
