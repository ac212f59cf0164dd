package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/widgets"
	"github.com/1broseidon/termstack/internal/wm"
)

func describe(m *wm.Manager, w *wm.Window) WindowInfo {
	info := WindowInfo{
		ID:      uint64(w.ID()),
		Title:   w.Title(),
		X:       w.X(),
		Y:       w.Y(),
		Width:   w.Width(),
		Height:  w.Height(),
		Kind:    w.Kind().String(),
		Hidden:  w.Hidden(),
		Focused: m.Focused() == w,
		Stack:   w.StackIndex(),
	}
	if p := w.Parent(); p != nil {
		info.Parent = uint64(p.ID())
	}
	for _, c := range w.Children() {
		info.Children = append(info.Children, uint64(c.ID()))
	}
	for _, o := range w.Touching() {
		info.Touching = append(info.Touching, uint64(o.ID()))
	}
	return info
}

func (s *Server) window(id uint64) (*wm.Window, error) {
	return s.mgr.Window(wm.ID(id))
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := ListWindowsOutput{
		Width:   s.mgr.ScreenWidth(),
		Height:  s.mgr.ScreenHeight(),
		Windows: []WindowInfo{},
	}
	if f := s.mgr.Focused(); f != nil {
		out.Focused = uint64(f.ID())
	}
	for _, w := range s.mgr.Stack() {
		out.Windows = append(out.Windows, describe(s.mgr, w))
	}
	if args.IncludeHidden {
		for _, w := range s.mgr.HiddenWindows() {
			out.Windows = append(out.Windows, describe(s.mgr, w))
		}
	}
	return nil, out, nil
}

func (s *Server) handleCreateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CreateWindowInput) (*mcpsdk.CallToolResult, WindowInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind, err := wm.ParseKind(strings.TrimSpace(args.Kind))
	if err != nil {
		return nil, WindowInfo{}, err
	}
	if (args.X == nil) != (args.Y == nil) {
		return nil, WindowInfo{}, fmt.Errorf("x and y must be given together")
	}

	opts := s.mgr.Defaults()
	opts.Title = args.Title
	opts.Width, opts.Height = args.Width, args.Height
	opts.Kind = kind
	opts.Hidden = args.Hidden
	opts.Transparency = args.Transparency
	if args.Parent != 0 {
		parent, err := s.window(args.Parent)
		if err != nil {
			return nil, WindowInfo{}, fmt.Errorf("parent: %w", err)
		}
		opts.Parent = parent
	}
	if args.Framed != nil {
		opts.Flags = setFlag(opts.Flags, wm.Framed, *args.Framed)
	}
	opts.Flags = setFlag(opts.Flags, wm.Modal, args.Modal)
	opts.Flags = setFlag(opts.Flags, wm.Ephemeral, args.Ephemeral)
	opts.Flags = setFlag(opts.Flags, wm.CloseOnEscape, args.CloseOnEscape)
	if args.Text != "" {
		opts.Content = widgets.NewText(args.Text)
	}

	if args.X != nil {
		opts.X, opts.Y = *args.X, *args.Y
	} else if args.Width >= wm.MinSize && args.Height >= wm.MinSize {
		opts.X, opts.Y = s.mgr.Place(args.Width, args.Height)
	}

	w, err := wm.New(opts)
	if err != nil {
		return nil, WindowInfo{}, err
	}
	s.mgr.Step(nil)
	s.logger.Info("mcp window created", "id", w.ID(), "title", w.Title(), "rect", w.Rect())
	return nil, describe(s.mgr, w), nil
}

func setFlag(flags, f wm.Flags, on bool) wm.Flags {
	if on {
		return flags | f
	}
	return flags &^ f
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, WindowInfo, error) {
	return s.withWindow(args.ID, func(w *wm.Window) error { return w.Move(args.X, args.Y) })
}

func (s *Server) handleResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, WindowInfo, error) {
	return s.withWindow(args.ID, func(w *wm.Window) error { return w.Resize(args.Width, args.Height) })
}

func (s *Server) handleRaiseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, WindowInfo, error) {
	return s.withWindow(args.ID, func(w *wm.Window) error { return w.Raise(wm.RedrawAuto) })
}

func (s *Server) handleHideWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, WindowInfo, error) {
	return s.withWindow(args.ID, func(w *wm.Window) error { return w.Hide() })
}

func (s *Server) handleUnhideWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, WindowInfo, error) {
	return s.withWindow(args.ID, func(w *wm.Window) error { return w.Unhide() })
}

// withWindow runs op on a window under the lock and reports its state.
func (s *Server) withWindow(id uint64, op func(*wm.Window) error) (*mcpsdk.CallToolResult, WindowInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.window(id)
	if err != nil {
		return nil, WindowInfo{}, err
	}
	if err := op(w); err != nil {
		return nil, WindowInfo{}, fmt.Errorf("window %d: %w", id, err)
	}
	s.mgr.Step(nil)
	if !w.Alive() {
		return nil, WindowInfo{ID: id, Stack: -1, Hidden: true}, nil
	}
	return nil, describe(s.mgr, w), nil
}

func (s *Server) handleDestroyWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, DestroyWindowOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.window(args.ID)
	if err != nil {
		return nil, DestroyWindowOutput{}, err
	}
	var ids []uint64
	var collect func(*wm.Window)
	collect = func(w *wm.Window) {
		ids = append(ids, uint64(w.ID()))
		for _, c := range w.Children() {
			collect(c)
		}
	}
	collect(w)

	if err := w.Destroy(); err != nil {
		return nil, DestroyWindowOutput{}, fmt.Errorf("window %d: %w", args.ID, err)
	}
	s.mgr.Step(nil)
	s.logger.Info("mcp window destroyed", "id", args.ID, "count", len(ids))
	return nil, DestroyWindowOutput{Destroyed: ids}, nil
}

func (s *Server) handleSendPointer(_ context.Context, _ *mcpsdk.CallToolRequest, args SendPointerInput) (*mcpsdk.CallToolResult, SendPointerOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	button, err := input.ParseButton(strings.TrimSpace(args.Button))
	if err != nil {
		return nil, SendPointerOutput{}, err
	}

	var target *wm.Window
	if c := s.mgr.Capturing(); c != nil {
		target = c
	} else {
		target = s.mgr.WindowAt(args.X, args.Y)
	}

	down := input.MouseButtonDown{Button: button, X: args.X, Y: args.Y}
	up := input.MouseButtonUp{Button: button, X: args.X, Y: args.Y}
	var events []input.Event
	switch strings.ToLower(strings.TrimSpace(args.Action)) {
	case "down":
		events = []input.Event{down}
	case "up":
		events = []input.Event{up}
	case "move":
		events = []input.Event{input.MouseMotion{X: args.X, Y: args.Y}}
	case "click":
		events = []input.Event{down, up}
	case "drag":
		events = []input.Event{
			down,
			input.MouseMotion{X: args.ToX, Y: args.ToY},
			input.MouseButtonUp{Button: button, X: args.ToX, Y: args.ToY},
		}
	case "scroll":
		if button != input.WheelUp && button != input.WheelDown {
			button = input.WheelDown
		}
		events = []input.Event{input.MouseButtonDown{Button: button, X: args.X, Y: args.Y}}
	default:
		return nil, SendPointerOutput{}, fmt.Errorf("unknown pointer action %q", args.Action)
	}
	for _, ev := range events {
		s.mgr.Step(ev)
	}

	out := SendPointerOutput{Phase: wm.PhaseIdle.String()}
	if c := s.mgr.Capturing(); c != nil {
		out.Capturing = uint64(c.ID())
		out.Phase = c.Phase().String()
	}
	if target != nil {
		out.Target = uint64(target.ID())
		if target.Alive() {
			info := describe(s.mgr, target)
			out.Window = &info
		}
	}
	return nil, out, nil
}

func (s *Server) handleSendKey(_ context.Context, _ *mcpsdk.CallToolRequest, args SendKeyInput) (*mcpsdk.CallToolResult, SendKeyOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mod input.Mod
	if args.Alt {
		mod = input.ModAlt
	}

	var presses []input.KeyPress
	switch {
	case args.Key != "":
		k, err := input.ParseKey(strings.ToLower(strings.TrimSpace(args.Key)))
		if err != nil {
			return nil, SendKeyOutput{}, err
		}
		presses = append(presses, input.KeyPress{Key: k, Mod: mod})
	case args.Text != "":
		for _, r := range args.Text {
			presses = append(presses, input.KeyPress{Key: input.KeyRune, Rune: r, Mod: mod})
		}
	default:
		return nil, SendKeyOutput{}, fmt.Errorf("key or text is required")
	}

	for _, p := range presses {
		s.mgr.Step(p)
	}
	out := SendKeyOutput{Presses: len(presses)}
	if f := s.mgr.Focused(); f != nil {
		out.Focused = uint64(f.ID())
	}
	return nil, out, nil
}

func (s *Server) handleTileWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args TileWindowsInput) (*mcpsdk.CallToolResult, TileWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.mgr.Config()
	name := strings.TrimSpace(args.Layout)
	if name == "" {
		name = cfg.Tiling.DefaultLayout
	}
	layout, err := cfg.GetLayout(name)
	if err != nil {
		return nil, TileWindowsOutput{}, err
	}
	gap := cfg.Tiling.Gap
	if args.Gap != nil {
		gap = *args.Gap
	}

	n, err := s.mgr.Tile(layout, gap)
	if err != nil {
		return nil, TileWindowsOutput{}, err
	}
	s.mgr.Step(nil)

	out := TileWindowsOutput{Layout: name, Tiled: n, Windows: []WindowInfo{}}
	for _, w := range s.mgr.Stack() {
		out.Windows = append(out.Windows, describe(s.mgr, w))
	}
	s.logger.Info("mcp windows tiled", "layout", name, "count", n)
	return nil, out, nil
}

func (s *Server) handleSnapshot(_ context.Context, _ *mcpsdk.CallToolRequest, args SnapshotInput) (*mcpsdk.CallToolResult, SnapshotOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mgr.Step(nil)
	buf := s.mgr.Screen()
	if args.ID != 0 {
		w, err := s.window(args.ID)
		if err != nil {
			return nil, SnapshotOutput{}, err
		}
		buf = w.Buffer()
	}
	text := buf.String()
	if args.Clean {
		text = cleanOutput(text)
	}
	return nil, SnapshotOutput{Width: buf.Width(), Height: buf.Height(), Text: text}, nil
}
