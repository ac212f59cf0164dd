package mcp

import (
	"context"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/termstack/internal/wm"
)

const (
	ServerName    = "termstack"
	ServerVersion = "0.1.0"
)

// Server exposes a headless window manager over MCP. Tool calls are
// serialized; each one ends with a damage pass so snapshots reflect it.
type Server struct {
	mcpServer *mcpsdk.Server
	logger    *slog.Logger

	mu  sync.Mutex
	mgr *wm.Manager
}

// NewServer wraps mgr. A nil logger uses the manager's.
func NewServer(mgr *wm.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = mgr.Logger()
	}
	s := &Server{
		logger: logger,
		mgr:    mgr,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Manager returns the wrapped manager. Callers must not use it while the
// server is running.
func (s *Server) Manager() *wm.Manager { return s.mgr }

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List windows topmost first with geometry, kind, focus and stack position. Hidden windows are included when include_hidden is set.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "create_window",
		Description: "Create a window. Omit x/y to place it automatically away from existing windows. Negative coordinates are measured from the right/bottom screen edge; non-positive sizes are the screen size minus that amount. Optional text is word-wrapped into the interior.",
	}, s.handleCreateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window's top-left corner to screen coordinates (x, y).",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Resize a window. Sizes below 3x3 are ignored.",
	}, s.handleResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "raise_window",
		Description: "Raise a visible window to the top of the stack and give it focus.",
	}, s.handleRaiseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hide_window",
		Description: "Hide a window (and its children when it raises children). Ephemeral windows are destroyed.",
	}, s.handleHideWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "unhide_window",
		Description: "Return a hidden window to the top of the stack. Does nothing for visible windows.",
	}, s.handleUnhideWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "destroy_window",
		Description: "Destroy a window and all of its children.",
	}, s.handleDestroyWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "send_pointer",
		Description: "Send pointer input at screen coordinates. Actions: down, up, move, click (down+up), drag (down at x,y, move to to_x,to_y, up), scroll (wheel; button wheel-up or wheel-down).",
	}, s.handleSendPointer)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "send_key",
		Description: "Send a key press to the focused window. Keys: escape, enter, tab, backspace, up, down, left, right, pgup, pgdn, home, end; or pass text for a printable rune. alt with an arrow moves focus.",
	}, s.handleSendKey)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "tile_windows",
		Description: "Arrange visible resizable top-level windows with a configured layout (default: tiling.default_layout).",
	}, s.handleTileWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snapshot",
		Description: "Return the composited screen, or one window's buffer, as plain text. clean strips frame lines and collapses blank rows.",
	}, s.handleSnapshot)
}
