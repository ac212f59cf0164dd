package mcp

// WindowInfo describes a single window.
type WindowInfo struct {
	ID       uint64   `json:"id"`
	Title    string   `json:"title"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Kind     string   `json:"kind"`
	Hidden   bool     `json:"hidden"`
	Focused  bool     `json:"focused"`
	Stack    int      `json:"stack"` // 0 is topmost, -1 when hidden
	Parent   uint64   `json:"parent,omitempty"`
	Children []uint64 `json:"children,omitempty"`
	Touching []uint64 `json:"touching,omitempty"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	IncludeHidden bool `json:"include_hidden,omitempty" jsonschema:"Include hidden windows after the visible ones"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Focused uint64       `json:"focused,omitempty"`
	Windows []WindowInfo `json:"windows"`
}

// CreateWindowInput is the input for the create_window tool.
type CreateWindowInput struct {
	Title  string `json:"title,omitempty" jsonschema:"Frame title"`
	X      *int   `json:"x,omitempty" jsonschema:"Left column; omitted together with y for automatic placement"`
	Y      *int   `json:"y,omitempty" jsonschema:"Top row; omitted together with x for automatic placement"`
	Width  int    `json:"width" jsonschema:"Width in cells (at least 3)"`
	Height int    `json:"height" jsonschema:"Height in cells (at least 3)"`
	Kind   string `json:"kind,omitempty" jsonschema:"plain (default), pass-through or background"`
	Parent uint64 `json:"parent,omitempty" jsonschema:"Owning window ID"`
	Text   string `json:"text,omitempty" jsonschema:"Text word-wrapped into the window interior"`
	Hidden bool   `json:"hidden,omitempty" jsonschema:"Create in the hidden set"`

	Framed        *bool `json:"framed,omitempty" jsonschema:"Draw a frame (default from window_defaults)"`
	Modal         bool  `json:"modal,omitempty" jsonschema:"Drop input outside this window and its children while visible"`
	Ephemeral     bool  `json:"ephemeral,omitempty" jsonschema:"Destroy the window when it is hidden"`
	CloseOnEscape bool  `json:"close_on_escape,omitempty" jsonschema:"Hide on Escape"`
	Transparency  int   `json:"transparency,omitempty" jsonschema:"Transparency percentage, 0 opaque to 100"`
}

// WindowRef addresses one window.
type WindowRef struct {
	ID uint64 `json:"id" jsonschema:"Window ID"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID uint64 `json:"id" jsonschema:"Window ID"`
	X  int    `json:"x" jsonschema:"New left column"`
	Y  int    `json:"y" jsonschema:"New top row"`
}

// ResizeWindowInput is the input for the resize_window tool.
type ResizeWindowInput struct {
	ID     uint64 `json:"id" jsonschema:"Window ID"`
	Width  int    `json:"width" jsonschema:"New width"`
	Height int    `json:"height" jsonschema:"New height"`
}

// DestroyWindowOutput is the output for the destroy_window tool.
type DestroyWindowOutput struct {
	Destroyed []uint64 `json:"destroyed"`
}

// SendPointerInput is the input for the send_pointer tool.
type SendPointerInput struct {
	Action string `json:"action" jsonschema:"down, up, move, click, drag or scroll"`
	Button string `json:"button,omitempty" jsonschema:"primary (default), secondary, middle, wheel-up, wheel-down"`
	X      int    `json:"x" jsonschema:"Screen column"`
	Y      int    `json:"y" jsonschema:"Screen row"`
	ToX    int    `json:"to_x,omitempty" jsonschema:"Drag target column"`
	ToY    int    `json:"to_y,omitempty" jsonschema:"Drag target row"`
}

// SendPointerOutput is the output for the send_pointer tool.
type SendPointerOutput struct {
	Target    uint64      `json:"target,omitempty"`
	Capturing uint64      `json:"capturing,omitempty"`
	Phase     string      `json:"phase"`
	Window    *WindowInfo `json:"window,omitempty"`
}

// SendKeyInput is the input for the send_key tool.
type SendKeyInput struct {
	Key  string `json:"key,omitempty" jsonschema:"Key name; omitted when text is given"`
	Text string `json:"text,omitempty" jsonschema:"Printable characters, sent one key press each"`
	Alt  bool   `json:"alt,omitempty" jsonschema:"Hold Alt"`
}

// SendKeyOutput is the output for the send_key tool.
type SendKeyOutput struct {
	Focused uint64 `json:"focused,omitempty"`
	Presses int    `json:"presses"`
}

// TileWindowsInput is the input for the tile_windows tool.
type TileWindowsInput struct {
	Layout string `json:"layout,omitempty" jsonschema:"Layout name from tiling.layouts"`
	Gap    *int   `json:"gap,omitempty" jsonschema:"Gap between windows (default tiling.gap)"`
}

// TileWindowsOutput is the output for the tile_windows tool.
type TileWindowsOutput struct {
	Layout  string       `json:"layout"`
	Tiled   int          `json:"tiled"`
	Windows []WindowInfo `json:"windows"`
}

// SnapshotInput is the input for the snapshot tool.
type SnapshotInput struct {
	ID    uint64 `json:"id,omitempty" jsonschema:"Window ID; omitted for the whole screen"`
	Clean bool   `json:"clean,omitempty" jsonschema:"Strip frame lines and collapse blank rows"`
}

// SnapshotOutput is the output for the snapshot tool.
type SnapshotOutput struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Text   string `json:"text"`
}
