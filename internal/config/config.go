package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// LayoutMode defines how windows are arranged when tiling.
type LayoutMode string

const (
	LayoutModeAuto        LayoutMode = "auto"         // Dynamic grid based on count.
	LayoutModeFixed       LayoutMode = "fixed"        // Specific rows × cols.
	LayoutModeVertical    LayoutMode = "vertical"     // Single column stack.
	LayoutModeHorizontal  LayoutMode = "horizontal"   // Single row side-by-side.
	LayoutModeMasterStack LayoutMode = "master-stack" // Master pane left, stack grid right.
)

// RegionType defines tile region presets.
type RegionType string

const (
	RegionFull       RegionType = "full"
	RegionLeftHalf   RegionType = "left-half"
	RegionRightHalf  RegionType = "right-half"
	RegionTopHalf    RegionType = "top-half"
	RegionBottomHalf RegionType = "bottom-half"
	RegionCustom     RegionType = "custom"
)

// TileRegion defines which part of the screen receives tiled windows.
type TileRegion struct {
	Type          RegionType `yaml:"type"`
	XPercent      int        `yaml:"x_percent,omitempty"`      // 0-100
	YPercent      int        `yaml:"y_percent,omitempty"`      // 0-100
	WidthPercent  int        `yaml:"width_percent,omitempty"`  // 0-100
	HeightPercent int        `yaml:"height_percent,omitempty"` // 0-100
}

// FixedGrid defines specific grid dimensions.
type FixedGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MasterStack defines the master-stack layout parameters.
type MasterStack struct {
	MasterWidthPercent int `yaml:"master_width_percent"` // Width of master pane as percentage (10-90)
	MaxStackRows       int `yaml:"max_stack_rows"`       // Maximum rows in the stack grid (>= 1)
	MaxStackCols       int `yaml:"max_stack_cols"`       // Maximum columns in the stack grid (>= 1)
}

// Layout defines a tiling arrangement in cell units.
type Layout struct {
	Mode            LayoutMode  `yaml:"mode"`
	TileRegion      TileRegion  `yaml:"tile_region"`
	FixedGrid       FixedGrid   `yaml:"fixed_grid,omitempty"`
	MasterStack     MasterStack `yaml:"master_stack,omitempty"`
	MaxWindowWidth  int         `yaml:"max_window_width,omitempty"`  // 0 = unlimited
	MaxWindowHeight int         `yaml:"max_window_height,omitempty"` // 0 = unlimited
	FlexibleLastRow bool        `yaml:"flexible_last_row,omitempty"` // Last row windows expand to fill width (auto mode only)
}

// ScreenSize is the surface size used when no terminal is attached.
type ScreenSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowDefaults is applied to windows created without explicit flags.
type WindowDefaults struct {
	Framed        bool `yaml:"framed"`
	Resizable     bool `yaml:"resizable"`
	Draggable     bool `yaml:"draggable"`
	Closable      bool `yaml:"closable"`
	CloseOnEscape bool `yaml:"close_on_escape"`
	RaiseChildren bool `yaml:"raise_children"`
	AutoRedraw    bool `yaml:"auto_redraw"`
	// RedrawIntervalMs forces a periodic redraw; 0 disables it.
	RedrawIntervalMs      int `yaml:"redraw_interval_ms"`
	Transparency          int `yaml:"transparency"`           // 0 (opaque) - 100
	TransparencyUnfocused int `yaml:"transparency_unfocused"` // 0 (opaque) - 100
}

// Theme holds colour names or #rrggbb values understood by tcell.
type Theme struct {
	Desktop             string `yaml:"desktop"`
	Foreground          string `yaml:"foreground"`
	Background          string `yaml:"background"`
	ForegroundHighlight string `yaml:"foreground_highlight"`
	BackgroundHighlight string `yaml:"background_highlight"`
	Frame               string `yaml:"frame"`
	FrameFocused        string `yaml:"frame_focused"`
	Title               string `yaml:"title"`
}

// Tiling configures the tile command.
type Tiling struct {
	DefaultLayout string            `yaml:"default_layout"`
	Gap           int               `yaml:"gap"`
	Layouts       map[string]Layout `yaml:"layouts,omitempty"`
}

// LoggingConfig configures the session log file.
type LoggingConfig struct {
	// Enabled turns file logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path (default: ~/.local/share/termstack/termstack.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective termstack configuration.
type Config struct {
	Screen         ScreenSize     `yaml:"screen"`
	TickIntervalMs int            `yaml:"tick_interval_ms"`
	AutoRedraw     bool           `yaml:"auto_redraw"`
	WindowDefaults WindowDefaults `yaml:"window_defaults"`
	Theme          Theme          `yaml:"theme"`
	Tiling         Tiling         `yaml:"tiling"`
	Logging        LoggingConfig  `yaml:"logging,omitempty"`
}

const (
	DefaultScreenWidth  = 80
	DefaultScreenHeight = 50
	DefaultTickInterval = 33 // ~30 fps
	DefaultTileGap      = 1
)

// ValidationError reports the config path that failed validation.
type ValidationError struct {
	Path   string
	Err    error
	Source Source
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" && e.Source.File != "" {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultConfig returns a configuration that validates without a file.
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenSize{
			Width:  DefaultScreenWidth,
			Height: DefaultScreenHeight,
		},
		TickIntervalMs: DefaultTickInterval,
		AutoRedraw:     true,
		WindowDefaults: WindowDefaults{
			Framed:           true,
			Resizable:        true,
			Draggable:        true,
			Closable:         true,
			RaiseChildren:    true,
			AutoRedraw:       true,
			RedrawIntervalMs: 0,
		},
		Theme: Theme{
			Desktop:             "#1f2933",
			Foreground:          "#f5f7fa",
			Background:          "#102a43",
			ForegroundHighlight: "#102a43",
			BackgroundHighlight: "#9fb3c8",
			Frame:               "#7f8c8d",
			FrameFocused:        "#3498db",
			Title:               "#ffffff",
		},
		Tiling: Tiling{
			DefaultLayout: DefaultBuiltinLayout,
			Gap:           DefaultTileGap,
			Layouts:       BuiltinLayouts(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TickInterval returns the outer loop period.
func (c *Config) TickInterval() time.Duration {
	if c == nil || c.TickIntervalMs <= 0 {
		return DefaultTickInterval * time.Millisecond
	}
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// RedrawInterval returns the default per-window forced redraw interval.
func (d WindowDefaults) RedrawInterval() time.Duration {
	return time.Duration(d.RedrawIntervalMs) * time.Millisecond
}

// GetLoggingConfig returns the logging section with defaults filled in.
func (c *Config) GetLoggingConfig() LoggingConfig {
	if c == nil {
		return LoggingConfig{}
	}
	cfg := c.Logging
	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = os.Getenv("HOME")
		}
		if home == "" {
			// Last resort fallback - use current directory
			home = "."
		}
		cfg.File = filepath.Join(home, ".local/share/termstack/termstack.log")
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = 3
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// GetLayout returns a named layout.
func (c *Config) GetLayout(name string) (*Layout, error) {
	layout, ok := c.Tiling.Layouts[name]
	if !ok {
		return nil, fmt.Errorf("layout %q not found (available: %s)", name, strings.Join(c.LayoutNames(), ", "))
	}
	return &layout, nil
}

// GetDefaultLayout returns the layout named by tiling.default_layout.
func (c *Config) GetDefaultLayout() (*Layout, error) {
	return c.GetLayout(c.Tiling.DefaultLayout)
}

// LayoutNames returns layout names in sorted order.
func (c *Config) LayoutNames() []string {
	names := make([]string, 0, len(c.Tiling.Layouts))
	for name := range c.Tiling.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if c.Screen.Width < 3 || c.Screen.Height < 3 {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("screen must be at least 3x3, got %dx%d", c.Screen.Width, c.Screen.Height)}
	}
	if c.TickIntervalMs < 0 {
		return &ValidationError{Path: "tick_interval_ms", Err: fmt.Errorf("tick_interval_ms must be >= 0")}
	}
	if c.WindowDefaults.RedrawIntervalMs < 0 {
		return &ValidationError{Path: "window_defaults.redraw_interval_ms", Err: fmt.Errorf("redraw_interval_ms must be >= 0")}
	}
	if err := validatePercent(c.WindowDefaults.Transparency); err != nil {
		return &ValidationError{Path: "window_defaults.transparency", Err: err}
	}
	if err := validatePercent(c.WindowDefaults.TransparencyUnfocused); err != nil {
		return &ValidationError{Path: "window_defaults.transparency_unfocused", Err: err}
	}
	colors := map[string]string{
		"theme.desktop":              c.Theme.Desktop,
		"theme.foreground":           c.Theme.Foreground,
		"theme.background":           c.Theme.Background,
		"theme.foreground_highlight": c.Theme.ForegroundHighlight,
		"theme.background_highlight": c.Theme.BackgroundHighlight,
		"theme.frame":                c.Theme.Frame,
		"theme.frame_focused":        c.Theme.FrameFocused,
		"theme.title":                c.Theme.Title,
	}
	paths := make([]string, 0, len(colors))
	for path := range colors {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := ValidateColor(colors[path]); err != nil {
			return &ValidationError{Path: path, Err: err}
		}
	}
	if c.Tiling.Gap < 0 {
		return &ValidationError{Path: "tiling.gap", Err: fmt.Errorf("gap must be >= 0")}
	}
	if len(c.Tiling.Layouts) == 0 {
		return &ValidationError{Path: "tiling.layouts", Err: fmt.Errorf("at least one layout is required")}
	}
	for _, name := range c.LayoutNames() {
		layout := c.Tiling.Layouts[name]
		if err := validateLayout(&layout); err != nil {
			return &ValidationError{Path: "tiling.layouts." + name, Err: err}
		}
	}
	if _, ok := c.Tiling.Layouts[c.Tiling.DefaultLayout]; !ok {
		return &ValidationError{Path: "tiling.default_layout", Err: fmt.Errorf("unknown layout %q", c.Tiling.DefaultLayout)}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging", Err: fmt.Errorf("max_size_mb and max_files must be >= 0")}
	}
	return nil
}

// ValidateColor accepts anything tcell can resolve to a colour.
func ValidateColor(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("colour must not be empty")
	}
	if tcell.GetColor(value) == tcell.ColorDefault {
		return fmt.Errorf("unknown colour %q", value)
	}
	return nil
}

func validatePercent(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100, got %d", v)
	}
	return nil
}

func validateLayout(layout *Layout) error {
	switch layout.Mode {
	case LayoutModeAuto, LayoutModeFixed, LayoutModeVertical, LayoutModeHorizontal, LayoutModeMasterStack:
	default:
		return fmt.Errorf("invalid mode %q", layout.Mode)
	}

	if layout.Mode == LayoutModeFixed {
		if layout.FixedGrid.Rows <= 0 || layout.FixedGrid.Cols <= 0 {
			return fmt.Errorf("fixed mode requires rows and cols to be positive")
		}
	}

	if layout.Mode == LayoutModeMasterStack {
		if layout.MasterStack.MasterWidthPercent < 10 || layout.MasterStack.MasterWidthPercent > 90 {
			return fmt.Errorf("master_stack.master_width_percent must be between 10 and 90")
		}
		if layout.MasterStack.MaxStackRows < 1 {
			return fmt.Errorf("master_stack.max_stack_rows must be >= 1")
		}
		if layout.MasterStack.MaxStackCols < 1 {
			return fmt.Errorf("master_stack.max_stack_cols must be >= 1")
		}
	}

	if layout.MaxWindowWidth < 0 || layout.MaxWindowHeight < 0 {
		return fmt.Errorf("max_window_width/height must be >= 0")
	}

	switch layout.TileRegion.Type {
	case RegionFull, RegionLeftHalf, RegionRightHalf, RegionTopHalf, RegionBottomHalf:
	case RegionCustom:
		r := layout.TileRegion
		if r.XPercent < 0 || r.XPercent > 100 || r.YPercent < 0 || r.YPercent > 100 {
			return fmt.Errorf("x_percent/y_percent must be between 0 and 100")
		}
		if r.WidthPercent <= 0 || r.WidthPercent > 100 || r.HeightPercent <= 0 || r.HeightPercent > 100 {
			return fmt.Errorf("width_percent/height_percent must be between 1 and 100")
		}
		if r.XPercent+r.WidthPercent > 100 || r.YPercent+r.HeightPercent > 100 {
			return fmt.Errorf("region extends past the screen")
		}
	default:
		return fmt.Errorf("invalid region type %q", layout.TileRegion.Type)
	}

	return nil
}
