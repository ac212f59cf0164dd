package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaultConfig_ValidAndHasBuiltinLayouts(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if _, ok := cfg.Tiling.Layouts[DefaultBuiltinLayout]; !ok {
		t.Fatalf("expected builtin %q to exist in layouts", DefaultBuiltinLayout)
	}
	if cfg.Screen.Width != 80 || cfg.Screen.Height != 50 {
		t.Fatalf("expected 80x50 default screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected no files loaded, got %v", res.Files)
	}
	if res.Config.Tiling.DefaultLayout != DefaultBuiltinLayout {
		t.Fatalf("expected default layout %q, got %q", DefaultBuiltinLayout, res.Config.Tiling.DefaultLayout)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.TickIntervalMs != DefaultTickInterval {
		t.Fatalf("expected tick %d, got %d", DefaultTickInterval, res.Config.TickIntervalMs)
	}
}

func TestLoadFromPath_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"screen:",
		"  width: 120",
		"window_defaults:",
		"  closable: false",
		"theme:",
		"  desktop: navy",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Screen.Width != 120 || cfg.Screen.Height != DefaultScreenHeight {
		t.Fatalf("expected 120x%d, got %dx%d", DefaultScreenHeight, cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.WindowDefaults.Closable {
		t.Fatalf("expected closable false")
	}
	if !cfg.WindowDefaults.Framed {
		t.Fatalf("expected framed default to survive partial override")
	}
	if cfg.Theme.Desktop != "navy" || cfg.Theme.Frame == "" {
		t.Fatalf("unexpected theme %+v", cfg.Theme)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Base(path)) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_UserLayoutAddsToBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"tiling:",
		"  default_layout: quad",
		"  layouts:",
		"    quad:",
		"      mode: fixed",
		"      tile_region:",
		"        type: full",
		"      fixed_grid:",
		"        rows: 2",
		"        cols: 2",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	layout, err := res.Config.GetDefaultLayout()
	if err != nil {
		t.Fatalf("default layout: %v", err)
	}
	if layout.Mode != LayoutModeFixed || layout.FixedGrid.Rows != 2 {
		t.Fatalf("unexpected layout %+v", layout)
	}
	if _, err := res.Config.GetLayout("grid"); err != nil {
		t.Fatalf("expected builtin grid to survive: %v", err)
	}
}

func TestLoadFromPath_IncludeDirectoryOrderAndMainOverrides(t *testing.T) {
	dir := t.TempDir()

	configD := filepath.Join(dir, "config.d")
	if err := os.MkdirAll(configD, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(configD, "10-base.yaml"), "tiling:\n  gap: 5\ntick_interval_ms: 50\n")
	writeFile(t, filepath.Join(configD, "20-override.yaml"), "tiling:\n  gap: 6\n")

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"include:",
		"  - config.d",
		"tiling:",
		"  gap: 7",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Tiling.Gap != 7 {
		t.Fatalf("expected gap 7, got %d", res.Config.Tiling.Gap)
	}
	if res.Config.TickIntervalMs != 50 {
		t.Fatalf("expected included tick 50, got %d", res.Config.TickIntervalMs)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 files loaded, got %v", res.Files)
	}
}

func TestLoadFromPath_IncludeMissingPathHasContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "include:\n  - missing.yaml\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "include") || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected include error, got %v", err)
	}
}

func TestLoadFromPath_IncludeCycleDetection(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	writeFile(t, a, "include: b.yaml\n")
	writeFile(t, b, "include: a.yaml\n")

	_, err := LoadFromPath(a)
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	if !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "screen:\n  width: 2\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Path != "screen" {
		t.Fatalf("expected path screen, got %q", verr.Path)
	}
	if verr.Source.Line != 2 {
		t.Fatalf("expected source line 2, got %+v", verr.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"bad colour", func(c *Config) { c.Theme.Frame = "not-a-colour" }, "theme.frame"},
		{"empty colour", func(c *Config) { c.Theme.Title = "" }, "theme.title"},
		{"negative tick", func(c *Config) { c.TickIntervalMs = -1 }, "tick_interval_ms"},
		{"transparency range", func(c *Config) { c.WindowDefaults.Transparency = 101 }, "window_defaults.transparency"},
		{"negative gap", func(c *Config) { c.Tiling.Gap = -1 }, "tiling.gap"},
		{"unknown default layout", func(c *Config) { c.Tiling.DefaultLayout = "nope" }, "tiling.default_layout"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"fixed without grid", func(c *Config) {
			c.Tiling.Layouts["broken"] = Layout{Mode: LayoutModeFixed, TileRegion: TileRegion{Type: RegionFull}}
		}, "tiling.layouts.broken"},
		{"custom region overflow", func(c *Config) {
			c.Tiling.Layouts["wide"] = Layout{
				Mode: LayoutModeAuto,
				TileRegion: TileRegion{
					Type: RegionCustom, XPercent: 50, WidthPercent: 60, HeightPercent: 100,
				},
			}
		}, "tiling.layouts.wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q (%v)", tt.path, verr.Path, err)
			}
		})
	}
}

func TestGetLoggingConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	lc := cfg.GetLoggingConfig()
	if lc.MaxSizeMB != 10 || lc.MaxFiles != 3 {
		t.Fatalf("unexpected rotation defaults %+v", lc)
	}
	if !strings.HasSuffix(lc.File, filepath.Join("termstack", "termstack.log")) {
		t.Fatalf("unexpected log file %q", lc.File)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen.Width = 100
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, string(data))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load marshalled config: %v", err)
	}
	if res.Config.Screen.Width != 100 {
		t.Fatalf("expected width 100, got %d", res.Config.Screen.Width)
	}
}
