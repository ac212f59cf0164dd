package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/termstack/internal/config"
	"github.com/1broseidon/termstack/internal/logging"
	"github.com/1broseidon/termstack/internal/wm"
)

func runSnapshot(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: termstack snapshot [--width N] [--height N] [--tile LAYOUT] [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Build the demo desktop without a terminal and print the composited screen.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	width := fs.Int("width", 0, "Screen width (default: screen.width from config)")
	height := fs.Int("height", 0, "Screen height (default: screen.height from config)")
	tile := fs.String("tile", "", "Tile the windows with this layout before printing")
	path := fs.String("config", "", "Config file path (default: ~/.config/termstack/config.yaml)")
	verbose := fs.Bool("verbose", false, "Log engine activity to stderr")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "snapshot takes no arguments")
		fs.Usage()
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	if *width > 0 {
		cfg.Screen.Width = *width
	}
	if *height > 0 {
		cfg.Screen.Height = *height
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}

	if err := snapshot(out, cfg, *tile, level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// snapshot renders the demo desktop headless and writes it to out.
func snapshot(out io.Writer, cfg *config.Config, tile, level string) error {
	m, err := wm.NewManager(cfg, nil, nil, logging.NewWriter(os.Stderr, level))
	if err != nil {
		return err
	}
	d, err := buildDemo(m)
	if err != nil {
		return err
	}
	if tile != "" {
		if err := d.tile(tile); err != nil {
			return err
		}
	}
	d.refresh()
	m.Step(nil)

	header := fmt.Sprintf("termstack %dx%d, %d windows", m.ScreenWidth(), m.ScreenHeight(), m.Len())
	fmt.Fprintln(out, headerStyle.Render(header))
	fmt.Fprintln(out, m.Screen().String())
	return nil
}
