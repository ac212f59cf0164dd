package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/1broseidon/termstack/internal/input"
	"github.com/1broseidon/termstack/internal/logging"
	"github.com/1broseidon/termstack/internal/surface"
	"github.com/1broseidon/termstack/internal/wm"
)

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: termstack run [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the interactive desktop. Ctrl+C or Ctrl+Q quits.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := fs.String("config", "", "Config file path (default: ~/.config/termstack/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "run requires an interactive terminal; try 'termstack snapshot'")
		return 1
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config

	logger, closer, err := logging.New(cfg.GetLoggingConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return 1
	}
	defer closer.Close()

	t, err := surface.NewTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	w, h := t.Size()
	m, err := wm.NewManager(cfg, surface.NewBuffer(w, h), t, logger)
	if err != nil {
		t.Fini()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	d, err := buildDemo(m)
	if err != nil {
		t.Fini()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", "width", w, "height", h)
	err = runSession(ctx, t, d, cfg.TickInterval())
	t.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Info("session finished")
	return 0
}

// runSession feeds terminal events and ticks to the manager until the
// context ends or the user quits.
func runSession(ctx context.Context, t *surface.Terminal, d *demo, tick time.Duration) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := t.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	m := d.mgr
	var dec input.Decoder
	m.RepaintAll()
	m.Step(nil)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			for _, e := range dec.Decode(ev) {
				if quitKey(e) {
					return nil
				}
				if _, ok := e.(input.Resize); ok {
					t.Sync()
				}
				m.Step(e)
			}
		case <-ticker.C:
			d.refresh()
			m.Step(nil)
		}
	}
}

func quitKey(ev input.Event) bool {
	k, ok := ev.(input.KeyPress)
	return ok && (k.Key == input.KeyCtrlC || k.Key == input.KeyCtrlQ)
}
