package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/termstack/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  termstack config validate [--config PATH]")
	fmt.Fprintln(w, "  termstack config print [--config PATH] [--defaults]")
	fmt.Fprintln(w, "  termstack config path")
}

func runConfig(args []string, out io.Writer) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}
	if isHelpArg(args) {
		printConfigUsage(out)
		return 0
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path (default: ~/.config/termstack/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(out, okStyle.Render("config: ok"))
		for _, f := range res.Files {
			fmt.Fprintln(out, dimStyle.Render("  loaded "+f))
		}
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path (default: ~/.config/termstack/config.yaml)")
		defaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}

		cfg := config.DefaultConfig()
		if !*defaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cfg = res.Config
			for _, f := range res.Files {
				fmt.Fprintf(out, "# loaded: %s\n", f)
			}
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprint(out, string(data))
		return 0

	case "path":
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "config path takes no arguments")
			return 2
		}
		p, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(out, p)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}
