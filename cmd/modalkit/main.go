// Package main is an interactive terminal playground for the modalkit
// engine. It hosts a memory buffer behind a tcell screen, feeds key
// events through the engine, and renders the buffer, selection, and
// mode line so the modal grammar can be exercised by hand.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	pg, err := newPlayground(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer pg.shutdown()

	if err := pg.loop(); err != nil {
		if errors.Is(err, errQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options carries the command-line configuration.
type options struct {
	ConfigPath string
	File       string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML, watched for changes)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Modalkit - modal editing playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modalkit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modalkit                    Open with sample text\n")
		fmt.Fprintf(os.Stderr, "  modalkit notes.txt          Load a file into the buffer\n")
		fmt.Fprintf(os.Stderr, "  modalkit -c modalkit.toml   Use a config file with hot reload\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Modalkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}
