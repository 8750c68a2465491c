// Package main is the entry point for the scribe editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scribeedit/scribe/internal/app"
	"github.com/scribeedit/scribe/internal/config"
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
	var (
		configPath  string
		logFile     string
		logLevel    string
		readOnly    bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&logFile, "log-file", "", "write logs to this file")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&readOnly, "readonly", false, "open the file read-only")
	flag.BoolVar(&readOnly, "R", false, "open the file read-only (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scribe - a modal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("scribe %s (%s)\n", version, commit)
		return 0
	}

	filename := flag.Arg(0)
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file may be opened")
		return 1
	}

	logger := app.NullLogger
	if logFile != "" {
		l, err := app.NewFileLogger(app.ParseLogLevel(logLevel), logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			return 1
		}
		defer l.Close()
		logger = l
	}

	opts := []app.Option{app.WithLogger(logger)}
	if configPath != "" {
		opts = append(opts, app.WithConfigPath(configPath))
	} else if p := config.DefaultPath(); p != "" {
		opts = append(opts, app.WithConfigPath(p))
	}
	if readOnly {
		opts = append(opts, app.WithReadOnly())
	}

	editor, err := app.New(filename, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
