// Package main is the entry point for the kiln editor.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiln-editor/kiln/internal/app"
	"github.com/kiln-editor/kiln/internal/config"
	"github.com/kiln-editor/kiln/internal/terminal"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: kiln [file]\n")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := app.NullLogger
	if cfg.Log.Path != "" {
		logger, err = app.OpenFileLogger(cfg.Log.Path, app.ParseLogLevel(cfg.Log.Level))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer logger.Close()
	}

	term, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := term.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Ensure the terminal comes back on all exit paths.
	defer term.Restore()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = term.Restore()
		os.Exit(1)
	}()

	session, err := app.NewSession(app.Options{
		Terminal: term,
		Config:   cfg,
		Logger:   logger,
		Version:  version,
	})
	if err != nil {
		_ = term.Restore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer session.Close()

	if len(os.Args) == 2 {
		if err := session.OpenFile(os.Args[1]); err != nil {
			_ = term.Restore()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := session.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		_ = term.Restore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
