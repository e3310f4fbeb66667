package main

import (
	"log/slog"
	"os"
)

// Global is passed to every subcommand's Run.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`
	Debug   bool `help:"Warn about operations on stale handles"`

	Validate ValidateCmd `cmd:"" help:"Validate content files"`
	Replay   ReplayCmd   `cmd:"" help:"Replay a signal script against content and print snapshots"`
	Term     TermCmd     `cmd:"" help:"Preview content in the terminal"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
