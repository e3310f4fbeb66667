package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phanxgames/folio"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Files []string      `arg:"" help:"Content files to validate" type:"existingfile"`
	Watch bool          `short:"w" help:"Re-validate whenever a file changes"`
	Wait  time.Duration `help:"Debounce interval for --watch" default:"200ms"`
}

// Run executes the validate command.
func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	failed := false
	for _, f := range v.Files {
		if err := validateFile(f, root.Debug, os.Stdout); err != nil {
			failed = true
		}
	}
	if !v.Watch {
		if failed {
			return errors.New("validation failed")
		}
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return watchFiles(ctx, v.Files, v.Wait, g.Logger, func(path string) {
		_ = validateFile(path, root.Debug, os.Stdout)
	})
}

// validateFile loads path, validates it, and mounts it on a scratch page so
// every registration runs. A report line is written to w for each problem.
func validateFile(path string, debug bool, w io.Writer) error {
	c, err := folio.LoadContentFile(path)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return err
	}
	verr := c.Validate()

	p := folio.NewPage(folio.PageOptions{Nav: c.Nav})
	p.SetDebugMode(debug)
	p.SetLogger(slog.Default())
	merr := p.MountContent(c)
	defer p.Close()

	if err := errors.Join(verr, merr); err != nil {
		for _, s := range p.Sections() {
			if s.Inert() {
				fmt.Fprintf(w, "%s: section %q mounted inert: %v\n", path, s.ID(), s.Err())
			}
		}
		if verr != nil {
			fmt.Fprintf(w, "%s: %v\n", path, verr)
		} else {
			fmt.Fprintf(w, "%s: %v\n", path, merr)
		}
		return err
	}

	children := 0
	for _, s := range p.Sections() {
		children += s.Sequencer().Len()
	}
	fmt.Fprintf(w, "%s: ok (%d sections, %d children, %d parallax, %d interactive)\n",
		path, len(p.Sections()), children, p.Parallax().Len(), p.Pointer().Regions())
	return nil
}

// watchFiles calls fn for a file after it changes, debounced by wait. It
// watches parent directories since editors often replace files on save.
func watchFiles(ctx context.Context, files []string, wait time.Duration, log *slog.Logger, fn func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]string, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", f, err)
		}
		targets[abs] = f
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(abs), err)
		}
	}
	log.Info("Watching content files", "files", len(files))

	pending := make(map[string]bool)
	timer := time.NewTimer(wait)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, tracked := targets[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("Content change detected", "file", event.Name, "op", event.Op.String())
			pending[path] = true
			timer.Reset(wait)
		case <-timer.C:
			for path := range pending {
				fn(path)
			}
			clear(pending)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Content watcher error", "error", err)
		}
	}
}
