package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/metrics"
	"github.com/phanxgames/folio/termhost"
	prom "github.com/prometheus/client_golang/prometheus"
)

// TermCmd implements the 'term' command.
type TermCmd struct {
	Content        string  `arg:"" help:"Content file" type:"existingfile"`
	DocumentHeight float64 `help:"Document height in page pixels (0 derives it from section bounds)" default:"0"`
	MetricsAddr    string  `help:"Serve Prometheus metrics on this address while previewing (e.g. :9090)"`
}

// Run executes the term command.
func (t *TermCmd) Run(g *Global, root *CLI) error {
	c, err := folio.LoadContentFile(t.Content)
	if err != nil {
		return err
	}
	height := t.DocumentHeight
	if height <= 0 {
		height = documentHeight(c)
	}

	h := termhost.New(termhost.Options{Nav: c.Nav, DocumentHeight: height, Logger: g.Logger})
	page := h.Page()
	page.SetDebugMode(root.Debug)
	if err := page.MountContent(c); err != nil {
		g.Logger.Warn("Some sections mounted inert", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if t.MetricsAddr != "" {
		reg := prom.NewRegistry()
		page.SetEventSink(metrics.NewRecorder(reg))
		srv := &http.Server{Addr: t.MetricsAddr, Handler: metrics.HTTPHandler(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				g.Logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := h.Run(ctx, screen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// documentHeight is the bottom edge of the lowest section.
func documentHeight(c *folio.Content) float64 {
	var bottom float64
	for _, s := range c.Sections {
		bottom = max(bottom, s.Bounds.Y+s.Bounds.Height)
	}
	return bottom
}
