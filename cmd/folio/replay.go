package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phanxgames/folio"
	"gopkg.in/yaml.v3"
)

// ReplayCmd implements the 'replay' command.
type ReplayCmd struct {
	Content string  `arg:"" help:"Content file" type:"existingfile"`
	Script  string  `arg:"" help:"JSON replay script" type:"existingfile"`
	Format  string  `short:"f" default:"yaml" enum:"yaml,json" help:"Output format (yaml or json)"`
	Width   float64 `help:"Viewport width applied before the script runs (0 to skip)" default:"0"`
	Height  float64 `help:"Viewport height applied before the script runs (0 to skip)" default:"0"`
}

// Run executes the replay command.
func (r *ReplayCmd) Run(g *Global, root *CLI) error {
	script, err := os.ReadFile(r.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	c, err := folio.LoadContentFile(r.Content)
	if err != nil {
		return err
	}
	p := folio.NewPage(folio.PageOptions{Nav: c.Nav})
	p.SetLogger(g.Logger)
	p.SetDebugMode(root.Debug)
	defer p.Close()
	return runReplay(p, c, script, r.Width, r.Height, r.Format, os.Stdout, g.Logger)
}

func runReplay(p *folio.Page, c *folio.Content, scriptData []byte, width, height float64, format string, w io.Writer, log *slog.Logger) error {
	if err := p.MountContent(c); err != nil {
		log.Warn("Some sections mounted inert", "error", err)
	}
	if width > 0 && height > 0 {
		p.SetViewport(width, height)
	}
	script, err := folio.LoadScript(scriptData)
	if err != nil {
		return err
	}
	snaps, runErr := script.Run(p)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snaps); err != nil {
			return err
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snaps); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return runErr
}
