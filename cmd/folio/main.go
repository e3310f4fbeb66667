// Command folio validates, replays, and previews folio animation content.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Scroll-driven animation content tools"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
