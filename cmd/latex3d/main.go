// Command latex3d renders figurate-number solids as 3D-transformed HTML and
// substitutes them for numeric placeholders in text.
//
// Usage:
//
//	latex3d [--catalog file] [--log-level level] < post.html > out.html
//	latex3d render <code>
//	latex3d list
//	latex3d dump --format toml
//
// Without a subcommand latex3d acts as a stdin → stdout filter, suitable as
// a static-site post-processing hook. The default catalog is built in; a
// YAML or TOML file replaces it.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("latex3d failed", "err", err)
		stop()
		os.Exit(1)
	}
}
