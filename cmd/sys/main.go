package main

import (
	"context"
	"io"
	"os"

	"horizonx-sys/internal/cli"
	"horizonx-sys/internal/config"
	"horizonx-sys/internal/logger"
	"horizonx-sys/internal/metrics"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run never fails on configuration: unusable settings fall back to their
// defaults and are reported as warnings.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, warnings := config.Load()

	out, closeLog, logErr := logger.Output(cfg, stderr)
	defer closeLog()

	log := logger.New(cfg, out).With("version", version, "commit", commit)

	for _, w := range warnings {
		log.Warn("invalid config", "detail", w)
	}
	if logErr != nil {
		log.Warn("debug log unavailable, writing to stderr", "error", logErr)
	}

	collector := metrics.NewCollector(metrics.NewSystemProvider(log), log)
	app := cli.New(collector, log, stdout, stderr, version)

	return app.Run(ctx, args)
}
