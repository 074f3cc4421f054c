// cmd/pipedriver/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pipedriver/internal/adapters/input"
	"pipedriver/internal/adapters/output"
	"pipedriver/internal/core/usecases"
	"pipedriver/internal/platform/config"
	"pipedriver/internal/platform/logx"
	"pipedriver/internal/platform/ui"
	"pipedriver/internal/sources/pipelineapi"
)

var (
	// Set via -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintHelp {
		config.PrintHelp()
		return
	}
	if cfg.PrintVersion {
		config.PrintVersion(version, commit, date)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: pipedriver -h for help")
		os.Exit(2)
	}

	// Shared logger
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.LogLevel))

	logger.Info("pipedriver starting",
		"version", version,
		"commit", commit,
		"date", date,
		"input", cfg.InputPath,
		"endpoint", cfg.Endpoint,
		"timeout_s", cfg.TimeoutS,
	)

	// Context canceled on SIGINT/SIGTERM. Batches already in flight run to
	// completion; the remaining ones are skipped and the summary still lands.
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// Output directory must exist before the first batch completes.
	writer := output.NewWriter(cfg.OutputDir, logger)
	if err := writer.EnsureDir(); err != nil {
		logger.Err(err, "phase", "setup")
		os.Exit(1)
	}

	client := pipelineapi.New(pipelineapi.Config{
		Endpoint:    cfg.Endpoint,
		Timeout:     cfg.Timeout(),
		SnapshotDir: cfg.SnapshotDir,
	}, writer, logger)

	loader := input.NewCSVLoader(logger)

	var presenter ui.Presenter
	if cfg.Quiet {
		presenter = ui.NewNoopPresenter()
	} else {
		presenter = ui.NewPTermPresenter()
	}

	runner := usecases.NewRunner(usecases.RunnerOptions{
		Loader:    loader,
		Submitter: client,
		Summaries: writer,
		Presenter: presenter,
		Logger:    logger,
		InputPath: cfg.InputPath,
		Limit:     cfg.Limit,
	})

	summary, runErr := runner.Run(ctx)
	if runErr != nil {
		logger.Err(runErr, "phase", "run")
		os.Exit(1)
	}

	logger.Info("pipedriver finished",
		"core", summary.Core,
		"advanced", summary.Advanced,
		"powerhouse", summary.Powerhouse,
		"total_time_minutes", summary.TotalTimeMinutes,
	)
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
// The returned cancel func releases the signal handler and the goroutine.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanup
}
