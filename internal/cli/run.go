package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/factors/internal/config"
	"github.com/aretw0/factors/internal/presentation/tui"
	"github.com/aretw0/factors/pkg/report"
)

// RunOptions contains all the configuration for a file run.
type RunOptions struct {
	Path    string
	Config  config.Config
	Summary bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// RunFile factorizes the numbers in opts.Path and returns the process exit status.
//
// A missing file prints "Error: <path> does not exist." on stdout and no timing line.
// Parse, read and cache failures print their detail on stderr and leave stdout empty.
// All of them exit with status 1.
func RunFile(ctx context.Context, opts RunOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := createLogger(opts.Config.LogLevel)

	engine, closeCache, err := createEngine(ctx, opts.Config, logger)
	defer closeCache()
	if err != nil {
		writeError(opts, err)
		return 1
	}

	var handler report.Handler
	if opts.Config.Output == config.OutputJSON {
		handler = report.NewJSONHandler(opts.Stdout)
	} else {
		handler = report.NewTextHandler(opts.Stdout)
	}

	sum, err := engine.RunFile(ctx, opts.Path, handler)
	if err != nil {
		if isInterrupted(err) {
			logger.Info("run interrupted", "path", opts.Path, "processed", sum.Numbers)
			return 130
		}
		logger.Debug("run failed", "path", opts.Path, "error", err)
		writeError(opts, err)
		return 1
	}

	if opts.Summary {
		fmt.Fprint(opts.Stderr, tui.RenderSummary(tui.Summary{
			Source:     opts.Path,
			Numbers:    sum.Numbers,
			Factorized: sum.Found,
			Cached:     sum.Cached,
			Seconds:    sum.Elapsed.Seconds(),
		}, tui.IsTerminal(opts.Stderr)))
	}
	return 0
}
