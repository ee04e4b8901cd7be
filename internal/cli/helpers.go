package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/factors/internal/logging"
	"github.com/aretw0/factors/pkg/domain"
	"github.com/aretw0/factors/pkg/observability"
)

// createLogger configures the application logger on Stderr.
// An invalid level falls back to Info with a warning.
func createLogger(level string) *slog.Logger {
	lvl, err := logging.ParseLevel(level)
	logger := logging.New(lvl)
	if err != nil {
		logger.Warn("falling back to info log level", "error", err)
	}
	return logger
}

func chainHooks(hooks []domain.Hooks) domain.Hooks {
	if len(hooks) == 1 {
		return hooks[0]
	}
	return observability.Chain(hooks...)
}

// ErrorMessage renders err the way it is shown to the user.
func ErrorMessage(path string, err error) string {
	if errors.Is(err, domain.ErrFileNotFound) {
		return fmt.Sprintf("Error: %s does not exist.", path)
	}
	return fmt.Sprintf("Error: %v", err)
}

// writeError prints the missing-file message on stdout and every other failure on stderr.
func writeError(opts RunOptions, err error) {
	w := opts.Stderr
	if errors.Is(err, domain.ErrFileNotFound) {
		w = opts.Stdout
	}
	fmt.Fprintln(w, ErrorMessage(opts.Path, err))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
