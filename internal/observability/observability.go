// Package observability starts the tracing, log export and profiling sidecars
// configured for the process.
package observability

import (
	"context"
	"errors"
	"time"

	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

// Shutdown flushes and stops everything Setup started.
type Shutdown func(ctx context.Context) error

// Setup starts Uptrace, Pyroscope and the pprof listener in that order. When a
// later step fails the earlier ones are stopped before returning.
func Setup(cfg config.Config, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	stopTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, err
	}

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = stopTracing(context.Background())
		return nil, err
	}

	pprofSrv, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = stopProfiler()
		_ = stopTracing(context.Background())
		return nil, err
	}

	return func(ctx context.Context) error {
		timeout := cfg.ShutdownTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		return errors.Join(
			StopPprofServer(pprofSrv, logger, timeout),
			stopProfiler(),
			stopTracing(ctx),
		)
	}, nil
}
