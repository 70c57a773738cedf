// Process lifecycle handling (interrupts)
package lifecycle

import (
	"context"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"os"
	"os/signal"
	"syscall"
)

// Cancels the running job on the first interrupt or termination signal.
// Returns after handling one signal or once ctx ends.
func SignalHandler(ctx context.Context, cancel context.CancelFunc) {
	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	watchSignals(ctx, sigChan, cancel)
}

func watchSignals(ctx context.Context, sigChan <-chan os.Signal, cancel context.CancelFunc) {
	select {
	case sig := <-sigChan:
		logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
			"Received signal: %v, stopping lookups\n", sig)
		cancel()

		// Make sure the message shows before workers report their exit
		logger := logctx.GetLogger(ctx)
		if logger != nil {
			logger.Wake()
		}
	case <-ctx.Done():
	}
}
