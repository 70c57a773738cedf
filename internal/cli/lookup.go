package cli

import (
	"context"
	"multilookup/internal/global"
	"multilookup/internal/lifecycle"
	"multilookup/internal/logctx"
	"multilookup/internal/lookup"
)

// Runs one lookup pass and returns the process exit status
func LookupMode(ctx context.Context, opts Options) (exitCode int) {
	cliCtx := logctx.AppendCtxTag(ctx, global.NSCLI)

	pipeline, err := lookup.New(opts.Config())
	if err != nil {
		logctx.LogEvent(cliCtx, global.VerbosityStandard, global.ErrorLog, "Error: %v\n", err)
		exitCode = 1
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go lifecycle.SignalHandler(runCtx, cancel)

	summary, err := pipeline.Run(runCtx)
	if summary.Registry != nil {
		summary.Log(cliCtx)
	}
	if err != nil {
		logctx.LogEvent(cliCtx, global.VerbosityStandard, global.ErrorLog, "Error: %v\n", err)
		exitCode = 1
		return
	}
	return
}
