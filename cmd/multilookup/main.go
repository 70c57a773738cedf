package main

import (
	"context"
	"multilookup/internal/cli"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"os"

	"golang.org/x/term"
)

func main() {
	opts, exit, exitCode := cli.ParseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if exit {
		os.Exit(exitCode)
	}

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger("global", global.Verbosity, ctx.Done()) // New logger tied to global
	logger.HideTimestamps = term.IsTerminal(int(os.Stdout.Fd()))       // Interactive users only need the messages
	ctx = logctx.WithLogger(ctx, logger)                               // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stdout, os.Stderr)                  // Errors to stderr, everything else to stdout

	exitCode = cli.LookupMode(ctx, opts)

	// Finish up any stdout writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()
	os.Exit(exitCode)
}
