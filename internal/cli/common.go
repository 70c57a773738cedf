package cli

import (
	"errors"
	"fmt"
	"io"
	"multilookup/internal/global"

	"github.com/alexflint/go-arg"
)

// Parses program arguments (without the program name).
// When exit is true the caller should stop with exitCode (help, version, or usage errors).
func ParseArgs(programArgs []string, stdout, stderr io.Writer) (opts Options, exit bool, exitCode int) {
	parser, err := arg.NewParser(arg.Config{Program: global.ProgBaseName, IgnoreEnv: true}, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid argument definition: %v\n", err)
		exit, exitCode = true, 1
		return
	}

	err = parser.Parse(programArgs)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		exit = true
		return
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, opts.Version())
		exit = true
		return
	case err != nil:
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exit, exitCode = true, 1
		return
	}

	if opts.Verbosity < global.VerbosityNone || opts.Verbosity > global.VerbosityDebug {
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "Error: verbosity must be between %d and %d\n", global.VerbosityNone, global.VerbosityDebug)
		exit, exitCode = true, 1
		return
	}
	if opts.QueueSize < 1 {
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "Error: hostname queue size must be at least 1 (got %d)\n", opts.QueueSize)
		exit, exitCode = true, 1
		return
	}
	global.Verbosity = opts.Verbosity
	return
}
