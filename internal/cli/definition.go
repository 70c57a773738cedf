package cli

import (
	"fmt"
	"multilookup/internal/global"
	"multilookup/internal/lookup"
	"runtime"
	"time"
)

// Command line definition (parsed by go-arg)
type Options struct {
	Requesters    int           `arg:"positional,required" placeholder:"REQUESTERS" help:"number of file reading threads <1...10>"`
	Resolvers     int           `arg:"positional,required" placeholder:"RESOLVERS" help:"number of lookup threads <1...10>"`
	RequestLog    string        `arg:"positional,required" placeholder:"REQUEST-LOG" help:"file receiving one line per accepted or skipped hostname"`
	ResolutionLog string        `arg:"positional,required" placeholder:"RESOLUTION-LOG" help:"file receiving one line per lookup result"`
	InputFiles    []string      `arg:"positional,required" placeholder:"FILE" help:"hostname files, one name per line (up to 100)"`
	Verbosity     int           `arg:"-v,--verbosity" default:"1" help:"increase detailed progress messages (higher is more verbose) <0...5>"`
	QueueSize     int           `arg:"--queue-size" default:"10" help:"capacity of the shared hostname queue (at least 1)"`
	DNSServer     string        `arg:"--dns-server" placeholder:"HOST[:PORT]" help:"query this nameserver instead of the system resolver"`
	Timeout       time.Duration `arg:"--timeout" default:"5s" help:"upper bound for a single lookup"`
	Beats         string        `arg:"--beats" placeholder:"HOST:PORT" help:"also ship every resolution to this beats (lumberjack v2) endpoint"`
	Summary       string        `arg:"--summary" placeholder:"PATH" help:"write a JSON run summary to this file"`
}

func (Options) Description() (text string) {
	text = "Resolves hostnames read from files using concurrent requester and resolver threads"
	return
}

func (Options) Version() (text string) {
	text = fmt.Sprintf("%s %s\nBuilt using %s(%s) for %s on %s",
		global.ProgBaseName, global.ProgVersion, runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
	return
}

// Translates parsed options into a pipeline configuration
func (opts Options) Config() (cfg lookup.Config) {
	cfg = lookup.Config{
		Requesters:        opts.Requesters,
		Resolvers:         opts.Resolvers,
		RequestLogPath:    opts.RequestLog,
		ResolutionLogPath: opts.ResolutionLog,
		InputFiles:        opts.InputFiles,
		HostQueueSize:     opts.QueueSize,
		LookupTimeout:     opts.Timeout,
		DNSServer:         opts.DNSServer,
		BeatsEndpoint:     opts.Beats,
		SummaryPath:       opts.Summary,
	}
	return
}
