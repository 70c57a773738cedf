// Multi-threaded hostname lookup pipeline.
// Requesters read input files into a bounded hostname queue, resolvers drain it.
package lookup

import (
	"context"
	"fmt"
	"multilookup/internal/externalio/beats"
	"multilookup/internal/externalio/dns"
	"multilookup/internal/externalio/file"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"multilookup/internal/metrics"
	"multilookup/internal/queue/bounded"
	"time"

	"golang.org/x/sync/errgroup"
)

// Validates configuration and prepares a run
func New(cfg Config) (new *Pipeline, err error) {
	cfg.setDefaults()
	err = cfg.Validate()
	if err != nil {
		return
	}

	new = &Pipeline{
		cfg:      cfg,
		registry: metrics.New(),
	}
	return
}

// Runs the whole pipeline to completion.
// Returns once every requester and resolver has exited and both logs are closed.
func (pipeline *Pipeline) Run(ctx context.Context) (summary Summary, err error) {
	startTime := time.Now()

	ctx = logctx.AppendCtxTag(ctx, global.NSLookup)
	namespace := logctx.GetTagList(ctx)
	pipeline.namespace = namespace

	// Logs are closed on every exit path
	defer pipeline.closeSinks(ctx)

	err = pipeline.openSinks(namespace)
	if err != nil {
		return
	}

	err = pipeline.setupResolver(namespace)
	if err != nil {
		return
	}

	err = pipeline.setupQueues(ctx, namespace)
	if err != nil {
		return
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"starting %d requesters and %d resolvers for %d files (hostname queue size %d)\n",
		pipeline.cfg.Requesters, pipeline.cfg.Resolvers, len(pipeline.cfg.InputFiles), pipeline.cfg.HostQueueSize)

	requesterGroup, resolverGroup := pipeline.startWorkers(ctx, namespace)

	// Join producers first, then consumers
	err = requesterGroup.Wait()
	if err != nil {
		return
	}
	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "all requesters finished\n")

	err = resolverGroup.Wait()
	if err != nil {
		return
	}
	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "all resolvers finished\n")

	err = pipeline.closeSinks(ctx)
	if err != nil {
		return
	}

	summary = pipeline.summarize(time.Since(startTime))

	if ctx.Err() != nil {
		err = fmt.Errorf("lookup run interrupted: %w", ctx.Err())
		return
	}

	if pipeline.cfg.SummaryPath != "" {
		err = summary.WriteReport(pipeline.cfg.SummaryPath)
		if err != nil {
			err = fmt.Errorf("failed writing summary report: %w", err)
			return
		}
	}
	return
}

// Opens both log files and the optional beats output
func (pipeline *Pipeline) openSinks(namespace []string) (err error) {
	requestNS := append(append([]string(nil), namespace...), global.NSRequestLog)
	pipeline.requestLog, err = file.NewOutput(requestNS, pipeline.cfg.RequestLogPath)
	if err != nil {
		err = fmt.Errorf("unable to open request log: %w", err)
		return
	}

	resolutionNS := append(append([]string(nil), namespace...), global.NSResolutionLog)
	pipeline.resolutionLog, err = file.NewOutput(resolutionNS, pipeline.cfg.ResolutionLogPath)
	if err != nil {
		err = fmt.Errorf("unable to open resolution log: %w", err)
		return
	}

	pipeline.beatsOut, err = beats.NewOutput(namespace, pipeline.cfg.BeatsEndpoint)
	if err != nil {
		err = fmt.Errorf("unable to open beats output: %w", err)
		return
	}
	return
}

// Flushes and closes every open sink. Safe to call more than once.
func (pipeline *Pipeline) closeSinks(ctx context.Context) (err error) {
	for _, output := range []*file.OutModule{pipeline.requestLog, pipeline.resolutionLog} {
		if output == nil {
			continue
		}
		lerr := output.Close()
		if lerr != nil && err == nil {
			err = fmt.Errorf("failed closing '%s': %w", output.Path(), lerr)
		}
	}

	if pipeline.beatsOut != nil {
		lerr := pipeline.beatsOut.Shutdown()
		if lerr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"failed closing beats output: %v\n", lerr)
		}
	}
	return
}

// Picks the lookup backend: injected, dedicated nameserver, or system
func (pipeline *Pipeline) setupResolver(namespace []string) (err error) {
	switch {
	case pipeline.cfg.Resolver != nil:
		pipeline.resolver = pipeline.cfg.Resolver
	case pipeline.cfg.DNSServer != "":
		pipeline.resolver, err = dns.NewServer(namespace, pipeline.cfg.DNSServer, pipeline.cfg.LookupTimeout)
		if err != nil {
			err = fmt.Errorf("invalid nameserver: %w", err)
			return
		}
	default:
		pipeline.resolver = dns.NewSystem(namespace, pipeline.cfg.LookupTimeout)
	}
	return
}

// Creates both queues. The path queue holds every input and is closed before any worker starts.
func (pipeline *Pipeline) setupQueues(ctx context.Context, namespace []string) (err error) {
	pathNS := append(append([]string(nil), namespace...), global.NSPaths)
	pipeline.paths, err = bounded.New[string](pathNS, len(pipeline.cfg.InputFiles))
	if err != nil {
		err = fmt.Errorf("failed to create input path queue: %w", err)
		return
	}
	for _, path := range pipeline.cfg.InputFiles {
		err = pipeline.paths.Enqueue(ctx, path)
		if err != nil {
			err = fmt.Errorf("failed to queue input path '%s': %w", path, err)
			return
		}
	}
	pipeline.paths.Close()

	hostNS := append(append([]string(nil), namespace...), global.NSHosts)
	pipeline.hosts, err = bounded.New[string](hostNS, pipeline.cfg.HostQueueSize)
	if err != nil {
		err = fmt.Errorf("failed to create hostname queue: %w", err)
		return
	}
	return
}

// Launches both pools. The last requester to exit closes the hostname queue.
func (pipeline *Pipeline) startWorkers(ctx context.Context, namespace []string) (requesterGroup, resolverGroup *errgroup.Group) {
	requesterGroup = &errgroup.Group{}
	resolverGroup = &errgroup.Group{}

	pipeline.outstanding.Store(int64(pipeline.cfg.Requesters))

	for id := range pipeline.cfg.Requesters {
		worker := NewRequester(namespace, id, pipeline.paths, pipeline.hosts, pipeline.requestLog)
		pipeline.requesters = append(pipeline.requesters, worker)

		workerCtx := logctx.OverwriteCtxTag(ctx, worker.Namespace)
		requesterGroup.Go(func() (err error) {
			defer pipeline.requesterDone(ctx)
			worker.Run(workerCtx)
			return
		})
	}

	for id := range pipeline.cfg.Resolvers {
		worker := NewResolverWorker(namespace, id, pipeline.hosts, pipeline.resolver, pipeline.resolutionLog, pipeline.beatsOut)
		pipeline.resolvers = append(pipeline.resolvers, worker)

		workerCtx := logctx.OverwriteCtxTag(ctx, worker.Namespace)
		resolverGroup.Go(func() (err error) {
			worker.Run(workerCtx)
			return
		})
	}
	return
}

// Marks one requester finished, closing the hostname queue after the last
func (pipeline *Pipeline) requesterDone(ctx context.Context) {
	remaining := pipeline.outstanding.Add(-1)
	if remaining > 0 {
		return
	}
	pipeline.hosts.Close()
	logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
		"no requesters remaining, hostname queue closed\n")
}
