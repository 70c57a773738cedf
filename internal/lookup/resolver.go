// Resolvers drain the hostname queue and record one outcome per hostname
package lookup

import (
	"context"
	"multilookup/internal/externalio/beats"
	"multilookup/internal/externalio/file"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"multilookup/internal/queue/bounded"
	"runtime/debug"
	"strconv"
	"time"
)

func NewResolverWorker(namespace []string, id int, inQueue *bounded.Queue[string], resolver Resolver, resolutionLog *file.OutModule, beatsOut *beats.OutModule) (new *ResolverWorker) {
	ns := append([]string{}, namespace...)
	ns = append(ns, global.NSResolver, strconv.Itoa(id))

	new = &ResolverWorker{
		Namespace:     ns,
		id:            id,
		inbox:         inQueue,
		resolver:      resolver,
		resolutionLog: resolutionLog,
		beatsOut:      beatsOut,
		Metrics:       &ResolverMetrics{},
	}
	return
}

// Handles hostnames until the queue is closed and drained (or ctx is cancelled)
func (instance *ResolverWorker) Run(ctx context.Context) {
	for ctx.Err() == nil {
		hostname, ok := instance.inbox.Dequeue(ctx)
		if !ok {
			break
		}
		instance.handle(ctx, hostname)
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"resolver %d resolved %d hostnames\n", instance.id, instance.Metrics.Handled.Load())
}

func (instance *ResolverWorker) handle(ctx context.Context, hostname string) {
	// Record panics and continue working
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in resolver worker thread for '%s': %v\n%s", hostname, fatalError, stack)
		}
	}()

	address, err := instance.resolver.Lookup(ctx, hostname)
	if err != nil && ctx.Err() != nil {
		// Interrupted lookups are not failures of the hostname
		return
	}

	record := global.ResolutionRecord{
		Timestamp: time.Now(),
		Hostname:  hostname,
		Resolver:  instance.id,
	}

	if err != nil {
		instance.Metrics.NotResolved.Add(1)
		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"hostname '%s' not resolved: %v\n", hostname, err)
		err = instance.resolutionLog.Printf(global.NotResolvedFmt, hostname)
	} else {
		record.Address = address
		record.Resolved = true
		instance.Metrics.Resolved.Add(1)
		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"hostname '%s' resolved to %s\n", hostname, address)
		err = instance.resolutionLog.Printf(global.ResolvedFmt, hostname, address)
	}
	instance.Metrics.Handled.Add(1)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"failed writing resolution log: %v\n", err)
	}

	if instance.beatsOut == nil {
		return
	}
	_, err = instance.beatsOut.Write(ctx, record)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"failed forwarding resolution of '%s': %v\n", hostname, err)
	}
}
