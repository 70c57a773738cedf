package lookup

import (
	"context"
	"fmt"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"os"
	"strings"
	"time"

	"github.com/bitly/go-simplejson"
	"golang.org/x/sys/unix"
)

// Gathers every component's metrics into the run registry and totals them
func (pipeline *Pipeline) summarize(elapsed time.Duration) (summary Summary) {
	sources := []metricSource{pipeline.paths, pipeline.hosts, pipeline.requestLog, pipeline.resolutionLog}
	for _, requester := range pipeline.requesters {
		sources = append(sources, requester)
		summary.Requesters = append(summary.Requesters, WorkerStat{
			ID:    requester.id,
			Count: requester.Metrics.FilesServiced.Load(),
		})
	}
	for _, resolver := range pipeline.resolvers {
		sources = append(sources, resolver)
		summary.Resolvers = append(summary.Resolvers, WorkerStat{
			ID:    resolver.id,
			Count: resolver.Metrics.Handled.Load(),
		})
	}
	if pipeline.beatsOut != nil {
		sources = append(sources, pipeline.beatsOut)
	}
	if source, ok := pipeline.resolver.(metricSource); ok {
		sources = append(sources, source)
	}

	for _, source := range sources {
		pipeline.registry.Add(source.CollectMetrics(elapsed))
	}

	summary.Elapsed = elapsed
	summary.UserCPU, summary.SystemCPU = cpuTimes()
	pipeline.registry.Add(summary.collectMetrics(pipeline.namespace))

	requesterNS := append(append([]string(nil), pipeline.namespace...), global.NSRequester)
	resolverNS := append(append([]string(nil), pipeline.namespace...), global.NSResolver)

	summary.FilesServiced = pipeline.registry.Total("files_serviced", requesterNS)
	summary.FilesFailed = pipeline.registry.Total("files_failed", requesterNS)
	summary.HostnamesAccepted = pipeline.registry.Total("hostnames_accepted", requesterNS)
	summary.HostnamesSkipped = pipeline.registry.Total("hostnames_skipped", requesterNS)
	summary.HostnamesResolved = pipeline.registry.Total("hostnames_resolved", resolverNS)
	summary.HostnamesNotResolved = pipeline.registry.Total("hostnames_not_resolved", resolverNS)
	summary.Registry = pipeline.registry
	return
}

// Process CPU usage so far, zero if unavailable
func cpuTimes() (user, system time.Duration) {
	var usage unix.Rusage
	err := unix.Getrusage(unix.RUSAGE_SELF, &usage)
	if err != nil {
		return
	}
	user = time.Duration(usage.Utime.Nano())
	system = time.Duration(usage.Stime.Nano())
	return
}

// Prints run totals to the console
func (summary Summary) Log(ctx context.Context) {
	for _, stat := range summary.Requesters {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"requester %d: %d files\n", stat.ID, stat.Count)
	}
	for _, stat := range summary.Resolvers {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"resolver %d: %d hostnames\n", stat.ID, stat.Count)
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"%d files serviced (%d unopenable), %d hostnames queued, %d skipped, %d resolved, %d not resolved\n",
		summary.FilesServiced, summary.FilesFailed, summary.HostnamesAccepted, summary.HostnamesSkipped,
		summary.HostnamesResolved, summary.HostnamesNotResolved)
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"total time is %v (user %v, system %v)\n", summary.Elapsed, summary.UserCPU, summary.SystemCPU)
}

// Writes the run totals plus every collected metric as a JSON document
func (summary Summary) WriteReport(path string) (err error) {
	report := simplejson.New()
	report.Set("program", global.ProgBaseName)
	report.Set("version", global.ProgVersion)

	report.SetPath([]string{"timing", "elapsed_ns"}, summary.Elapsed.Nanoseconds())
	report.SetPath([]string{"timing", "user_cpu_ns"}, summary.UserCPU.Nanoseconds())
	report.SetPath([]string{"timing", "system_cpu_ns"}, summary.SystemCPU.Nanoseconds())

	report.SetPath([]string{"totals", "files_serviced"}, summary.FilesServiced)
	report.SetPath([]string{"totals", "files_failed"}, summary.FilesFailed)
	report.SetPath([]string{"totals", "hostnames_accepted"}, summary.HostnamesAccepted)
	report.SetPath([]string{"totals", "hostnames_skipped"}, summary.HostnamesSkipped)
	report.SetPath([]string{"totals", "hostnames_resolved"}, summary.HostnamesResolved)
	report.SetPath([]string{"totals", "hostnames_not_resolved"}, summary.HostnamesNotResolved)

	if summary.Registry != nil {
		for _, metric := range summary.Registry.Search("", nil) {
			key := strings.Join(metric.Namespace, "/")
			report.SetPath([]string{"metrics", key, metric.Name}, metric.Value.Raw)
		}
	}

	encoded, err := report.EncodePretty()
	if err != nil {
		err = fmt.Errorf("failed encoding report: %w", err)
		return
	}

	err = os.WriteFile(path, append(encoded, '\n'), 0640)
	if err != nil {
		err = fmt.Errorf("failed writing report to '%s': %w", path, err)
		return
	}
	return
}
