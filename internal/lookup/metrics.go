package lookup

import (
	"multilookup/internal/metrics"
	"time"
)

func (instance *Requester) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(instance.Namespace, interval)
	batch.Add("files_serviced", instance.Metrics.FilesServiced.Load(), "count", metrics.Counter, "Input files read to the end")
	batch.Add("files_failed", instance.Metrics.FilesFailed.Load(), "count", metrics.Counter, "Input files that could not be opened")
	batch.Add("lines_read", instance.Metrics.LinesRead.Load(), "count", metrics.Counter, "Lines read across all serviced files")
	batch.Add("hostnames_accepted", instance.Metrics.Accepted.Load(), "count", metrics.Counter, "Hostnames placed on the hostname queue")
	batch.Add("hostnames_skipped", instance.Metrics.Skipped.Load(), "count", metrics.Counter, "Lines rejected for exceeding the name length limit")
	collection = batch.Metrics()
	return
}

func (instance *ResolverWorker) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(instance.Namespace, interval)
	batch.Add("hostnames_handled", instance.Metrics.Handled.Load(), "count", metrics.Counter, "Hostnames with a recorded outcome")
	batch.Add("hostnames_resolved", instance.Metrics.Resolved.Load(), "count", metrics.Counter, "Hostnames resolved to an address")
	batch.Add("hostnames_not_resolved", instance.Metrics.NotResolved.Load(), "count", metrics.Counter, "Hostnames recorded as NOT_RESOLVED")
	collection = batch.Metrics()
	return
}

// Run level timings
func (summary Summary) collectMetrics(namespace []string) (collection []metrics.Metric) {
	batch := metrics.NewBatch(namespace, summary.Elapsed)
	batch.Add("elapsed_time", summary.Elapsed, "ns", metrics.Gauge, "Wall clock time of the run")
	batch.Add("user_cpu_time", summary.UserCPU, "ns", metrics.Gauge, "CPU time spent in user mode")
	batch.Add("system_cpu_time", summary.SystemCPU, "ns", metrics.Gauge, "CPU time spent in kernel mode")
	collection = batch.Metrics()
	return
}
