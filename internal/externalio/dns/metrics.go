package dns

import (
	"multilookup/internal/metrics"
	"time"
)

func (r *SystemResolver) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	collection = r.metrics.collect(r.Namespace, interval)
	return
}

func (r *ServerResolver) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	collection = r.metrics.collect(r.Namespace, interval)
	return
}

func (storage *MetricStorage) collect(namespace []string, interval time.Duration) (collection []metrics.Metric) {
	lookups := storage.Lookups.Load()
	sumNanos := storage.SumNanos.Load()

	var avgNanos uint64
	if lookups > 0 {
		avgNanos = sumNanos / lookups
	}

	batch := metrics.NewBatch(namespace, interval)
	batch.Add("lookups", lookups, "count", metrics.Counter, "Total lookups attempted")
	batch.Add("lookups_resolved", storage.Resolved.Load(), "count", metrics.Counter, "Lookups returning an address")
	batch.Add("lookups_failed", storage.Failed.Load(), "count", metrics.Counter, "Lookups returning no address")
	batch.Add("average_lookup_time", avgNanos, "ns", metrics.Summary, "Average time spent per lookup")
	collection = batch.Metrics()
	return
}
