package file

import (
	"multilookup/internal/metrics"
	"sync/atomic"
	"time"
)

type InMetricStorage struct {
	LinesRead atomic.Uint64
}

type OutMetricStorage struct {
	LinesWritten atomic.Uint64
	BytesWritten atomic.Uint64
}

func (mod *InModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(mod.Namespace, interval)
	batch.Add("lines_read", mod.metrics.LinesRead.Load(), "count", metrics.Counter, "Hostname lines read from the input file")
	collection = batch.Metrics()
	return
}

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(mod.Namespace, interval)
	batch.Add("lines_written", mod.metrics.LinesWritten.Load(), "count", metrics.Counter, "Log lines appended to the output file")
	batch.Add("bytes_written", mod.metrics.BytesWritten.Load(), "bytes", metrics.Counter, "Bytes appended to the output file")
	collection = batch.Metrics()
	return
}
