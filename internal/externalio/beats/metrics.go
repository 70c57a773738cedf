package beats

import (
	"multilookup/internal/metrics"
	"time"
)

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(mod.Namespace, interval)
	batch.Add("events_sent", mod.metrics.EventsSent.Load(), "count", metrics.Counter, "Resolution records acknowledged by the beats server")
	batch.Add("send_failures", mod.metrics.SendFailures.Load(), "count", metrics.Counter, "Resolution records that could not be shipped")
	collection = batch.Metrics()
	return
}
