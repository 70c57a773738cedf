package bounded

import (
	"multilookup/internal/metrics"
	"time"
)

func (queue *Queue[T]) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	batch := metrics.NewBatch(queue.Namespace, interval)
	batch.Add("capacity", uint64(queue.Size), "count", metrics.Gauge, "Fixed number of slots in the queue")
	batch.Add("depth", queue.Metrics.Depth.Load(), "count", metrics.Gauge, "Current number of items in the queue")
	batch.Add("max_depth", queue.Metrics.MaxDepth.Load(), "count", metrics.Gauge, "Highest number of items held at once")
	batch.Add("enqueue_success", queue.Metrics.EnqueueSuccess.Load(), "count", metrics.Counter, "Total items added")
	batch.Add("enqueue_waits", queue.Metrics.EnqueueWaits.Load(), "count", metrics.Counter, "Times a producer was suspended on a full queue")
	batch.Add("dequeue_success", queue.Metrics.DequeueSuccess.Load(), "count", metrics.Counter, "Total items removed")
	batch.Add("dequeue_waits", queue.Metrics.DequeueWaits.Load(), "count", metrics.Counter, "Times a consumer was suspended on an empty queue")
	collection = batch.Metrics()
	return
}
