// Registry for metrics collected from pipeline components
package metrics

import "time"

// Creates new metric registry storage
func New() (new *Registry) {
	new = &Registry{
		metrics: make(map[string]map[string]Metric),
	}
	return
}

// Accumulates metrics sharing one namespace, interval and record time
type Batch struct {
	namespace  []string
	interval   time.Duration
	recordTime time.Time
	collection []Metric
}

func NewBatch(namespace []string, interval time.Duration) (batch *Batch) {
	batch = &Batch{
		namespace:  namespace,
		interval:   interval,
		recordTime: time.Now(),
	}
	return
}

func (batch *Batch) Add(name string, raw interface{}, unit string, metricType MetricType, description string) {
	batch.collection = append(batch.collection, Metric{
		Name:        name,
		Description: description,
		Namespace:   batch.namespace,
		Type:        metricType,
		Timestamp:   batch.recordTime,
		Value: MetricValue{
			Raw:      raw,
			Unit:     unit,
			Interval: batch.interval,
		},
	})
}

func (batch *Batch) Metrics() (collection []Metric) {
	collection = batch.collection
	return
}
