package metrics

import (
	"sync"
	"time"
)

type Registry struct {
	mu      sync.RWMutex
	metrics map[string]map[string]Metric // key1=namespace, key2=name
}

type MetricType string

const (
	Counter MetricType = "counter" // always increasing
	Gauge   MetricType = "gauge"   // can go up/down
	Summary MetricType = "summary" // avg/min/max
)

// Container for a metric and associated data
type Metric struct {
	Name        string // e.g. resolved_hostnames, max_depth
	Description string
	Namespace   []string // e.g. "Lookup/Resolver/0"
	Value       MetricValue
	Type        MetricType
	Timestamp   time.Time // time when the metric was recorded
}

// Specific value of a metric
type MetricValue struct {
	Raw      interface{}   // uint64, float64, time.Duration
	Unit     string        // e.g., "ns", "bytes", "count"
	Interval time.Duration // measurement window (whole run for one-shot collection)
}
