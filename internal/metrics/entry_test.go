package metrics

import (
	"testing"
	"time"
)

func TestBatch(t *testing.T) {
	namespace := []string{"Lookup", "ResolutionLog"}

	batch := NewBatch(namespace, time.Minute)
	batch.Add("lines_written", uint64(4), "count", Counter, "Log lines appended")
	batch.Add("bytes_written", uint64(96), "bytes", Counter, "Bytes appended")

	collection := batch.Metrics()
	if len(collection) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(collection))
	}

	if collection[0].Name != "lines_written" || collection[1].Name != "bytes_written" {
		t.Errorf("unexpected order: %s, %s", collection[0].Name, collection[1].Name)
	}
	if collection[0].Timestamp != collection[1].Timestamp {
		t.Errorf("metrics in one batch should share a record time")
	}
	for _, metric := range collection {
		if len(metric.Namespace) != 2 || metric.Namespace[1] != "ResolutionLog" {
			t.Errorf("%s: unexpected namespace %v", metric.Name, metric.Namespace)
		}
		if metric.Value.Interval != time.Minute {
			t.Errorf("%s: interval %v, want 1m", metric.Name, metric.Value.Interval)
		}
	}
	if raw, ok := collection[1].Value.Raw.(uint64); !ok || raw != 96 {
		t.Errorf("bytes_written raw = %v", collection[1].Value.Raw)
	}
}
