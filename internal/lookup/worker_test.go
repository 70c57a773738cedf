package lookup

import (
	"context"
	"multilookup/internal/externalio/file"
	"multilookup/internal/global"
	"multilookup/internal/queue/bounded"
	"path/filepath"
	"strings"
	"testing"
)

func newTestQueue(t *testing.T, capacity int, items ...string) (queue *bounded.Queue[string]) {
	t.Helper()

	queue, err := bounded.New[string]([]string{global.NSTest}, capacity)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}
	for _, item := range items {
		err = queue.Enqueue(context.Background(), item)
		if err != nil {
			t.Fatalf("failed to enqueue %q: %v", item, err)
		}
	}
	return
}

func newTestOutput(t *testing.T, name string) (output *file.OutModule) {
	t.Helper()

	output, err := file.NewOutput([]string{global.NSTest}, filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	t.Cleanup(func() { output.Close() })
	return
}

func TestRequester_StopsWhenHostQueueClosed(t *testing.T) {
	dir := t.TempDir()
	input := writeInputFile(t, dir, "names1.txt", "alpha.example", "beta.example")

	paths := newTestQueue(t, 2, input, input)
	paths.Close()
	hosts := newTestQueue(t, 1)
	hosts.Close()

	requestLog := newTestOutput(t, "serviced.txt")
	worker := NewRequester([]string{global.NSTest}, 4, paths, hosts, requestLog)
	worker.Run(context.Background())

	if got := worker.Metrics.FilesServiced.Load(); got != 0 {
		t.Errorf("expected no fully serviced files, got %d", got)
	}
	if got := worker.Metrics.Accepted.Load(); got != 0 {
		t.Errorf("expected no accepted hostnames, got %d", got)
	}
	if paths.Len() != 1 {
		t.Errorf("expected requester to stop before taking the second path, %d left", paths.Len())
	}
	if strings.Join(worker.Namespace, "/") != "Test/Requester/4" {
		t.Errorf("unexpected namespace %v", worker.Namespace)
	}
}

func TestRequester_ReadsAllPaths(t *testing.T) {
	dir := t.TempDir()
	first := writeInputFile(t, dir, "names1.txt", "alpha.example")
	second := writeInputFile(t, dir, "names2.txt", "beta.example", "", "gamma.example")

	paths := newTestQueue(t, 3, first, filepath.Join(dir, "missing.txt"), second)
	paths.Close()
	hosts := newTestQueue(t, 10)

	requestLog := newTestOutput(t, "serviced.txt")
	worker := NewRequester([]string{global.NSTest}, 0, paths, hosts, requestLog)
	worker.Run(context.Background())

	if got := worker.Metrics.FilesServiced.Load(); got != 2 {
		t.Errorf("expected 2 serviced files, got %d", got)
	}
	if got := worker.Metrics.FilesFailed.Load(); got != 1 {
		t.Errorf("expected 1 failed file, got %d", got)
	}

	hosts.Close()
	var queued []string
	for {
		hostname, ok := hosts.Dequeue(context.Background())
		if !ok {
			break
		}
		queued = append(queued, hostname)
	}
	expected := []string{"alpha.example", "beta.example", "gamma.example"}
	if strings.Join(queued, ",") != strings.Join(expected, ",") {
		t.Errorf("expected queued %v, got %v", expected, queued)
	}
}

type panickingResolver struct{}

func (panickingResolver) Lookup(ctx context.Context, hostname string) (address string, err error) {
	if hostname == "boom.example" {
		panic("resolver exploded")
	}
	address = "198.51.100.7"
	return
}

func TestResolverWorker_RecoversFromPanic(t *testing.T) {
	hosts := newTestQueue(t, 3, "boom.example", "fine.example")
	hosts.Close()

	resolutionLog := newTestOutput(t, "results.txt")
	worker := NewResolverWorker([]string{global.NSTest}, 1, hosts, panickingResolver{}, resolutionLog, nil)
	worker.Run(context.Background())

	if err := resolutionLog.Close(); err != nil {
		t.Fatalf("failed closing log: %v", err)
	}
	lines := readLines(t, resolutionLog.Path())
	if len(lines) != 1 || lines[0] != "fine.example, 198.51.100.7" {
		t.Errorf("expected only the surviving hostname, got %q", lines)
	}
	if got := worker.Metrics.Handled.Load(); got != 1 {
		t.Errorf("expected 1 handled hostname, got %d", got)
	}
}

func TestResolverWorker_CollectMetrics(t *testing.T) {
	hosts := newTestQueue(t, 2, "alpha.example", "unknown.example")
	hosts.Close()

	worker := NewResolverWorker([]string{global.NSTest}, 2, hosts, &fakeResolver{}, newTestOutput(t, "results.txt"), nil)
	worker.Run(context.Background())

	collected := make(map[string]uint64)
	for _, metric := range worker.CollectMetrics(0) {
		collected[metric.Name] = metric.Value.Raw.(uint64)
		if strings.Join(metric.Namespace, "/") != "Test/Resolver/2" {
			t.Errorf("metric %s has namespace %v", metric.Name, metric.Namespace)
		}
	}
	expected := map[string]uint64{
		"hostnames_handled":      2,
		"hostnames_resolved":     1,
		"hostnames_not_resolved": 1,
	}
	for name, want := range expected {
		if collected[name] != want {
			t.Errorf("metric %s: expected %d, got %d", name, want, collected[name])
		}
	}
}
