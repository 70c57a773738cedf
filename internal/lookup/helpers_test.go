package lookup

import (
	"bytes"
	"context"
	"multilookup/internal/externalio/dns"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Deterministic resolver: names starting with "unknown" fail, everything else gets an address
type fakeResolver struct {
	delay time.Duration
	calls sync.Map // hostname -> *atomic.Int64
	total atomic.Int64
}

func (r *fakeResolver) Lookup(ctx context.Context, hostname string) (address string, err error) {
	counter, _ := r.calls.LoadOrStore(hostname, new(atomic.Int64))
	counter.(*atomic.Int64).Add(1)
	r.total.Add(1)

	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}

	if strings.HasPrefix(hostname, "unknown") {
		err = dns.ErrNotResolved
		return
	}
	address = "192.0.2." + strconv.Itoa(len(hostname)%250)
	return
}

func (r *fakeResolver) callCount(hostname string) (count int64) {
	counter, ok := r.calls.Load(hostname)
	if !ok {
		return
	}
	count = counter.(*atomic.Int64).Load()
	return
}

// Goroutine safe writer for capturing watcher output
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, err = b.buf.Write(p)
	return
}

func (b *syncBuffer) String() (text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	text = b.buf.String()
	return
}

// Context with a running logger. The returned stop func drains the logger.
func newLoggedContext(t *testing.T, level int) (ctx context.Context, stdout, stderr *syncBuffer, stop func()) {
	t.Helper()

	done := make(chan struct{})
	logger := logctx.NewLogger(global.NSTest, level, done)
	stdout, stderr = &syncBuffer{}, &syncBuffer{}
	logctx.StartWatcher(logger, stdout, stderr)
	ctx = logctx.WithLogger(context.Background(), logger)

	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(done)
			logger.Wake()
			logger.Wait()
		})
	}
	t.Cleanup(stop)
	return
}

func writeInputFile(t *testing.T, dir, name string, lines ...string) (path string) {
	t.Helper()

	path = filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	err := os.WriteFile(path, []byte(content), 0640)
	if err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return
}

func readLines(t *testing.T, path string) (lines []string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read '%s': %v", path, err)
	}
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return
	}
	lines = strings.Split(text, "\n")
	return
}

func newTestConfig(t *testing.T, requesters, resolvers int, files []string, resolver Resolver) (cfg Config) {
	t.Helper()

	dir := t.TempDir()
	cfg = Config{
		Requesters:        requesters,
		Resolvers:         resolvers,
		RequestLogPath:    filepath.Join(dir, "serviced.txt"),
		ResolutionLogPath: filepath.Join(dir, "results.txt"),
		InputFiles:        files,
		Resolver:          resolver,
	}
	return
}

func runPipeline(t *testing.T, ctx context.Context, cfg Config) (summary Summary) {
	t.Helper()

	pipeline, err := New(cfg)
	if err != nil {
		t.Fatalf("expected valid config, got error: %v", err)
	}
	summary, err = pipeline.Run(ctx)
	if err != nil {
		t.Fatalf("expected run to succeed, got error: %v", err)
	}
	return
}

// Hostnames of the resolution log, mapped to how often each appears
func resolutionCounts(t *testing.T, path string) (counts map[string]int) {
	t.Helper()

	counts = make(map[string]int)
	for _, line := range readLines(t, path) {
		hostname, _, found := strings.Cut(line, ", ")
		if !found {
			t.Fatalf("malformed resolution line %q", line)
		}
		counts[hostname]++
	}
	return
}
