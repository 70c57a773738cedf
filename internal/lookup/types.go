package lookup

import (
	"context"
	"multilookup/internal/externalio/beats"
	"multilookup/internal/externalio/file"
	"multilookup/internal/metrics"
	"multilookup/internal/queue/bounded"
	"sync/atomic"
	"time"
)

// Hostname to address capability used by resolver workers
type Resolver interface {
	Lookup(ctx context.Context, hostname string) (address string, err error)
}

// Anything able to report its own metrics
type metricSource interface {
	CollectMetrics(interval time.Duration) (collection []metrics.Metric)
}

type Config struct {
	Requesters        int           // Number of file servicing workers
	Resolvers         int           // Number of lookup workers
	RequestLogPath    string        // Accepted/skipped hostnames
	ResolutionLogPath string        // One outcome line per accepted hostname
	InputFiles        []string      // Hostname sources, one name per line
	HostQueueSize     int           // Capacity of the shared hostname queue
	LookupTimeout     time.Duration // Upper bound for one lookup
	DNSServer         string        // Query this nameserver instead of the system resolver
	BeatsEndpoint     string        // Optional lumberjack destination for resolution records
	SummaryPath       string        // Optional JSON run report
	Resolver          Resolver      // Overrides DNSServer/system resolver when set
}

// State for one run. Created by New, consumed by Run.
type Pipeline struct {
	cfg           Config
	namespace     []string
	paths         *bounded.Queue[string] // Input paths, filled and closed before workers start
	hosts         *bounded.Queue[string] // Hostnames between requesters and resolvers
	requestLog    *file.OutModule
	resolutionLog *file.OutModule
	beatsOut      *beats.OutModule
	resolver      Resolver
	outstanding   atomic.Int64 // requesters still running, last one out closes hosts
	requesters    []*Requester
	resolvers     []*ResolverWorker
	registry      *metrics.Registry
}

// File servicing worker (producer)
type Requester struct {
	Namespace  []string
	id         int
	inbox      *bounded.Queue[string]
	outbox     *bounded.Queue[string]
	requestLog *file.OutModule
	Metrics    *RequesterMetrics
}

type RequesterMetrics struct {
	FilesServiced atomic.Uint64
	FilesFailed   atomic.Uint64
	LinesRead     atomic.Uint64
	Accepted      atomic.Uint64
	Skipped       atomic.Uint64
}

// Lookup worker (consumer)
type ResolverWorker struct {
	Namespace     []string
	id            int
	inbox         *bounded.Queue[string]
	resolver      Resolver
	resolutionLog *file.OutModule
	beatsOut      *beats.OutModule
	Metrics       *ResolverMetrics
}

type ResolverMetrics struct {
	Handled     atomic.Uint64
	Resolved    atomic.Uint64
	NotResolved atomic.Uint64
}

// Per worker count reported at the end of a run
type WorkerStat struct {
	ID    int
	Count uint64
}

// Run statistics
type Summary struct {
	Elapsed              time.Duration
	UserCPU              time.Duration
	SystemCPU            time.Duration
	FilesServiced        uint64
	FilesFailed          uint64
	HostnamesAccepted    uint64
	HostnamesSkipped     uint64
	HostnamesResolved    uint64
	HostnamesNotResolved uint64
	Requesters           []WorkerStat // serviced files per requester
	Resolvers            []WorkerStat // handled hostnames per resolver
	Registry             *metrics.Registry
}
