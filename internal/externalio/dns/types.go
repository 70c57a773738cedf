package dns

import (
	"errors"
	"net"
	"sync/atomic"
	"time"

	mdns "github.com/miekg/dns"
)

var ErrNotResolved = errors.New("hostname not resolved")

// Resolves through the operating system (hosts file, nsswitch, configured nameservers)
type SystemResolver struct {
	Namespace []string
	resolver  *net.Resolver
	timeout   time.Duration
	metrics   MetricStorage
}

// Resolves by querying one nameserver directly
type ServerResolver struct {
	Namespace []string
	server    string // host:port
	client    *mdns.Client
	timeout   time.Duration
	metrics   MetricStorage
}

type MetricStorage struct {
	Lookups  atomic.Uint64
	Resolved atomic.Uint64
	Failed   atomic.Uint64
	SumNanos atomic.Uint64 // total time spent in lookups
}
