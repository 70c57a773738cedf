package dns

import (
	"context"
	"fmt"
	"multilookup/internal/global"
	"time"

	mdns "github.com/miekg/dns"
)

// Returns the first address the system resolver yields for hostname (any family)
func (r *SystemResolver) Lookup(ctx context.Context, hostname string) (address string, err error) {
	r.metrics.Lookups.Add(1)
	start := time.Now()
	defer func() { r.metrics.SumNanos.Add(uint64(time.Since(start))) }()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.resolver.LookupHost(ctx, hostname)
	if err != nil {
		r.metrics.Failed.Add(1)
		err = fmt.Errorf("%w: %s: %v", ErrNotResolved, hostname, err)
		return
	}

	address, err = firstAddress(hostname, addrs)
	if err != nil {
		r.metrics.Failed.Add(1)
		return
	}
	r.metrics.Resolved.Add(1)
	return
}

// Asks the configured nameserver for an A record, falling back to AAAA
func (r *ServerResolver) Lookup(ctx context.Context, hostname string) (address string, err error) {
	r.metrics.Lookups.Add(1)
	start := time.Now()
	defer func() { r.metrics.SumNanos.Add(uint64(time.Since(start))) }()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var addrs []string
	for _, qtype := range []uint16{mdns.TypeA, mdns.TypeAAAA} {
		addrs, err = r.query(ctx, hostname, qtype)
		if err != nil {
			break
		}
		if len(addrs) > 0 {
			break
		}
	}
	if err != nil {
		r.metrics.Failed.Add(1)
		err = fmt.Errorf("%w: %s: %v", ErrNotResolved, hostname, err)
		return
	}

	address, err = firstAddress(hostname, addrs)
	if err != nil {
		r.metrics.Failed.Add(1)
		return
	}
	r.metrics.Resolved.Add(1)
	return
}

// Single question exchange with the nameserver
func (r *ServerResolver) query(ctx context.Context, hostname string, qtype uint16) (addrs []string, err error) {
	msg := new(mdns.Msg)
	msg.SetQuestion(mdns.Fqdn(hostname), qtype)
	msg.RecursionDesired = true

	reply, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		err = fmt.Errorf("query to %s failed: %w", r.server, err)
		return
	}

	if reply.Rcode != mdns.RcodeSuccess {
		err = fmt.Errorf("nameserver %s answered %s", r.server, mdns.RcodeToString[reply.Rcode])
		return
	}

	for _, rr := range reply.Answer {
		switch record := rr.(type) {
		case *mdns.A:
			addrs = append(addrs, record.A.String())
		case *mdns.AAAA:
			addrs = append(addrs, record.AAAA.String())
		}
	}
	return
}

// Picks the first address, bounded to the textual length of an IPv6 address
func firstAddress(hostname string, addrs []string) (address string, err error) {
	if len(addrs) == 0 {
		err = fmt.Errorf("%w: %s: no addresses returned", ErrNotResolved, hostname)
		return
	}

	address = addrs[0]
	if len(address) > global.MaxIPLength {
		err = fmt.Errorf("%w: %s: address %q exceeds %d characters", ErrNotResolved, hostname, address, global.MaxIPLength)
		address = ""
		return
	}
	return
}
