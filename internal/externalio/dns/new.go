// Hostname to address resolution collaborators
package dns

import (
	"fmt"
	"multilookup/internal/global"
	"net"
	"time"

	mdns "github.com/miekg/dns"
)

// Creates resolver backed by the system resolver
func NewSystem(namespace []string, timeout time.Duration) (new *SystemResolver) {
	if timeout <= 0 {
		timeout = global.DefaultLookupTimeout
	}

	new = &SystemResolver{
		Namespace: append(append([]string(nil), namespace...), global.NSoDNS),
		resolver:  &net.Resolver{},
		timeout:   timeout,
	}
	return
}

// Creates resolver querying the given nameserver (port 53 unless given)
func NewServer(namespace []string, server string, timeout time.Duration) (new *ServerResolver, err error) {
	if server == "" {
		err = fmt.Errorf("no nameserver address given")
		return
	}
	if timeout <= 0 {
		timeout = global.DefaultLookupTimeout
	}

	_, _, splitErr := net.SplitHostPort(server)
	if splitErr != nil {
		// Bare host or IPv6 literal without port
		server = net.JoinHostPort(server, global.DefaultDNSPort)
	}

	new = &ServerResolver{
		Namespace: append(append([]string(nil), namespace...), global.NSoDNS),
		server:    server,
		client: &mdns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		timeout: timeout,
	}
	return
}
