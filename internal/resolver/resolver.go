package resolver

import (
	"context"
	"errors"
	"net"
	"sync/atomic"

	"github.com/tbckr/resolvctl/internal/resolvconf"
)

const dnsPort = "53"

// New returns a *net.Resolver that queries the nameservers from cfg.
//
// When cfg has no nameservers, the standard system resolver is returned
// (nil Dial field, so Go uses the platform resolver).
//
// Otherwise the resolver dials the configured servers in order, honoring
// rotate (round-robin start point), use-vc (TCP instead of UDP), and the
// per-query timeout. The first server that accepts a connection wins.
func New(cfg *resolvconf.Config) *net.Resolver {
	if len(cfg.Nameservers) == 0 {
		return &net.Resolver{}
	}

	servers := make([]string, 0, len(cfg.Nameservers))
	for _, addr := range cfg.Nameservers {
		servers = append(servers, net.JoinHostPort(addr.String(), dnsPort))
	}

	useVC := cfg.UseVC
	rotate := cfg.Rotate
	timeout := cfg.TimeoutDuration()

	var next atomic.Uint32

	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			if useVC {
				network = "tcp"
			}
			offset := 0
			if rotate {
				offset = int((next.Add(1) - 1) % uint32(len(servers)))
			}

			d := net.Dialer{Timeout: timeout}
			var errs []error
			for _, server := range serverOrder(servers, offset) {
				conn, err := d.DialContext(ctx, network, server)
				if err == nil {
					return conn, nil
				}
				errs = append(errs, err)
			}
			return nil, errors.Join(errs...)
		},
	}
}

// serverOrder returns servers rotated to start at offset.
func serverOrder(servers []string, offset int) []string {
	if offset == 0 {
		return servers
	}
	ordered := make([]string, 0, len(servers))
	for i := range servers {
		ordered = append(ordered, servers[(offset+i)%len(servers)])
	}
	return ordered
}
