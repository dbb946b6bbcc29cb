// Package probe runs live queries against the nameservers of a parsed
// resolver configuration and reports per-server health.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	"github.com/tbckr/resolvctl/internal/apperr"
	"github.com/tbckr/resolvctl/internal/output"
	"github.com/tbckr/resolvctl/internal/resolvconf"
	"github.com/tbckr/resolvctl/internal/validate"
	"github.com/tbckr/resolvctl/internal/worker"
)

const dnsPort = "53"

// Exchanger abstracts dns.Client for testing. *dns.Client satisfies this
// interface directly.
type Exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, addr string) (*dns.Msg, time.Duration, error)
}

// Prober queries every nameserver of a configuration with the tuning the
// configuration itself prescribes (timeout, attempts, use-vc, edns0).
type Prober struct {
	cfg      *resolvconf.Config
	exchange Exchanger
	logger   *slog.Logger
}

// NewClient returns a dns.Client configured from cfg: TCP when use-vc is
// set, UDP otherwise, with the per-query timeout from the options.
func NewClient(cfg *resolvconf.Config) *dns.Client {
	client := &dns.Client{Timeout: cfg.TimeoutDuration()}
	if cfg.UseVC {
		client.Net = "tcp"
	}
	return client
}

// New creates a Prober for cfg using the given exchanger and logger.
func New(cfg *resolvconf.Config, exchange Exchanger, logger *slog.Logger) *Prober {
	return &Prober{cfg: cfg, exchange: exchange, logger: logger}
}

// Run probes every configured nameserver for domain, at most concurrency at
// a time, and returns per-server results in configuration order. A server
// that fails all attempts is reported in its Result, not as an error: only
// invalid input or an empty nameserver list fails the run.
func (p *Prober) Run(ctx context.Context, domain string, concurrency int) (*Results, error) {
	if !validate.IsDomain(domain) {
		return nil, fmt.Errorf("%w: must be a valid domain name: %q", apperr.ErrInvalidInput, domain)
	}
	if len(p.cfg.Nameservers) == 0 {
		return nil, apperr.ErrNoNameservers
	}

	servers := worker.Map(ctx, concurrency, p.cfg.Nameservers, func(ctx context.Context, addr netip.Addr) Result {
		return p.probeServer(ctx, addr, domain)
	})

	return &Results{Domain: domain, Servers: servers}, nil
}

// probeServer sends an A query to one server, retrying up to the
// configuration's attempts count.
func (p *Prober) probeServer(ctx context.Context, addr netip.Addr, domain string) Result {
	server := net.JoinHostPort(addr.String(), dnsPort)

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	if p.cfg.EDNS0 {
		m.SetEdns0(dns.DefaultMsgSize, false)
	}

	attempts := int(p.cfg.Attempts)
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for try := 1; try <= attempts; try++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}
		r, rtt, err := p.exchange.ExchangeContext(ctx, m, server)
		if err != nil {
			lastErr = err
			p.logger.Debug("query failed", "server", server, "attempt", try, "error", err)
			continue
		}
		return Result{
			Server:  server,
			RTT:     rtt,
			Rcode:   dns.RcodeToString[r.Rcode],
			Answers: answers(r),
		}
	}

	return Result{Server: server, Err: output.StripANSI(lastErr.Error())}
}

// answers extracts printable record data from a response.
func answers(r *dns.Msg) []string {
	var out []string
	for _, rr := range r.Answer {
		switch v := rr.(type) {
		case *dns.A:
			out = append(out, v.A.String())
		case *dns.AAAA:
			out = append(out, v.AAAA.String())
		case *dns.CNAME:
			out = append(out, output.StripANSI(v.Target))
		}
	}
	return out
}
