package probe

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
	"github.com/miekg/dns"

	"github.com/tbckr/resolvctl/internal/apperr"
)

const dnsMessageType = "application/dns-message"

// Reference resolves domain through a DoH endpoint using wire-format POST
// (RFC 8484) and returns the answer as a Result for comparison against
// directly-probed servers.
func Reference(ctx context.Context, client *req.Client, url, domain string) (*Result, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	wire, err := m.Pack()
	if err != nil {
		return nil, fmt.Errorf("packing DNS query: %w", err)
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", dnsMessageType).
		SetHeader("Accept", dnsMessageType).
		SetBodyBytes(wire).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("%w: DoH query to %s: %v", apperr.ErrRequestFailed, url, err)
	}
	if resp.IsErrorState() {
		return nil, fmt.Errorf("%w: DoH endpoint %s returned %s", apperr.ErrRequestFailed, url, resp.Status)
	}

	r := new(dns.Msg)
	if err := r.Unpack(resp.Bytes()); err != nil {
		return nil, fmt.Errorf("unpacking DoH response from %s: %w", url, err)
	}

	return &Result{
		Server:  url,
		Rcode:   dns.RcodeToString[r.Rcode],
		Answers: answers(r),
	}, nil
}
