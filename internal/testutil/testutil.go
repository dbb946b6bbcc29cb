// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/miekg/dns"

	"github.com/tbckr/resolvctl/internal/probe"
)

// MockExchanger implements probe.Exchanger for testing. The field is a
// function so tests can script per-call behavior.
type MockExchanger struct {
	ExchangeContextFn func(ctx context.Context, m *dns.Msg, addr string) (*dns.Msg, time.Duration, error)
}

var _ probe.Exchanger = (*MockExchanger)(nil)

// ExchangeContext implements probe.Exchanger.
func (m *MockExchanger) ExchangeContext(ctx context.Context, msg *dns.Msg, addr string) (*dns.Msg, time.Duration, error) {
	if m.ExchangeContextFn != nil {
		return m.ExchangeContextFn(ctx, msg, addr)
	}
	return nil, 0, nil
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
