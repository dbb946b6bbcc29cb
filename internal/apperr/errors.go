package apperr

import "errors"

// ErrInvalidInput is returned when user-provided input fails validation.
// Use errors.Is(err, apperr.ErrInvalidInput) to detect validation failures
// uniformly across commands.
var ErrInvalidInput = errors.New("invalid input")

// ErrRequestFailed is returned by network-backed probes when the request
// fails at the transport level or the server responds with a non-2xx status.
var ErrRequestFailed = errors.New("request failed")

// ErrNoNameservers is returned when an operation needs at least one
// configured nameserver and the parsed configuration has none.
var ErrNoNameservers = errors.New("no nameservers configured")
