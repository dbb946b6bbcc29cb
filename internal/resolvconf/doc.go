// Package resolvconf parses the classic resolv.conf grammar from a byte
// buffer into a Config. It is a pure in-memory transformation: no file
// access, no network, no shared state between calls.
//
// Parsing is strictly line-by-line and fail-fast: the first grammar
// violation aborts the parse and is reported with its 0-based line number.
package resolvconf
