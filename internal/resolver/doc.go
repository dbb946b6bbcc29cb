// Package resolver constructs *net.Resolver instances driven by a parsed
// resolver configuration instead of the platform defaults.
package resolver
