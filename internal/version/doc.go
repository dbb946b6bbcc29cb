// Package version exposes the resolvctl build version, populated from
// ldflags when set and from the embedded build info otherwise.
package version
