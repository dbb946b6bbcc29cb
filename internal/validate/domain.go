// Package validate provides shared input validation helpers.
package validate

import "regexp"

// domainRegexp validates RFC-compliant hostnames.
var domainRegexp = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// labelRegexp validates a single hostname label.
var labelRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// IsDomain reports whether s is a valid RFC-compliant hostname.
func IsDomain(s string) bool {
	return domainRegexp.MatchString(s)
}

// IsHost reports whether s is a valid hostname or a single bare label. Bare
// labels are accepted because the resolver search list can qualify them.
func IsHost(s string) bool {
	return IsDomain(s) || labelRegexp.MatchString(s)
}
