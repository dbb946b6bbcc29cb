package resolvconf

import (
	"strconv"
	"strings"
)

// parseOptions handles the key[:value] pairs of an options directive. Each
// token splits at the first ':'; a second ':' in the value is ErrExtraData.
// Boolean keys ignore any value. Later occurrences overwrite earlier ones.
func parseOptions(cfg *Config, args []string, line int) error {
	for _, pair := range args {
		key, value, hasValue := strings.Cut(pair, ":")
		if hasValue && strings.Contains(value, ":") {
			return errAt(line, ErrExtraData)
		}

		switch key {
		case "debug":
			cfg.Debug = true
		case "rotate":
			cfg.Rotate = true
		case "no-check-names":
			cfg.NoCheckNames = true
		case "inet6":
			cfg.Inet6 = true
		case "ip6-bytestring":
			cfg.IP6ByteString = true
		case "ip6-dotint":
			cfg.IP6DotInt = true
		case "no-ip6-dotint":
			cfg.IP6DotInt = false
		case "edns0":
			cfg.EDNS0 = true
		case "single-request":
			cfg.SingleRequest = true
		case "single-request-reopen":
			cfg.SingleRequestReopen = true
		case "no-reload":
			cfg.NoReload = true
		case "trust-ad":
			cfg.TrustAD = true
		case "no-tld-query":
			cfg.NoTLDQuery = true
		case "use-vc":
			cfg.UseVC = true
		case "ndots":
			n, err := parseOptionUint(value, hasValue)
			if err != nil {
				return errAt(line, ErrInvalidOptionValue)
			}
			cfg.NDots = n
		case "timeout":
			n, err := parseOptionUint(value, hasValue)
			if err != nil {
				return errAt(line, ErrInvalidOptionValue)
			}
			cfg.Timeout = n
		case "attempts":
			n, err := parseOptionUint(value, hasValue)
			if err != nil {
				return errAt(line, ErrInvalidOptionValue)
			}
			cfg.Attempts = n
		default:
			return errAt(line, ErrInvalidOption)
		}
	}
	return nil
}

func parseOptionUint(value string, hasValue bool) (uint32, error) {
	if !hasValue {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
