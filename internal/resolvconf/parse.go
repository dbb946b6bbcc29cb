package resolvconf

import (
	"bytes"
	"net/netip"
	"strings"
	"unicode/utf8"
)

// Parse parses a resolv.conf buffer into a Config. It is total over any byte
// sequence: malformed input maps to a *ParseError, never a panic. The first
// error aborts the parse; no partial Config is returned.
func Parse(data []byte) (*Config, error) {
	cfg := New()

	for line, raw := range bytes.Split(data, []byte{'\n'}) {
		// Full-comment fast path: first non-tab/space byte is ';' or '#'.
		// Such lines are skipped before UTF-8 validation, deliberately
		// tolerating invalid byte sequences inside comments.
		if isCommentLine(raw) {
			continue
		}
		if !utf8.Valid(raw) {
			return nil, errAt(line, ErrInvalidUTF8)
		}

		text := string(raw)
		if i := strings.IndexAny(text, ";#"); i >= 0 {
			text = text[:i]
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			continue
		}

		if err := dispatch(cfg, tokens[0], tokens[1:], line); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func isCommentLine(raw []byte) bool {
	for _, c := range raw {
		if c == '\t' || c == ' ' {
			continue
		}
		return c == ';' || c == '#'
	}
	return false
}

// dispatch routes one directive line to its handler. Keywords are matched
// exactly, case-sensitive; anything else is ErrInvalidDirective.
func dispatch(cfg *Config, keyword string, args []string, line int) error {
	switch keyword {
	case "nameserver":
		if len(args) == 0 {
			return errAt(line, ErrInvalidValue)
		}
		addr, err := netip.ParseAddr(args[0])
		if err != nil {
			return errIP(line, err)
		}
		cfg.Nameservers = append(cfg.Nameservers, addr)
		if len(args) > 1 {
			return errAt(line, ErrExtraData)
		}

	case "domain":
		if len(args) == 0 {
			return errAt(line, ErrInvalidValue)
		}
		cfg.SetDomain(args[0])
		if len(args) > 1 {
			return errAt(line, ErrExtraData)
		}

	case "search":
		list := make([]string, len(args))
		copy(list, args)
		cfg.SetSearch(list)

	case "sortlist":
		cfg.Sortlist = nil
		for _, tok := range args {
			netw, err := ParseNetwork(tok)
			if err != nil {
				return errIP(line, err)
			}
			cfg.Sortlist = append(cfg.Sortlist, netw)
		}

	case "options":
		return parseOptions(cfg, args, line)

	case "lookup":
		// Permissive: unknown database names are kept verbatim.
		for _, tok := range args {
			switch tok {
			case "file":
				cfg.Lookup = append(cfg.Lookup, Lookup{Kind: LookupFile})
			case "bind":
				cfg.Lookup = append(cfg.Lookup, Lookup{Kind: LookupBind})
			default:
				cfg.Lookup = append(cfg.Lookup, Lookup{Kind: LookupExtra, Name: tok})
			}
		}

	case "family":
		// Strict, unlike lookup: unrecognized tokens are rejected.
		for _, tok := range args {
			switch tok {
			case "inet4":
				cfg.Family = append(cfg.Family, FamilyInet4)
			case "inet6":
				cfg.Family = append(cfg.Family, FamilyInet6)
			default:
				return errAt(line, ErrInvalidValue)
			}
		}

	default:
		return errAt(line, ErrInvalidDirective)
	}

	return nil
}
