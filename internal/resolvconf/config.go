package resolvconf

import (
	"net/netip"
	"time"
)

// Default values for the numeric options, matching the resolver defaults
// applied when the directives are absent.
const (
	DefaultNDots    uint32 = 1
	DefaultTimeout  uint32 = 5
	DefaultAttempts uint32 = 2
)

// LookupKind identifies one entry of the OpenBSD "lookup" directive.
type LookupKind uint8

const (
	// LookupFile resolves via /etc/hosts.
	LookupFile LookupKind = iota
	// LookupBind resolves via DNS.
	LookupBind
	// LookupExtra is any other database name, kept verbatim.
	LookupExtra
)

// Lookup is a single resolution source from a lookup directive. Name is set
// only when Kind is LookupExtra.
type Lookup struct {
	Kind LookupKind `json:"kind"`
	Name string     `json:"name,omitempty"`
}

func (l Lookup) String() string {
	switch l.Kind {
	case LookupFile:
		return "file"
	case LookupBind:
		return "bind"
	default:
		return l.Name
	}
}

// Family is one entry of the OpenBSD "family" directive, selecting the
// address family order for lookups.
type Family uint8

const (
	// FamilyInet4 prefers IPv4 lookups.
	FamilyInet4 Family = iota
	// FamilyInet6 prefers IPv6 lookups.
	FamilyInet6
)

func (f Family) String() string {
	if f == FamilyInet6 {
		return "inet6"
	}
	return "inet4"
}

// Network is an address/mask pair from a sortlist directive. Addr and Mask
// are always the same address family.
type Network struct {
	Addr netip.Addr `json:"addr"`
	Mask netip.Addr `json:"mask"`
}

// Is4 reports whether the network is IPv4.
func (n Network) Is4() bool { return n.Addr.Is4() }

func (n Network) String() string {
	return n.Addr.String() + "/" + n.Mask.String()
}

// Config is the parsed resolver configuration. It is built directive by
// directive during a single Parse call and never shared between calls.
//
// List-typed fields preserve the order directives appear in the source.
// Nameservers, Lookup, and Family are append-only; Search and Sortlist are
// replaced wholesale by each occurrence of their directive.
type Config struct {
	// Nameservers lists the configured resolver addresses in file order.
	// Duplicates are kept.
	Nameservers []netip.Addr `json:"nameservers"`

	// Domain is the local domain. Empty when unset. The last of the
	// domain/search directives wins: setting one clears the other.
	Domain string `json:"domain,omitempty"`

	// Search is the search-domain list. A nil slice means no search
	// directive was seen; an empty non-nil slice means a bare "search"
	// line cleared it.
	Search []string `json:"search"`

	// Sortlist orders equally-valid resolved addresses by network.
	Sortlist []Network `json:"sortlist"`

	// Option flags, false unless set by an options directive.
	Debug               bool `json:"debug"`
	Rotate              bool `json:"rotate"`
	NoCheckNames        bool `json:"no_check_names"`
	Inet6               bool `json:"inet6"`
	IP6ByteString       bool `json:"ip6_bytestring"`
	IP6DotInt           bool `json:"ip6_dotint"`
	EDNS0               bool `json:"edns0"`
	SingleRequest       bool `json:"single_request"`
	SingleRequestReopen bool `json:"single_request_reopen"`
	NoReload            bool `json:"no_reload"`
	TrustAD             bool `json:"trust_ad"`
	NoTLDQuery          bool `json:"no_tld_query"`
	UseVC               bool `json:"use_vc"`

	// Numeric options, overwritten on each occurrence.
	NDots    uint32 `json:"ndots"`
	Timeout  uint32 `json:"timeout"`
	Attempts uint32 `json:"attempts"`

	// Lookup is the OpenBSD database order. Append-only, never cleared.
	Lookup []Lookup `json:"lookup"`

	// Family is the OpenBSD address-family order. Append-only.
	Family []Family `json:"family"`
}

// New returns an empty Config carrying the default numeric option values.
func New() *Config {
	return &Config{
		NDots:    DefaultNDots,
		Timeout:  DefaultTimeout,
		Attempts: DefaultAttempts,
	}
}

// SetDomain overwrites the local domain and clears the search list. The last
// of the domain/search directives in a file wins, per standard resolver
// semantics.
func (c *Config) SetDomain(domain string) {
	c.Domain = domain
	c.Search = nil
}

// SetSearch replaces the search list wholesale and clears the domain. An
// empty list is stored as empty, not nil, so a bare search directive is
// distinguishable from no directive at all.
func (c *Config) SetSearch(list []string) {
	c.Search = list
	c.Domain = ""
}

// SearchList returns the effective search domains: the explicit search list
// when one was set, otherwise a single-element list derived from the domain.
func (c *Config) SearchList() []string {
	if c.Search != nil {
		return c.Search
	}
	if c.Domain != "" {
		return []string{c.Domain}
	}
	return nil
}

// TimeoutDuration returns the per-query timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
