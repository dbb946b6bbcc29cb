package resolvconf

import (
	"encoding/binary"
	"errors"
	"net/netip"
	"strings"
)

var (
	errNotIPv4         = errors.New("not an IPv4 address")
	errNotIPv6         = errors.New("not an IPv6 address")
	errUnspecified     = errors.New("unspecified network address")
	errNonContiguous   = errors.New("netmask bits are not contiguous")
	errMaskFamilyMixed = errors.New("netmask family does not match address")
)

// ParseNetwork parses a sortlist token of the form ADDRESS or ADDRESS/MASK,
// trying IPv4 first and falling back to IPv6.
func ParseNetwork(s string) (Network, error) {
	n, err := parseIPv4Network(s)
	if err == nil {
		return n, nil
	}
	return parseIPv6Network(s)
}

// parseIPv4Network parses an IPv4 sortlist token. The all-zero address is
// always rejected: a sortlist entry may never target the unspecified
// network. An explicit mask must be a contiguous left-aligned run of ones;
// without one the mask is inferred per whole-octet heuristic (see inferMask4).
func parseIPv4Network(s string) (Network, error) {
	addrStr, maskStr, hasMask := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Network{}, err
	}
	if !addr.Is4() {
		return Network{}, errNotIPv4
	}
	if addr == netip.IPv4Unspecified() {
		return Network{}, errUnspecified
	}

	if !hasMask {
		return Network{Addr: addr, Mask: inferMask4(addr)}, nil
	}

	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return Network{}, err
	}
	if !mask.Is4() {
		return Network{}, errMaskFamilyMixed
	}
	if !contiguousMask4(mask) {
		return Network{}, errNonContiguous
	}
	return Network{Addr: addr, Mask: mask}, nil
}

// inferMask4 guesses a mask from the address by counting trailing zero
// octets: 0→/32, 1→/24, 2→/16, 3→/8. This is deliberately whole-octet, not
// bit-level: 128.192.0.0 infers /16 even though /10 would be tighter. "DNS
// and BIND" documents the octet rule for sortlist.
func inferMask4(addr netip.Addr) netip.Addr {
	o := addr.As4()
	switch {
	case o[3] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 255, 255})
	case o[2] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 255, 0})
	case o[1] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 0, 0})
	default:
		return netip.AddrFrom4([4]byte{255, 0, 0, 0})
	}
}

// contiguousMask4 reports whether mask is a non-zero, left-aligned run of
// ones. m|(m-1) fills everything below the lowest set bit, so the result is
// all-ones exactly when no zero bit sits above a one bit.
func contiguousMask4(mask netip.Addr) bool {
	o := mask.As4()
	m := binary.BigEndian.Uint32(o[:])
	return m != 0 && m|(m-1) == ^uint32(0)
}

// parseIPv6Network parses an IPv6 sortlist token. An explicit mask is
// accepted verbatim as any 128-bit literal; with none the mask defaults to
// all-ones (host-exact match). No inference is attempted for IPv6.
func parseIPv6Network(s string) (Network, error) {
	addrStr, maskStr, hasMask := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Network{}, err
	}
	if addr.Is4() {
		return Network{}, errNotIPv6
	}

	if !hasMask {
		var ones [16]byte
		for i := range ones {
			ones[i] = 0xff
		}
		return Network{Addr: addr, Mask: netip.AddrFrom16(ones)}, nil
	}

	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return Network{}, err
	}
	if mask.Is4() {
		return Network{}, errMaskFamilyMixed
	}
	return Network{Addr: addr, Mask: mask}, nil
}
