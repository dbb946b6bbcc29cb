// Package geoip annotates nameserver addresses with location data from a
// local MaxMind database. Purely offline: no lookups leave the machine.
package geoip

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/oschwald/geoip2-golang"
)

// Info is the location data for one address. Fields are empty when the
// database has no record for the address.
type Info struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// Resolver looks up addresses against an open MMDB file.
type Resolver struct {
	db *geoip2.Reader
}

// Open opens the City (or Country) database at path.
func Open(path string) (*Resolver, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening GeoIP database %s: %w", path, err)
	}
	return &Resolver{db: db}, nil
}

// Close releases the database.
func (r *Resolver) Close() error {
	return r.db.Close()
}

// Lookup returns location info for addr. Addresses absent from the database
// yield a zero Info, not an error.
func (r *Resolver) Lookup(addr netip.Addr) (Info, error) {
	rec, err := r.db.City(net.IP(addr.AsSlice()))
	if err != nil {
		return Info{}, fmt.Errorf("GeoIP lookup for %s: %w", addr, err)
	}
	return Info{
		Country: rec.Country.Names["en"],
		City:    rec.City.Names["en"],
	}, nil
}
