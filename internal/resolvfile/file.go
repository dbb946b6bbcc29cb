// Package resolvfile locates and loads the system resolver configuration.
// It is the only package that touches the filesystem on behalf of the
// grammar engine in internal/resolvconf.
package resolvfile

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/tbckr/resolvctl/internal/resolvconf"
)

const (
	// DefaultPath is the conventional resolver configuration file.
	DefaultPath = "/etc/resolv.conf"
	// systemdPath is the file systemd-resolved generates with the real
	// upstream servers, used when DefaultPath only lists the local stub.
	systemdPath = "/run/systemd/resolve/resolv.conf"
)

var systemdStub = netip.MustParseAddr("127.0.0.53")

// Path returns the resolv.conf path to use. When /etc/resolv.conf lists the
// systemd-resolved stub 127.0.0.53 as its only nameserver, the stub is
// useless for inspecting upstream servers, so Path redirects to the file
// systemd-resolved manages. Read errors fall back to DefaultPath; they will
// resurface at Load.
func Path() string {
	data, err := os.ReadFile(DefaultPath)
	if err != nil {
		return DefaultPath
	}
	return pathFromContents(data)
}

func pathFromContents(data []byte) string {
	cfg, err := resolvconf.Parse(data)
	if err != nil {
		return DefaultPath
	}
	if len(cfg.Nameservers) == 1 && cfg.Nameservers[0] == systemdStub {
		return systemdPath
	}
	return DefaultPath
}

// Load reads and parses the file at path. Parse errors keep their
// *resolvconf.ParseError identity through the returned wrap, so callers can
// still recover the line number with errors.As.
func Load(path string) (*resolvconf.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := resolvconf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
