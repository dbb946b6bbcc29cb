package resolver

import (
	"strings"

	"github.com/tbckr/resolvctl/internal/resolvconf"
)

// Qualify returns the lookup candidates for name under cfg's search rules.
//
// A rooted name (trailing dot) is looked up as-is. A name with at least
// ndots dots is tried as-is first, then with each search suffix appended.
// Otherwise the search suffixes come first and the bare name last. This is
// the classic libc qualification order.
func Qualify(cfg *resolvconf.Config, name string) []string {
	if strings.HasSuffix(name, ".") {
		return []string{name}
	}

	suffixes := cfg.SearchList()
	qualified := make([]string, 0, len(suffixes)+1)
	for _, s := range suffixes {
		qualified = append(qualified, name+"."+s)
	}

	if uint32(strings.Count(name, ".")) >= cfg.NDots {
		return append([]string{name}, qualified...)
	}
	return append(qualified, name)
}
