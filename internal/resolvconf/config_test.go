package resolvconf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/resolvctl/internal/resolvconf"
)

func TestNew_Defaults(t *testing.T) {
	cfg := resolvconf.New()

	assert.Equal(t, uint32(1), cfg.NDots)
	assert.Equal(t, uint32(5), cfg.Timeout)
	assert.Equal(t, uint32(2), cfg.Attempts)
	assert.Empty(t, cfg.Nameservers)
	assert.Nil(t, cfg.Search)
	assert.False(t, cfg.Rotate)
	assert.Equal(t, 5*time.Second, cfg.TimeoutDuration())
}

func TestConfig_DomainSearchExclusivity(t *testing.T) {
	cfg := resolvconf.New()

	cfg.SetSearch([]string{"a.example", "b.example"})
	cfg.SetDomain("example.com")
	assert.Equal(t, "example.com", cfg.Domain)
	assert.Nil(t, cfg.Search)

	cfg.SetSearch([]string{"c.example"})
	assert.Empty(t, cfg.Domain)
	assert.Equal(t, []string{"c.example"}, cfg.Search)
}

func TestConfig_SearchList(t *testing.T) {
	cfg := resolvconf.New()
	assert.Nil(t, cfg.SearchList())

	cfg.SetDomain("example.com")
	assert.Equal(t, []string{"example.com"}, cfg.SearchList())

	cfg.SetSearch([]string{"a.example"})
	assert.Equal(t, []string{"a.example"}, cfg.SearchList())

	// a cleared search list stays empty, it does not fall back to the domain
	cfg.SetSearch([]string{})
	assert.Empty(t, cfg.SearchList())
	assert.NotNil(t, cfg.SearchList())
}

func TestLookup_String(t *testing.T) {
	assert.Equal(t, "file", resolvconf.Lookup{Kind: resolvconf.LookupFile}.String())
	assert.Equal(t, "bind", resolvconf.Lookup{Kind: resolvconf.LookupBind}.String())
	assert.Equal(t, "yp", resolvconf.Lookup{Kind: resolvconf.LookupExtra, Name: "yp"}.String())
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "inet4", resolvconf.FamilyInet4.String())
	assert.Equal(t, "inet6", resolvconf.FamilyInet6.String())
}
