// Package config loads the resolvctl application configuration from flags,
// environment, and an optional YAML file, in that precedence order.
package config

// Defaults for settings not specified anywhere.
const (
	DefaultOutput      = "table"
	DefaultProbeDomain = "example.com"
	DefaultDoHURL      = "https://dns.quad9.net/dns-query"
	DefaultConcurrency = 4
)

// Config represents the complete resolvctl configuration.
type Config struct {
	// Output format: table, json, plain
	Output string `yaml:"output" mapstructure:"output"`

	// Enable debug logging
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Path to the resolv.conf file; empty means auto-detect
	File string `yaml:"file" mapstructure:"file"`

	// Domain resolved when probing nameservers
	ProbeDomain string `yaml:"probe-domain" mapstructure:"probe-domain"`

	// DNS-over-HTTPS endpoint used as the probe reference
	DoHURL string `yaml:"doh-url" mapstructure:"doh-url"`

	// Number of nameservers probed concurrently
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`

	// Path to a MaxMind City database for nameserver locations
	GeoIPDB string `yaml:"geoip-db" mapstructure:"geoip-db"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Output:      DefaultOutput,
		ProbeDomain: DefaultProbeDomain,
		DoHURL:      DefaultDoHURL,
		Concurrency: DefaultConcurrency,
	}
}
