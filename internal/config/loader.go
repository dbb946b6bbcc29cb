package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/resolvctl/internal/appdir"
)

// RegisterFlags declares the persistent flags backing the configuration.
// Flag names double as viper keys, so a changed flag always wins over the
// config file.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", DefaultOutput, `output format: "table", "json", or "plain"`)
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringP("file", "f", "", "resolv.conf path (default: auto-detect)")
	flags.String("probe-domain", DefaultProbeDomain, "domain to resolve when probing nameservers")
	flags.String("doh-url", DefaultDoHURL, "DNS-over-HTTPS endpoint used as probe reference")
	flags.Int("concurrency", DefaultConcurrency, "number of nameservers probed concurrently")
	flags.String("geoip-db", "", "path to a MaxMind City database for nameserver locations")
}

// Load resolves the configuration. Precedence: changed flags, then
// RESOLVCTL_* environment variables, then the YAML config file in the app
// config directory, then defaults. A missing config file is not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RESOLVCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if dir, err := appdir.ConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults configures viper default values matching NewDefaultConfig.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("verbose", false)
	v.SetDefault("file", "")
	v.SetDefault("probe-domain", DefaultProbeDomain)
	v.SetDefault("doh-url", DefaultDoHURL)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("geoip-db", "")
}
