package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/geoip"
	"github.com/tbckr/resolvctl/internal/output"
)

// nsEntry is one configured nameserver, optionally annotated with GeoIP
// location data.
type nsEntry struct {
	Address string `json:"address"`
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// nsResult lists the nameservers of one configuration source.
type nsResult struct {
	File    string    `json:"file"`
	Servers []nsEntry `json:"servers"`
	geo     bool
}

// WriteTable renders one row per nameserver.
func (r nsResult) WriteTable(w io.Writer) error {
	table := output.NewWrappingTable(w, 24, 20)
	if r.geo {
		table.Header("ADDRESS", "COUNTRY", "CITY")
	} else {
		table.Header("ADDRESS")
	}
	for _, s := range r.Servers {
		row := []string{s.Address}
		if r.geo {
			row = append(row, orDash(s.Country), orDash(s.City))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WritePlain renders one address per line for piping.
func (r nsResult) WritePlain(w io.Writer) error {
	for _, s := range r.Servers {
		if _, err := fmt.Fprintln(w, s.Address); err != nil {
			return err
		}
	}
	return nil
}

func newNameserversCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "nameservers [file]",
		Short:   "List the configured nameservers",
		Args:    cobra.MaximumNArgs(1),
		GroupID: "inspect",
		Long: `Nameservers lists the configured resolver addresses in file order.
With --geoip-db pointing at a MaxMind City database, each address is
annotated with its country and city.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, name, err := d.loadResolvConf(cmd, args)
			if err != nil {
				return err
			}

			result := nsResult{File: name}
			for _, addr := range cfg.Nameservers {
				result.Servers = append(result.Servers, nsEntry{Address: addr.String()})
			}

			if d.cfg.GeoIPDB != "" {
				result.geo = true
				resolver, err := geoip.Open(d.cfg.GeoIPDB)
				if err != nil {
					return err
				}
				defer resolver.Close()

				for i, addr := range cfg.Nameservers {
					info, err := resolver.Lookup(addr)
					if err != nil {
						d.logger.Debug("GeoIP lookup failed", "address", addr, "error", err)
						continue
					}
					result.Servers[i].Country = info.Country
					result.Servers[i].City = info.City
				}
			}

			return writeResult(cmd.OutOrStdout(), d, result)
		},
	}
}
