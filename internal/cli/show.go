package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/output"
	"github.com/tbckr/resolvctl/internal/resolvconf"
)

// showResult wraps a parsed configuration together with its source name.
type showResult struct {
	File   string             `json:"file"`
	Config *resolvconf.Config `json:"config"`
}

// fields flattens the configuration into name/value rows. Output is a
// presentation of the parsed record, deliberately not resolv.conf syntax.
func (r showResult) fields() [][]string {
	cfg := r.Config

	var nameservers []string
	for _, ns := range cfg.Nameservers {
		nameservers = append(nameservers, ns.String())
	}
	var sortlist []string
	for _, n := range cfg.Sortlist {
		sortlist = append(sortlist, n.String())
	}
	var lookup []string
	for _, l := range cfg.Lookup {
		lookup = append(lookup, l.String())
	}
	var family []string
	for _, f := range cfg.Family {
		family = append(family, f.String())
	}

	flags := enabledFlags(cfg)

	rows := [][]string{
		{"file", r.File},
		{"nameservers", orDash(strings.Join(nameservers, ", "))},
		{"domain", orDash(cfg.Domain)},
		{"search", orDash(strings.Join(cfg.Search, ", "))},
		{"sortlist", orDash(strings.Join(sortlist, ", "))},
		{"ndots", fmt.Sprintf("%d", cfg.NDots)},
		{"timeout", fmt.Sprintf("%d", cfg.Timeout)},
		{"attempts", fmt.Sprintf("%d", cfg.Attempts)},
		{"flags", orDash(strings.Join(flags, ", "))},
	}
	if len(lookup) > 0 {
		rows = append(rows, []string{"lookup", strings.Join(lookup, ", ")})
	}
	if len(family) > 0 {
		rows = append(rows, []string{"family", strings.Join(family, ", ")})
	}
	return rows
}

// enabledFlags lists the boolean options that are set.
func enabledFlags(cfg *resolvconf.Config) []string {
	var flags []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"debug", cfg.Debug},
		{"rotate", cfg.Rotate},
		{"no-check-names", cfg.NoCheckNames},
		{"inet6", cfg.Inet6},
		{"ip6-bytestring", cfg.IP6ByteString},
		{"ip6-dotint", cfg.IP6DotInt},
		{"edns0", cfg.EDNS0},
		{"single-request", cfg.SingleRequest},
		{"single-request-reopen", cfg.SingleRequestReopen},
		{"no-reload", cfg.NoReload},
		{"trust-ad", cfg.TrustAD},
		{"no-tld-query", cfg.NoTLDQuery},
		{"use-vc", cfg.UseVC},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	return flags
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// WriteTable renders the configuration as a two-column table.
func (r showResult) WriteTable(w io.Writer) error {
	table := output.NewWrappingTable(w, 24, 20)
	table.Header("FIELD", "VALUE")
	for _, row := range r.fields() {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WritePlain renders tab-separated name/value lines for piping.
func (r showResult) WritePlain(w io.Writer) error {
	for _, row := range r.fields() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func newShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show [file]",
		Short:   "Show the fully parsed resolver configuration",
		Args:    cobra.MaximumNArgs(1),
		GroupID: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, name, err := d.loadResolvConf(cmd, args)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), d, showResult{File: name, Config: cfg})
		},
	}
}
