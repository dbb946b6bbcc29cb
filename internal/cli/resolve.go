package cli

import (
	"fmt"
	"io"
	"net/netip"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/apperr"
	"github.com/tbckr/resolvctl/internal/output"
	"github.com/tbckr/resolvctl/internal/resolver"
	"github.com/tbckr/resolvctl/internal/validate"
)

// resolveResult records which qualified candidate answered and with what.
type resolveResult struct {
	Name      string   `json:"name"`
	Resolved  string   `json:"resolved,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
	Tried     []string `json:"tried"`
}

// WriteTable renders the resolution outcome as a two-column table.
func (r resolveResult) WriteTable(w io.Writer) error {
	table := output.NewWrappingTable(w, 24, 20)
	table.Header("FIELD", "VALUE")
	rows := [][]string{
		{"name", r.Name},
		{"resolved as", orDash(r.Resolved)},
		{"addresses", orDash(strings.Join(r.Addresses, ", "))},
		{"tried", strings.Join(r.Tried, ", ")},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WritePlain renders one address per line for piping.
func (r resolveResult) WritePlain(w io.Writer) error {
	for _, addr := range r.Addresses {
		if _, err := fmt.Fprintln(w, addr); err != nil {
			return err
		}
	}
	return nil
}

func newResolveCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve NAME",
		Short:   "Resolve a name through the configured nameservers",
		Args:    cobra.ExactArgs(1),
		GroupID: "inspect",
		Long: `Resolve looks up NAME using the parsed configuration: the configured
nameservers are dialed directly, and the search list and ndots option decide
the qualification order, the way the system stub resolver would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !validate.IsHost(strings.TrimSuffix(name, ".")) {
				return fmt.Errorf("%w: must be a valid host name: %q", apperr.ErrInvalidInput, name)
			}

			// The configuration source comes from --file or auto-detection;
			// the positional argument is the name being resolved.
			rcfg, _, err := d.loadResolvConf(cmd, nil)
			if err != nil {
				return err
			}

			res := resolver.New(rcfg)
			result := resolveResult{Name: name}

			var addrs []netip.Addr
			for _, candidate := range resolver.Qualify(rcfg, name) {
				result.Tried = append(result.Tried, candidate)
				addrs, err = res.LookupNetIP(cmd.Context(), "ip", candidate)
				if err != nil {
					d.logger.Debug("lookup failed", "name", candidate, "error", err)
					continue
				}
				result.Resolved = candidate
				break
			}
			if result.Resolved == "" {
				return fmt.Errorf("resolving %s: %w", name, err)
			}

			for _, addr := range addrs {
				result.Addresses = append(result.Addresses, addr.String())
			}
			return writeResult(cmd.OutOrStdout(), d, result)
		},
	}
}
