package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/input"
	"github.com/tbckr/resolvctl/internal/output"
	"github.com/tbckr/resolvctl/internal/resolvconf"
	"github.com/tbckr/resolvctl/internal/resolvfile"
)

// checkResult reports the outcome of validating one configuration source.
type checkResult struct {
	File        string `json:"file"`
	Valid       bool   `json:"valid"`
	Nameservers int    `json:"nameservers"`
	Search      int    `json:"search_domains"`
	Sortlist    int    `json:"sortlist_entries"`
	Error       string `json:"error,omitempty"`
	Line        *int   `json:"line,omitempty"`
}

// WriteTable renders the validation outcome as a two-column table.
func (r checkResult) WriteTable(w io.Writer) error {
	table := output.NewWrappingTable(w, 24, 20)
	table.Header("FIELD", "VALUE")

	rows := [][]string{
		{"file", r.File},
		{"valid", fmt.Sprintf("%t", r.Valid)},
	}
	if r.Valid {
		rows = append(rows,
			[]string{"nameservers", fmt.Sprintf("%d", r.Nameservers)},
			[]string{"search domains", fmt.Sprintf("%d", r.Search)},
			[]string{"sortlist entries", fmt.Sprintf("%d", r.Sortlist)},
		)
	} else {
		rows = append(rows, []string{"error", r.Error})
		if r.Line != nil {
			rows = append(rows, []string{"line", fmt.Sprintf("%d", *r.Line)})
		}
	}

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WritePlain renders a single status line suitable for scripts.
func (r checkResult) WritePlain(w io.Writer) error {
	if r.Valid {
		_, err := fmt.Fprintf(w, "%s: OK (%d nameservers)\n", r.File, r.Nameservers)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: INVALID: %s\n", r.File, r.Error)
	return err
}

func newCheckCmd(d *deps) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "check [file]",
		Short:   "Validate a resolv.conf file against the grammar",
		Args:    cobra.MaximumNArgs(1),
		GroupID: "inspect",
		Long: `Check parses a resolver configuration and reports the first grammar
violation with its line number. Pass "-" to read from stdin. With --watch
the file is re-validated every time it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCheck(d, cmd, args)
			if werr := writeResult(cmd.OutOrStdout(), d, result); werr != nil {
				return werr
			}
			if !watch {
				return err
			}

			path := d.resolvePath(args)
			if path == input.Stdin {
				return fmt.Errorf("--watch cannot be combined with stdin input")
			}
			d.logger.Info("watching for changes", "path", path)
			werr := resolvfile.Watch(cmd.Context(), path, d.logger, func() {
				result, _ := runCheck(d, cmd, args)
				if err := writeResult(cmd.OutOrStdout(), d, result); err != nil {
					d.logger.Debug("writing result failed", "error", err)
				}
			})
			if errors.Is(werr, context.Canceled) {
				return nil
			}
			return werr
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate whenever the file changes")

	return cmd
}

// runCheck loads and validates the configuration source, mapping a parse
// failure into the result record rather than aborting.
func runCheck(d *deps, cmd *cobra.Command, args []string) (checkResult, error) {
	cfg, name, err := d.loadResolvConf(cmd, args)
	if err != nil {
		result := checkResult{File: name, Error: output.StripANSI(err.Error())}
		var perr *resolvconf.ParseError
		if errors.As(err, &perr) {
			line := perr.Line
			result.Line = &line
		}
		return result, err
	}
	return checkResult{
		File:        name,
		Valid:       true,
		Nameservers: len(cfg.Nameservers),
		Search:      len(cfg.SearchList()),
		Sortlist:    len(cfg.Sortlist),
	}, nil
}
