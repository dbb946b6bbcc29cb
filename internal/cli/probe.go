package cli

import (
	"github.com/imroc/req/v3"
	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/probe"
)

func newProbeCmd(d *deps) *cobra.Command {
	var withDoH bool

	cmd := &cobra.Command{
		Use:     "probe [file]",
		Short:   "Query every configured nameserver and report its health",
		Args:    cobra.MaximumNArgs(1),
		GroupID: "inspect",
		Long: `Probe sends a live DNS query for the probe domain to every configured
nameserver, honoring the configuration's own tuning (timeout, attempts,
use-vc, edns0), and reports RTT, response code, and answers per server.

With --doh the same question is also resolved through a DNS-over-HTTPS
reference endpoint and each server's answers are compared against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rcfg, _, err := d.loadResolvConf(cmd, args)
			if err != nil {
				return err
			}

			prober := probe.New(rcfg, probe.NewClient(rcfg), d.logger)
			results, err := prober.Run(cmd.Context(), d.cfg.ProbeDomain, d.cfg.Concurrency)
			if err != nil {
				return err
			}

			if withDoH {
				client := req.C().SetTimeout(rcfg.TimeoutDuration())
				ref, err := probe.Reference(cmd.Context(), client, d.cfg.DoHURL, d.cfg.ProbeDomain)
				if err != nil {
					// The reference is advisory; direct probe results stand.
					d.logger.Debug("DoH reference failed", "url", d.cfg.DoHURL, "error", err)
				} else {
					results.SetReference(ref)
				}
			}

			return writeResult(cmd.OutOrStdout(), d, results)
		},
	}

	cmd.Flags().BoolVar(&withDoH, "doh", false, "compare answers against the DoH reference endpoint")

	return cmd
}
