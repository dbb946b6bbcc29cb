// Package cli provides the Cobra command tree and output wiring for
// resolvctl.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/config"
	"github.com/tbckr/resolvctl/internal/version"
)

// newRootCmd builds the top-level Cobra command for resolvctl.
// Callers must set stdin/stdout/stderr via cmd.SetIn / SetOut / SetErr
// before Execute.
func newRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// INVARIANT: Cobra only executes the innermost PersistentPreRunE in the
	// command chain. Subcommands must not define their own PersistentPreRunE
	// without re-calling buildDeps.
	var d deps

	cmd := &cobra.Command{
		Use:   "resolvctl",
		Short: "Inspect and validate resolver configuration",
		Long: `resolvctl parses resolv.conf-style resolver configuration and makes it
queryable: validate a file, show the parsed result, list nameservers, resolve
names through the configuration, and probe the configured servers with live
DNS queries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.Version = version.Version
	cmd.SetVersionTemplate("resolvctl version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "inspect", Title: "Inspection Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newCheckCmd(&d),
		newShowCmd(&d),
		newNameserversCmd(&d),
		newResolveCmd(&d),
		newProbeCmd(&d),
		newCompletionCmd(),
		newVersionCmd(&d),
	)

	return cmd
}

// Execute builds the root command and runs it with the process arguments.
func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
