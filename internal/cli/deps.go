package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tbckr/resolvctl/internal/config"
	"github.com/tbckr/resolvctl/internal/input"
	"github.com/tbckr/resolvctl/internal/output"
	"github.com/tbckr/resolvctl/internal/resolvconf"
	"github.com/tbckr/resolvctl/internal/resolvfile"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config, logger, and output format.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	switch output.Format(cfg.Output) {
	case output.FormatTable, output.FormatJSON, output.FormatPlain:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be \"table\", \"json\", or \"plain\"", cfg.Output)
	}

	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("--concurrency must be at least 1, got %d", cfg.Concurrency)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &deps{cfg: cfg, logger: logger}, nil
}

// resolvePath picks the resolv.conf source: an explicit argument wins, then
// the --file setting, then the auto-detected system path.
func (d *deps) resolvePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if d.cfg.File != "" {
		return d.cfg.File
	}
	return resolvfile.Path()
}

// loadResolvConf parses the resolver configuration for a command. The path
// "-" reads from the command's stdin; the returned name is what error and
// result output should call the source.
func (d *deps) loadResolvConf(cmd *cobra.Command, args []string) (*resolvconf.Config, string, error) {
	path := d.resolvePath(args)
	if path == input.Stdin {
		data, err := input.ReadSource(path, cmd.InOrStdin())
		if err != nil {
			return nil, "stdin", err
		}
		cfg, err := resolvconf.Parse(data)
		if err != nil {
			return nil, "stdin", fmt.Errorf("parsing stdin: %w", err)
		}
		return cfg, "stdin", nil
	}
	cfg, err := resolvfile.Load(path)
	return cfg, path, err
}

// writeResult formats and writes a command result to stdout.
func writeResult(stdout io.Writer, d *deps, result any) error {
	if err := output.Write(stdout, output.Format(d.cfg.Output), result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
