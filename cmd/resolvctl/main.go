package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tbckr/resolvctl/internal/cli"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	// Handle signal cancellation
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	return cli.Execute(ctx, stdin, stdout, stderr)
}
