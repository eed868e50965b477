// Command cyrlat renames music-library folders and files with Cyrillic
// titles, adding a Latin transliteration and keeping the original text.
//
// Without a subcommand it runs one rename pass over the library root;
// "watch" keeps renaming as new albums arrive, "check" reports on the
// library without touching it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/cyrlat/internal/config"
	"github.com/backmassage/cyrlat/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks failures that were already logged; main only sets the
// exit status for them.
var errReported = errors.New("failed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "cyrlat: %v\n", err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and opens the logger. Until the logger
// exists, errors go back to main and are printed to stderr.
func setup(cmd *cobra.Command, args []string) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.NewLoggerTo(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return &cfg, log, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM so a run can
// stop between items without leaving a half-renamed album.
func signalContext(log *logging.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current item…")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
