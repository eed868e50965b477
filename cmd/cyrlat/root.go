package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/cyrlat/internal/check"
	"github.com/backmassage/cyrlat/internal/config"
	"github.com/backmassage/cyrlat/internal/display"
	"github.com/backmassage/cyrlat/internal/logging"
	"github.com/backmassage/cyrlat/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "cyrlat [root]",
	Short: "Transliterate Cyrillic album and track names",
	Long: `cyrlat renames album folders ("YYYY - Title") and the track files
("NN - Title") and artwork inside them, turning a Cyrillic title into
"Latin (Cyrillic)". Cover versions keep their annotation as a separate
group. The root defaults to the current directory.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRename,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(cmd.OutOrStdout())
	if err := preflight(cfg, log); err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	stats := pipeline.Run(ctx, cfg, log)
	if stats.Failed > 0 {
		return fmt.Errorf("%w: %d item(s)", errReported, stats.Failed)
	}
	return nil
}

// preflight validates the root and logs the run header.
func preflight(cfg *config.Config, log *logging.Logger) error {
	if err := check.CheckRoot(cfg); err != nil {
		log.Error("%v", err)
		return errReported
	}

	log.Info("=== cyrlat v%s (%s) ===", version, commit)
	log.Info("Root:   %s", cfg.Root)
	log.Info("Layout: %s", cfg.Layout)
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be renamed")
	}
	log.Info("")
	return nil
}
