package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/cyrlat/internal/display"
	"github.com/backmassage/cyrlat/internal/pipeline"
	"github.com/backmassage/cyrlat/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Rename once, then keep renaming as the library changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		total := pipeline.Run(ctx, cfg, log)

		w := watch.New(cfg.Root, cfg.WatchDebounce, log, func() {
			total.Add(pipeline.Run(ctx, cfg, log))
		})
		log.Info("Watching %s (debounce %s). Press Ctrl+C to stop.", cfg.Root, cfg.WatchDebounce)
		if err := w.Run(ctx); err != nil {
			return err
		}

		log.Info("Stopped. Renamed %s in total, %d failed.",
			display.FormatCount(total.Renamed(), "item"), total.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
