package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/cyrlat/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Report on the library without renaming anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd, args)
		if err != nil {
			return err
		}
		defer log.Close()

		if !check.RunCheck(cfg, log) {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
