package main

import (
	"github.com/containerd/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statsdemo",
		Short: "Compute mean, median and mode of a sequence of numbers",
		Long: `statsdemo computes descriptive statistics (mean, median, mode) for a
sequence of numbers, either in one shot or by streaming events into a
concurrent aggregator.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *debugLogging {
			return log.SetLevel("debug")
		}
		return nil
	}

	cmd.AddCommand(newDescribeCommand())
	cmd.AddCommand(newStreamCommand())

	return cmd
}
