package main

import (
	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/localdev/statistics/pkg/stats"
)

func newDescribeCommand() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "describe [numbers...]",
		Short: "Print mean, median and mode of the given numbers",
		Long: `Print mean, median and mode of the numbers given as arguments and/or
read from a YAML or JSON sequence file. A statistic that cannot be
computed (empty input, several modes) is reported in place of its value.`,
		Example: `  statsdemo describe 1 2 2 3 4
  statsdemo describe --file samples.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if file != "" {
				fromFile, err := readNumbersFile(file)
				if err != nil {
					return err
				}
				xs = append(xs, fromFile...)
			}

			log.G(cmd.Context()).WithField("count", len(xs)).Debug("describing sequence")
			return writeSummary(cmd.OutOrStdout(), output, stats.Describe(xs))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file holding a sequence of numbers")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
