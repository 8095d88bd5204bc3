package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/containerd/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/localdev/statistics/pkg/stats"
	"github.com/localdev/statistics/pkg/stats/factory"
)

func newStreamCommand() *cobra.Command {
	var (
		impl       string
		workers    int
		iterations int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Feed events from concurrent writers into a streaming aggregator",
		Long: `Start several writers that each record the values 1..iterations into a
shared aggregator, querying it after every write, then print the final
statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 || iterations < 0 {
				return fmt.Errorf("workers must be positive and iterations non-negative")
			}
			tp, err := factory.ParseStatsType(impl)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			aggregator, err := factory.GetStats(ctx, tp)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			for i := 0; i < workers; i++ {
				id := i + 1
				g.Go(func() error {
					return writeAndQuery(gctx, id, iterations, aggregator)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			summary, err := summarize(ctx, aggregator)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), output, summary)
		},
	}

	cmd.Flags().StringVar(&impl, "impl", string(factory.LB), "Aggregator implementation: LB (lock based) or CH (channel based)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 5, "Number of concurrent writers")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 5, "Events recorded by each writer")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}

// Writes the values 1..count and queries the running mean after each one
func writeAndQuery(ctx context.Context, id, count int, statistics stats.Statistics) error {
	logger := log.G(ctx).WithField("writer", id)
	for i := 1; i <= count; i++ {
		if err := statistics.Event(ctx, float64(i)); err != nil {
			return fmt.Errorf("writer %d: %w", id, err)
		}
		mean, err := statistics.Mean(ctx)
		if err != nil {
			return fmt.Errorf("writer %d: %w", id, err)
		}
		logger.WithFields(log.Fields{"value": i, "mean": mean}).Debug("event written")
	}
	return nil
}

// summarize reads every statistic from the aggregator. Errors describing the
// data end up in the summary; anything else aborts.
func summarize(ctx context.Context, statistics stats.Statistics) (stats.Summary, error) {
	count, err := statistics.Count(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	summary := stats.Summary{Count: count}

	queries := []struct {
		dst *stats.Result
		fn  func(context.Context) (float64, error)
	}{
		{&summary.Mean, statistics.Mean},
		{&summary.Median, statistics.Median},
		{&summary.Mode, statistics.Mode},
	}
	for _, q := range queries {
		v, err := q.fn(ctx)
		if err != nil && !errors.Is(err, stats.ErrEmptyInput) && !errors.Is(err, stats.ErrMultipleModes) {
			return stats.Summary{}, err
		}
		*q.dst = stats.Result{Value: v, Err: err}
	}
	return summary, nil
}
