package factory

import (
	"context"
	"fmt"
	"strings"

	"github.com/containerd/errdefs"

	"github.com/localdev/statistics/pkg/stats"
	"github.com/localdev/statistics/pkg/stats/async/chbased"
	"github.com/localdev/statistics/pkg/stats/async/lockbased"
)

// StatsType is enum of various stats implementation
type StatsType string

const (
	CH StatsType = "CH"
	LB StatsType = "LB"
)

// ParseStatsType converts a user supplied name, in any case, to a StatsType.
func ParseStatsType(s string) (StatsType, error) {
	tp := StatsType(strings.ToUpper(strings.TrimSpace(s)))
	switch tp {
	case CH, LB:
		return tp, nil
	default:
		return "", fmt.Errorf("unknown stats calculator %q: %w", s, errdefs.ErrInvalidArgument)
	}
}

// GetStats returns a new statistics calculator of the given type bound to ctx.
func GetStats(ctx context.Context, tp StatsType) (s stats.Statistics, err error) {
	switch tp {
	case LB:
		s = lockbased.NewStats(ctx)
	case CH:
		s = chbased.NewStats(ctx)
	default:
		err = fmt.Errorf("unknown stats calculator %q: %w", tp, errdefs.ErrInvalidArgument)
	}
	return
}
