package stats

import (
	"context"
	"fmt"

	"github.com/containerd/errdefs"
)

// ErrClosed is returned by a Statistics whose context has been cancelled.
var ErrClosed = fmt.Errorf("statistics calculator closed: %w", errdefs.ErrUnavailable)

// Statistics accumulates events and answers descriptive queries over all
// events recorded so far. Every query behaves like the matching pure function
// applied to that sequence, including ErrEmptyInput before the first event.
type Statistics interface {
	Event(ctx context.Context, x float64) error

	Count(ctx context.Context) (int, error)

	Mean(ctx context.Context) (float64, error)

	Median(ctx context.Context) (float64, error)

	Mode(ctx context.Context) (float64, error)
}
