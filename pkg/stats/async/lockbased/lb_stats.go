package lockbased

// Event push with lock based computation

import (
	"context"
	"fmt"
	"sync"

	"github.com/containerd/log"

	"github.com/localdev/statistics/pkg/stats"
)

// Holds the values accumulated by the stats calculator
type statsValues struct {
	sum     float64
	samples []float64
	freq    stats.Frequencies
}

// Embeds the statsValues.
// Also holds the synchronization mechanisms
type lockBasedStats struct {
	statsValues

	lock sync.RWMutex
	done <-chan struct{}
}

// Event records a value. The running sum, the sample list and the
// frequency table are updated under the write lock, so any read issued
// after Event returns observes the value.
func (s *lockBasedStats) Event(ctx context.Context, x float64) error {
	if s.closed() {
		return stats.ErrClosed
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	s.sum += x
	s.samples = append(s.samples, x)
	s.freq.Add(x)

	log.G(ctx).WithFields(log.Fields{
		"value": x,
		"count": len(s.samples),
		"mean":  s.sum / float64(len(s.samples)),
	}).Debug("event recorded")
	return nil
}

// Count returns the number of recorded events.
func (s *lockBasedStats) Count(ctx context.Context) (int, error) {
	if s.closed() {
		return 0, stats.ErrClosed
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.samples), nil
}

// Mean returns the mean of the recorded events, kept from a running sum.
func (s *lockBasedStats) Mean(ctx context.Context) (float64, error) {
	if s.closed() {
		return 0, stats.ErrClosed
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	if len(s.samples) == 0 {
		return 0, fmt.Errorf("mean: %w", stats.ErrEmptyInput)
	}
	return s.sum / float64(len(s.samples)), nil
}

// Median returns the median of the recorded events.
func (s *lockBasedStats) Median(ctx context.Context) (float64, error) {
	if s.closed() {
		return 0, stats.ErrClosed
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	return stats.Median(s.samples)
}

// Mode returns the most frequent recorded value.
func (s *lockBasedStats) Mode(ctx context.Context) (float64, error) {
	if s.closed() {
		return 0, stats.ErrClosed
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.freq.Mode()
}

func (s *lockBasedStats) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// NewStats returns a statistics calculator whose state is guarded by a
// read-write lock. The calculator stops accepting calls once ctx is done.
func NewStats(ctx context.Context) stats.Statistics {
	log.G(ctx).Debug("starting lock based statistics")
	return &lockBasedStats{
		statsValues: statsValues{
			freq: stats.Frequencies{},
		},
		done: ctx.Done(),
	}
}
