package lockbased

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localdev/statistics/pkg/stats"
)

func TestLockBasedStats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewStats(ctx)

	_, err := s.Mean(ctx)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	require.EqualError(t, err, "mean: empty sequence: invalid argument")
	_, err = s.Median(ctx)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = s.Mode(ctx)
	require.ErrorIs(t, err, stats.ErrEmptyInput)

	for _, x := range []float64{1, 2, 2, 3, 4} {
		require.NoError(t, s.Event(ctx, x))
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	mean, err := s.Mean(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.4, mean)

	median, err := s.Median(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, median)

	mode, err := s.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mode)

	require.NoError(t, s.Event(ctx, 1))
	_, err = s.Mode(ctx)
	require.ErrorIs(t, err, stats.ErrMultipleModes)
}

func TestLockBasedStatsConcurrentWriters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewStats(ctx)

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				assert.NoError(t, s.Event(ctx, 3))
				_, err := s.Median(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, count)

	mode, err := s.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mode)
}

func TestLockBasedStatsClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewStats(ctx)
	require.NoError(t, s.Event(ctx, 1))
	cancel()

	bg := context.Background()
	assert.ErrorIs(t, s.Event(bg, 2), stats.ErrClosed)
	_, err := s.Count(bg)
	assert.ErrorIs(t, err, stats.ErrClosed)
	_, err = s.Mean(bg)
	assert.ErrorIs(t, err, stats.ErrClosed)
}
