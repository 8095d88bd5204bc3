package stats

// Pure descriptive statistics over a sequence of float64 values.
// None of these functions keep state or modify their input.

import (
	"fmt"
	"sort"

	"github.com/containerd/errdefs"
)

var (
	// ErrEmptyInput is returned when a statistic is requested for an empty sequence.
	ErrEmptyInput = fmt.Errorf("empty sequence: %w", errdefs.ErrInvalidArgument)

	// ErrMultipleModes is returned by Mode when two or more distinct values
	// share the highest occurrence count.
	ErrMultipleModes = fmt.Errorf("multiple modes found: %w", errdefs.ErrConflict)
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Median returns the middle value of xs once sorted, or the mean of the two
// middle values when len(xs) is even. xs itself is left untouched.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("median: %w", ErrEmptyInput)
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Mode returns the most frequent value in xs. A tie between distinct values
// is reported as ErrMultipleModes rather than resolved.
//
// Values are grouped by exact equality. Numbers produced by different
// arithmetic paths may differ in their last bits and then count separately;
// callers feeding computed values should round them first.
func Mode(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("mode: %w", ErrEmptyInput)
	}
	freq := make(Frequencies, len(xs))
	for _, x := range xs {
		freq.Add(x)
	}
	return freq.Mode()
}

// Frequencies counts occurrences of each distinct value.
// NaN never equals itself, so every NaN added lands in its own entry.
type Frequencies map[float64]int

// Add records one occurrence of x.
func (f Frequencies) Add(x float64) {
	f[x]++
}

// Mode returns the single value with the highest count.
func (f Frequencies) Mode() (float64, error) {
	if len(f) == 0 {
		return 0, fmt.Errorf("mode: %w", ErrEmptyInput)
	}
	var (
		mode    float64
		best    int
		holders int
	)
	for v, n := range f {
		switch {
		case n > best:
			mode, best, holders = v, n, 1
		case n == best:
			holders++
		}
	}
	if holders > 1 {
		return 0, fmt.Errorf("mode: %w", ErrMultipleModes)
	}
	return mode, nil
}
