package stats

// Result holds the outcome of a single statistic: either a value or the
// error that prevented computing it.
type Result struct {
	Value float64
	Err   error
}

// OK reports whether the statistic was computed.
func (r Result) OK() bool {
	return r.Err == nil
}

func resultOf(v float64, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: v}
}

// Summary is the set of descriptive statistics for one sequence.
type Summary struct {
	Count  int
	Mean   Result
	Median Result
	Mode   Result
}

// Describe computes every statistic for xs. Failures are recorded per field,
// so a sequence without a unique mode still reports its mean and median.
func Describe(xs []float64) Summary {
	return Summary{
		Count:  len(xs),
		Mean:   resultOf(Mean(xs)),
		Median: resultOf(Median(xs)),
		Mode:   resultOf(Mode(xs)),
	}
}
