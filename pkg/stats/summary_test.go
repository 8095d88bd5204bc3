package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	summary := Describe(sampleNumbers)
	assert.Equal(t, 5, summary.Count)
	require.True(t, summary.Mean.OK())
	assert.Equal(t, 2.4, summary.Mean.Value)
	require.True(t, summary.Median.OK())
	assert.Equal(t, 2.0, summary.Median.Value)
	require.True(t, summary.Mode.OK())
	assert.Equal(t, 2.0, summary.Mode.Value)
}

func TestDescribeKeepsPartialFailuresPerField(t *testing.T) {
	summary := Describe(multiModalSequence)
	assert.Equal(t, 5, summary.Count)
	assert.True(t, summary.Mean.OK())
	assert.Equal(t, 1.8, summary.Mean.Value)
	assert.True(t, summary.Median.OK())
	assert.Equal(t, 2.0, summary.Median.Value)
	assert.False(t, summary.Mode.OK())
	assert.ErrorIs(t, summary.Mode.Err, ErrMultipleModes)
	assert.Zero(t, summary.Mode.Value)
}

func TestDescribeEmpty(t *testing.T) {
	summary := Describe(nil)
	assert.Zero(t, summary.Count)
	for _, r := range []Result{summary.Mean, summary.Median, summary.Mode} {
		assert.ErrorIs(t, r.Err, ErrEmptyInput)
	}
}
