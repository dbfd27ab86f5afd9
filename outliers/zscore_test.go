package outliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

func TestZScoreFlagsSpike(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 1
	}
	values[99] = 50
	s := timeseries.New(values)

	mask, err := ZScore(s, 3)
	require.NoError(t, err)
	require.True(t, mask.AlignedWith(s))

	assert.Equal(t, 1, mask.CountTrue())
	assert.True(t, mask.Values[99])
}

func TestZScoreConstantSeries(t *testing.T) {
	s := timeseries.New([]float64{5, 5, 5, 5, 5})

	mask, err := ZScore(s, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, mask.CountTrue())
}

func TestZScoreEmptySeries(t *testing.T) {
	mask, err := ZScore(timeseries.New(nil), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, mask.Len())
}

func TestZScoreInvalidThreshold(t *testing.T) {
	_, err := ZScore(timeseries.New([]float64{1, 2, 3}), 0)
	require.Error(t, err)
	assert.True(t, errs.IsConfiguration(err))
}
