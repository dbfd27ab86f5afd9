package outliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

func TestTukeyFlagsExtremeValue(t *testing.T) {
	s := timeseries.New([]float64{10, 12, 11, 13, 12, 11, 100})

	mask, err := Tukey(s)
	require.NoError(t, err)
	require.True(t, mask.AlignedWith(s))

	assert.Equal(t, 1, mask.CountTrue())
	assert.True(t, mask.Values[6])
}

func TestTukeyCleanSeries(t *testing.T) {
	s := timeseries.New([]float64{10, 12, 11, 13, 12, 11, 14})

	mask, err := Tukey(s)
	require.NoError(t, err)
	assert.Equal(t, 0, mask.CountTrue())
}

func TestTukeyWiderFences(t *testing.T) {
	s := timeseries.New([]float64{10, 12, 11, 13, 12, 11, 17})

	mild, err := TukeyWithFences(s, 1.5)
	require.NoError(t, err)
	extreme, err := TukeyWithFences(s, 3.0)
	require.NoError(t, err)

	assert.True(t, mild.Values[6])
	assert.False(t, extreme.Values[6])
}

func TestTukeyEmptySeries(t *testing.T) {
	mask, err := Tukey(timeseries.New(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, mask.Len())
}

func TestTukeyInvalidFence(t *testing.T) {
	_, err := TukeyWithFences(timeseries.New([]float64{1, 2, 3}), 0)
	require.Error(t, err)
	assert.True(t, errs.IsConfiguration(err))
}
