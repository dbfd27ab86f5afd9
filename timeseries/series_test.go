package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopvquality/errs"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
	assert.Len(t, s.Timestamps, 5)
	assert.True(t, s.Timestamps[1].After(s.Timestamps[0]))
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)}

	s, err := NewWithTimestamps(timestamps, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestNewWithTimestampsLengthMismatch(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewWithTimestamps([]time.Time{base}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errs.IsInputShape(err))
}

func TestNewWithTimestampsNotIncreasing(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		timestamps []time.Time
	}{
		{"duplicate", []time.Time{base, base}},
		{"decreasing", []time.Time{base.Add(time.Hour), base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithTimestamps(tt.timestamps, make([]float64, len(tt.timestamps)))
			require.Error(t, err)
			assert.True(t, errs.IsInputShape(err))
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			assert.InDelta(t, tt.expected, s.Mean(), 1e-10)
		})
	}
}

func TestVarianceStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	assert.InDelta(t, expected, s.Variance(), 1e-10)
	assert.InDelta(t, math.Sqrt(expected), s.Std(), 1e-10)
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})

	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			assert.InDelta(t, tt.expected, s.Median(), 1e-10)
		})
	}
}

func TestQuantile(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	assert.InDelta(t, 10.0, s.Quantile(1.0), 1e-10)
	assert.InDelta(t, 1.0, s.Quantile(0.0), 1e-10)
	assert.LessOrEqual(t, s.Quantile(0.5), 6.0)
	assert.GreaterOrEqual(t, s.Quantile(0.5), 5.0)
	assert.True(t, math.IsNaN(New(nil).Quantile(0.5)))
}

func TestDiff(t *testing.T) {
	s := New([]float64{1, 3, 6, 10, 15})
	diff := s.Diff()

	require.Equal(t, 4, diff.Len())
	assert.Equal(t, []float64{2, 3, 4, 5}, diff.Values)
	// diff is indexed by the later timestamp of each pair
	assert.Equal(t, s.Timestamps[1:], diff.Timestamps)
}

func TestDiffDegenerate(t *testing.T) {
	assert.Equal(t, 0, New([]float64{7}).Diff().Len())
	assert.Equal(t, 0, New(nil).Diff().Len())
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	sliced := s.Slice(1, 4)

	assert.Equal(t, []float64{2, 3, 4}, sliced.Values)
	assert.Equal(t, s.Timestamps[1:4], sliced.Timestamps)
}

func TestCopyIsIndependent(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 99

	assert.Equal(t, 1.0, s.Values[0])
}

func TestScale(t *testing.T) {
	s := New([]float64{100, 200, 0})
	scaled := s.Scale(0.5)

	assert.Equal(t, []float64{50, 100, 0}, scaled.Values)
	assert.Equal(t, []float64{100, 200, 0}, s.Values)
}

func TestClipMax(t *testing.T) {
	s := New([]float64{100, 600, 499, 500, 700})
	clipped := s.ClipMax(500)

	assert.Equal(t, []float64{100, 500, 499, 500, 500}, clipped.Values)
	assert.Equal(t, 600.0, s.Values[1])
}
