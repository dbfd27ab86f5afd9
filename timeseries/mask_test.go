package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopvquality/errs"
)

func maskOver(t *testing.T, s *Series, values []bool) *Mask {
	t.Helper()
	m, err := NewMask(s.Timestamps, values)
	require.NoError(t, err)
	return m
}

func TestNewMaskLengthMismatch(t *testing.T) {
	s := New([]float64{1, 2, 3})
	_, err := NewMask(s.Timestamps, []bool{true})
	require.Error(t, err)
	assert.True(t, errs.IsInputShape(err))
}

func TestMaskForIsAligned(t *testing.T) {
	s := New([]float64{1, 2, 3})
	m := MaskFor(s)

	require.Equal(t, s.Len(), m.Len())
	assert.True(t, m.AlignedWith(s))
	assert.Equal(t, 0, m.CountTrue())
}

func TestMaskAndOrNot(t *testing.T) {
	s := New([]float64{1, 2, 3, 4})
	a := maskOver(t, s, []bool{true, true, false, false})
	b := maskOver(t, s, []bool{true, false, true, false})

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, and.Values)

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, or.Values)

	assert.Equal(t, []bool{false, false, true, true}, a.Not().Values)
}

func TestMaskCombineRejectsMisaligned(t *testing.T) {
	a := MaskFor(New([]float64{1, 2, 3}))
	b := MaskFor(New([]float64{1, 2}))

	_, err := a.And(b)
	require.Error(t, err)
	assert.True(t, errs.IsInputShape(err))

	// same length, different timestamps
	s := New([]float64{1, 2, 3})
	shifted := make([]time.Time, s.Len())
	for i, ts := range s.Timestamps {
		shifted[i] = ts.Add(time.Minute)
	}
	c, err := NewMask(shifted, make([]bool, 3))
	require.NoError(t, err)

	_, err = a.Or(c)
	require.Error(t, err)
	assert.True(t, errs.IsInputShape(err))
}

func TestMaskAlignedWith(t *testing.T) {
	s := New([]float64{1, 2, 3})
	m := MaskFor(s)

	assert.True(t, m.AlignedWith(s))
	assert.False(t, m.AlignedWith(New([]float64{1, 2})))
}

func TestMaskCountTrue(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	m := maskOver(t, s, []bool{true, false, true, false, true})

	assert.Equal(t, 3, m.CountTrue())
}
