package timeseries

import (
	"time"

	"github.com/sartorproj/gopvquality/errs"
)

// Mask is a boolean series aligned one-to-one with an input Series: same
// length, same timestamps. Quality and feature routines return masks and
// never modify the series they examine.
type Mask struct {
	Timestamps []time.Time
	Values     []bool
	Name       string
}

// NewMask creates a mask with explicit timestamps. Timestamps and values
// must have equal length.
func NewMask(timestamps []time.Time, values []bool) (*Mask, error) {
	if len(timestamps) != len(values) {
		return nil, errs.InputShapef(
			"timestamps and values must have the same length: %d != %d",
			len(timestamps), len(values))
	}
	return &Mask{Timestamps: timestamps, Values: values}, nil
}

// MaskFor creates an all-false mask aligned with the given series.
func MaskFor(s *Series) *Mask {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)
	return &Mask{
		Timestamps: timestamps,
		Values:     make([]bool, s.Len()),
	}
}

// Len returns the length of the mask.
func (m *Mask) Len() int {
	return len(m.Values)
}

// CountTrue returns the number of true entries.
func (m *Mask) CountTrue() int {
	n := 0
	for _, v := range m.Values {
		if v {
			n++
		}
	}
	return n
}

// AlignedWith reports whether the mask has the same length and timestamps
// as the given series.
func (m *Mask) AlignedWith(s *Series) bool {
	if len(m.Values) != s.Len() || len(m.Timestamps) != len(s.Timestamps) {
		return false
	}
	for i := range m.Timestamps {
		if !m.Timestamps[i].Equal(s.Timestamps[i]) {
			return false
		}
	}
	return true
}

// alignedWithMask checks length and timestamp equality between two masks.
func (m *Mask) alignedWithMask(other *Mask) error {
	if len(m.Values) != len(other.Values) {
		return errs.InputShapef(
			"masks must have the same length: %d != %d",
			len(m.Values), len(other.Values))
	}
	for i := range m.Timestamps {
		if i >= len(other.Timestamps) || !m.Timestamps[i].Equal(other.Timestamps[i]) {
			return errs.InputShapef("mask timestamps differ at index %d", i)
		}
	}
	return nil
}

// And returns the pairwise logical AND of two aligned masks.
func (m *Mask) And(other *Mask) (*Mask, error) {
	if err := m.alignedWithMask(other); err != nil {
		return nil, err
	}
	out := m.copyShape()
	for i := range m.Values {
		out.Values[i] = m.Values[i] && other.Values[i]
	}
	return out, nil
}

// Or returns the pairwise logical OR of two aligned masks.
func (m *Mask) Or(other *Mask) (*Mask, error) {
	if err := m.alignedWithMask(other); err != nil {
		return nil, err
	}
	out := m.copyShape()
	for i := range m.Values {
		out.Values[i] = m.Values[i] || other.Values[i]
	}
	return out, nil
}

// Not returns the pairwise logical negation of the mask.
func (m *Mask) Not() *Mask {
	out := m.copyShape()
	for i := range m.Values {
		out.Values[i] = !m.Values[i]
	}
	return out
}

// Copy creates a deep copy of the mask.
func (m *Mask) Copy() *Mask {
	out := m.copyShape()
	copy(out.Values, m.Values)
	return out
}

func (m *Mask) copyShape() *Mask {
	timestamps := make([]time.Time, len(m.Timestamps))
	copy(timestamps, m.Timestamps)
	return &Mask{
		Timestamps: timestamps,
		Values:     make([]bool, len(m.Values)),
		Name:       m.Name,
	}
}
