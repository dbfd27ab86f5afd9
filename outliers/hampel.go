// Package outliers flags anomalous samples in a time series. Every
// detector returns a boolean mask aligned with its input and never
// modifies or removes values.
package outliers

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

// madScale converts a median absolute deviation into an estimate of the
// standard deviation under a normal-distribution assumption.
const madScale = 1.4826

// HampelOptions controls the Hampel filter.
type HampelOptions struct {
	// Window is the neighborhood size in samples.
	Window int

	// Centered selects the windowing convention: when true the window is
	// centered on each sample, when false it trails behind it.
	Centered bool

	// MaxDeviation is the threshold multiple of the robust scale estimate
	// beyond which a sample is flagged.
	MaxDeviation float64

	// Scale multiplies the MAD to approximate a standard deviation.
	Scale float64
}

// DefaultHampelOptions returns the conventional Hampel parameters: a
// centered window, a 3-sigma threshold, and the normal-consistency MAD
// scale factor.
func DefaultHampelOptions(window int) HampelOptions {
	return HampelOptions{
		Window:       window,
		Centered:     true,
		MaxDeviation: 3.0,
		Scale:        madScale,
	}
}

// Hampel flags outliers using a Hampel filter with a centered window of
// the given sample count. For each position the local median and the
// median absolute deviation are computed over the neighborhood; the sample
// is flagged when it deviates from the local median by more than three
// scaled MADs. Neighborhoods are truncated at the series boundaries, so
// the mask always has the same length as the input.
func Hampel(series *timeseries.Series, window int) (*timeseries.Mask, error) {
	return HampelWithOptions(series, DefaultHampelOptions(window))
}

// HampelWithOptions flags outliers with explicit Hampel parameters.
func HampelWithOptions(series *timeseries.Series, opts HampelOptions) (*timeseries.Mask, error) {
	if opts.Window < 1 {
		return nil, errs.Configurationf("window must be a positive sample count: %d", opts.Window)
	}
	if opts.Window > series.Len() {
		return nil, errs.Configurationf(
			"window (%d) exceeds series length (%d)", opts.Window, series.Len())
	}
	if opts.MaxDeviation <= 0 {
		return nil, errs.Configurationf("max deviation must be positive: %v", opts.MaxDeviation)
	}
	if opts.Scale <= 0 {
		return nil, errs.Configurationf("scale must be positive: %v", opts.Scale)
	}

	mask := timeseries.MaskFor(series)
	n := series.Len()
	for i := 0; i < n; i++ {
		lo, hi := windowBounds(i, n, opts.Window, opts.Centered)
		neighborhood := series.Values[lo : hi+1]

		med, err := stats.Median(neighborhood)
		if err != nil {
			return nil, err
		}
		mad, err := stats.MedianAbsoluteDeviation(neighborhood)
		if err != nil {
			return nil, err
		}

		deviation := math.Abs(series.Values[i] - med)
		mask.Values[i] = deviation > opts.MaxDeviation*opts.Scale*mad
	}
	return mask, nil
}

// windowBounds returns the inclusive [lo, hi] neighborhood around i,
// truncated at the series boundaries.
func windowBounds(i, n, window int, centered bool) (lo, hi int) {
	if centered {
		lo = i - window/2
		hi = lo + window - 1
	} else {
		lo = i - window + 1
		hi = i
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
