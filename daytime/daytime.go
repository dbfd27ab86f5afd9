// Package daytime classifies samples of an irradiance or power time series
// as day or night.
package daytime

import (
	"math"
	"time"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

// Options controls the daytime classifier. Windows are durations, not
// sample counts, so the classifier behaves the same at minute, 15-minute,
// and hourly spacing.
type Options struct {
	// NormQuantile is the quantile of the series used as the robust
	// maximum for normalization. Using a quantile instead of the maximum
	// keeps isolated spikes from compressing the rest of the signal.
	NormQuantile float64

	// LowValueThreshold is the fraction of the robust maximum below which
	// a sample is too dim to count as day on value alone.
	LowValueThreshold float64

	// LowDiffThreshold is the smoothed normalized rate of change
	// (per minute) above which a strictly positive sample counts as part
	// of a sunrise or sunset ramp.
	LowDiffThreshold float64

	// SmoothingWindow is the width of the centered rolling mean applied
	// to the absolute rate of change.
	SmoothingWindow time.Duration

	// GapClose is the longest stretch of night-classified samples that is
	// reclassified as day when day samples surround it. This absorbs data
	// gaps and brief zero excursions within a single diurnal cycle while
	// leaving real nights, which are far longer, untouched.
	GapClose time.Duration
}

// DefaultOptions returns the classifier defaults, calibrated for GHI-like
// signals with a true zero floor at night.
func DefaultOptions() Options {
	return Options{
		NormQuantile:      0.98,
		LowValueThreshold: 0.001,
		LowDiffThreshold:  0.0005,
		SmoothingWindow:   90 * time.Minute,
		GapClose:          4 * time.Hour,
	}
}

func (o Options) validate() error {
	if o.NormQuantile <= 0 || o.NormQuantile > 1 {
		return errs.Configurationf("norm quantile must be in (0, 1]: %v", o.NormQuantile)
	}
	if o.LowValueThreshold <= 0 {
		return errs.Configurationf("low value threshold must be positive: %v", o.LowValueThreshold)
	}
	if o.LowDiffThreshold <= 0 {
		return errs.Configurationf("low diff threshold must be positive: %v", o.LowDiffThreshold)
	}
	if o.SmoothingWindow <= 0 {
		return errs.Configurationf("smoothing window must be positive: %v", o.SmoothingWindow)
	}
	if o.GapClose <= 0 {
		return errs.Configurationf("gap close window must be positive: %v", o.GapClose)
	}
	return nil
}

// Diff classifies each sample of the series as day (true) or night (false)
// using the default options.
//
// The classifier is derivative-based: it normalizes the series by a robust
// maximum, computes the per-minute rate of change, and marks a sample as
// day when its value clears a small threshold or when it sits on a
// sunrise/sunset ramp. Night-classified stretches shorter than the
// gap-close window that are surrounded by day are then reclassified as
// day, so mid-day zero excursions and data gaps do not split a day in two.
// Clipping plateaus stay classified as day on value alone, and overcast
// days survive because the thresholds sit well below a half-scale signal.
//
// A series that never rises above the noise floor yields an all-false
// mask; an empty series yields an empty mask. Neither is an error.
func Diff(series *timeseries.Series) (*timeseries.Mask, error) {
	return DiffWithOptions(series, DefaultOptions())
}

// DiffWithOptions classifies each sample as day or night with explicit
// options. The returned mask carries the series timestamps.
func DiffWithOptions(series *timeseries.Series, opts Options) (*timeseries.Mask, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mask := timeseries.MaskFor(series)
	n := series.Len()
	if n == 0 {
		return mask, nil
	}

	robustMax := series.Quantile(opts.NormQuantile)
	if math.IsNaN(robustMax) || robustMax <= 0 {
		// Flat or non-positive signal: nothing here is day.
		return mask, nil
	}

	norm := make([]float64, n)
	for i, v := range series.Values {
		norm[i] = v / robustMax
	}

	smoothRate := smoothedAbsRate(series.Timestamps, norm, opts.SmoothingWindow)

	day := mask.Values
	for i := 0; i < n; i++ {
		bright := norm[i] > opts.LowValueThreshold
		ramping := norm[i] > 0 && smoothRate[i] > opts.LowDiffThreshold
		day[i] = bright || ramping
	}

	closeGaps(series.Timestamps, day, opts.GapClose)
	return mask, nil
}

// smoothedAbsRate computes the absolute first difference per minute and
// smooths it with a centered, time-based rolling mean.
func smoothedAbsRate(ts []time.Time, norm []float64, window time.Duration) []float64 {
	n := len(norm)
	rate := make([]float64, n)
	for i := 1; i < n; i++ {
		dt := ts[i].Sub(ts[i-1]).Minutes()
		if dt > 0 {
			rate[i] = math.Abs(norm[i]-norm[i-1]) / dt
		}
	}

	half := window / 2
	out := make([]float64, n)
	lo, hi := 0, -1
	sum := 0.0
	for i := 0; i < n; i++ {
		start := ts[i].Add(-half)
		end := ts[i].Add(half)
		for hi+1 < n && !ts[hi+1].After(end) {
			hi++
			sum += rate[hi]
		}
		for lo <= hi && ts[lo].Before(start) {
			sum -= rate[lo]
			lo++
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

// closeGaps reclassifies night runs no longer than maxGap as day when day
// samples flank them on both sides. Runs touching either end of the series
// are left alone.
func closeGaps(ts []time.Time, day []bool, maxGap time.Duration) {
	n := len(day)
	i := 0
	for i < n {
		if day[i] {
			i++
			continue
		}
		j := i
		for j+1 < n && !day[j+1] {
			j++
		}
		if i > 0 && j < n-1 && ts[j].Sub(ts[i]) <= maxGap {
			for k := i; k <= j; k++ {
				day[k] = true
			}
		}
		i = j + 1
	}
}
