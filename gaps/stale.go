// Package gaps detects data-quality problems caused by stuck or
// interpolated sensors.
package gaps

import (
	"math"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

// Stale flags samples belonging to a stale period: a run of window or more
// consecutive values that are equal within the relative tolerance rtol.
// The first sample of each run is left unflagged, since it is the last
// fresh measurement before the sensor stuck. A window of at least 2 is
// required; rtol must be non-negative (0 demands exact equality).
func Stale(series *timeseries.Series, window int, rtol float64) (*timeseries.Mask, error) {
	if window < 2 {
		return nil, errs.Configurationf("window must be at least 2 samples: %d", window)
	}
	if rtol < 0 {
		return nil, errs.Configurationf("relative tolerance must be non-negative: %v", rtol)
	}

	mask := timeseries.MaskFor(series)
	n := series.Len()
	if n == 0 {
		return mask, nil
	}

	runStart := 0
	for i := 1; i <= n; i++ {
		if i < n && withinTolerance(series.Values[i], series.Values[i-1], rtol) {
			continue
		}
		if i-runStart >= window {
			for k := runStart + 1; k < i; k++ {
				mask.Values[k] = true
			}
		}
		runStart = i
	}
	return mask, nil
}

func withinTolerance(a, b, rtol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= rtol*scale
}
