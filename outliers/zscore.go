package outliers

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

// ZScore flags values whose distance from the series mean exceeds
// threshold standard deviations. A threshold of 3.0 is conventional.
// Unlike the Hampel filter this is a global, non-robust detector: a few
// large outliers inflate the standard deviation, so it suits data with
// rare, extreme spikes.
func ZScore(series *timeseries.Series, threshold float64) (*timeseries.Mask, error) {
	if threshold <= 0 {
		return nil, errs.Configurationf("threshold must be positive: %v", threshold)
	}

	mask := timeseries.MaskFor(series)
	if series.Len() == 0 {
		return mask, nil
	}

	mean, std := stat.MeanStdDev(series.Values, nil)
	if std == 0 || math.IsNaN(std) {
		return mask, nil
	}

	for i, v := range series.Values {
		mask.Values[i] = math.Abs(v-mean) > threshold*std
	}
	return mask, nil
}
