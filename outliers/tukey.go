package outliers

import (
	"github.com/montanaflynn/stats"

	"github.com/sartorproj/gopvquality/errs"
	"github.com/sartorproj/gopvquality/timeseries"
)

// Tukey flags outliers outside the standard Tukey fences: values more
// than 1.5 interquartile ranges below the first or above the third
// quartile of the whole series.
func Tukey(series *timeseries.Series) (*timeseries.Mask, error) {
	return TukeyWithFences(series, 1.5)
}

// TukeyWithFences flags values outside [Q1 - k*IQR, Q3 + k*IQR]. A k of
// 1.5 gives the usual mild-outlier fences, 3.0 the extreme-outlier fences.
func TukeyWithFences(series *timeseries.Series, k float64) (*timeseries.Mask, error) {
	if k <= 0 {
		return nil, errs.Configurationf("fence multiplier must be positive: %v", k)
	}

	mask := timeseries.MaskFor(series)
	if series.Len() == 0 {
		return mask, nil
	}

	quartiles, err := stats.Quartile(series.Values)
	if err != nil {
		return nil, err
	}
	iqr, err := stats.InterQuartileRange(series.Values)
	if err != nil {
		return nil, err
	}

	lower := quartiles.Q1 - k*iqr
	upper := quartiles.Q3 + k*iqr
	for i, v := range series.Values {
		mask.Values[i] = v < lower || v > upper
	}
	return mask, nil
}
