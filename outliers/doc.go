// Package outliers provides outlier detection for PV sensor time series.
//
// Every detector consumes a timeseries.Series and returns a
// timeseries.Mask aligned with it: true marks a flagged sample. Values are
// never modified or removed; filtering is left to the caller.
//
// # Hampel Filter
//
// The Hampel filter compares each sample against the median of its
// neighborhood, with the median absolute deviation (scaled by 1.4826 to
// approximate a standard deviation) as the yardstick:
//
//	mask, err := outliers.Hampel(series, 10)
//
// The window is a sample count. Neighborhoods are truncated at the series
// boundaries, so the mask always matches the input length. The windowing
// convention is explicit:
//
//	opts := outliers.DefaultHampelOptions(10)
//	opts.Centered = false // trailing window
//	mask, err := outliers.HampelWithOptions(series, opts)
//
// # Tukey Fences
//
// Tukey flags values outside the interquartile fences of the whole series:
//
//	mask, err := outliers.Tukey(series)            // 1.5 * IQR
//	mask, err := outliers.TukeyWithFences(series, 3) // extreme fences
//
// # Z-Score
//
// ZScore flags values far from the series mean in standard deviations:
//
//	mask, err := outliers.ZScore(series, 3)
//
// Hampel is the most robust of the three for PV data, since the local
// median tracks the diurnal profile while global detectors see the
// morning and evening ramps as spread.
package outliers
