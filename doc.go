// Package gopvquality provides quality analysis for photovoltaic (PV)
// sensor time series: outlier detection and day/night classification of
// irradiance and power measurements.
//
// GoPVQuality targets the diurnal patterns of PV data specifically. Its
// routines are pure transformations: each consumes a time series and
// produces a boolean mask aligned sample-for-sample with the input,
// without modifying the series. All routines are deterministic and safe
// to call concurrently on independent inputs.
//
// # Features
//
//   - Daytime classification robust to clipping, overcast days, mid-day
//     data gaps, irregular timestamp spacing, and DST transitions
//   - Hampel outlier filter (rolling median + MAD) with an explicit
//     centered/trailing window convention
//   - Tukey-fence and z-score outlier detection
//   - Stale (stuck-sensor) value detection
//   - CSV loading for timestamped and outlier-labeled data files
//
// # Quick Start
//
// Classify day and night in an irradiance series:
//
//	series, _ := timeseries.NewWithTimestamps(timestamps, ghi)
//	day, _ := daytime.Diff(series)
//
// Flag outliers in normalized AC power:
//
//	bad, _ := outliers.Hampel(series, 10)
//
// Combine masks explicitly:
//
//	usable, _ := day.And(bad.Not())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: series and mask containers, CSV utilities
//   - daytime: day/night classification
//   - outliers: Hampel, Tukey, and z-score outlier detection
//   - gaps: stale-value detection
//   - errs: error classification (configuration vs. input shape)
package gopvquality
