// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing measured PV
// sensor data (irradiance, power) and the Mask type for boolean results
// aligned with a series, along with CSV loading helpers.
//
// # Creating a Series
//
// Create a time series with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// Timestamps must be strictly increasing and match the values in length;
// violations are reported as input-shape errors. For quick experiments a
// synthetic hourly index is available:
//
//	series := timeseries.New([]float64{100, 102, 105, 103})
//
// # Masks
//
// Quality and feature routines return a Mask: one boolean per input
// sample, carrying the same timestamps as the input. Masks combine
// explicitly and alignment is checked first:
//
//	both, err := dayMask.And(outlierMask.Not())
//	n := both.CountTrue()
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "value_normalized"
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// Labeled fixture files with a boolean column load into a series plus an
// aligned mask:
//
//	opts.LabelColumn = "outlier"
//	series, labels, err := timeseries.LoadLabeledCSV("data.csv", opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	q98 := series.Quantile(0.98)
//
// # Transformations
//
// Transform the time series (every operation returns a new series):
//
//	diff := series.Diff()          // First difference
//	subset := series.Slice(10, 50) // Half-open index range
//	overcast := series.Scale(0.5)  // Scaled copy
//	clipped := series.ClipMax(500) // Ceiling-capped copy
package timeseries
