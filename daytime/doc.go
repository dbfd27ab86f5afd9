// Package daytime provides day/night classification for irradiance and
// power time series.
//
// The classifier consumes a series spanning at least one diurnal cycle and
// returns a mask that is true for samples in the illuminated period:
//
//	mask, err := daytime.Diff(ghi)
//
// It is built for real PV sensor data rather than clean reference signals:
//
//   - Clipping plateaus (the signal flat-lining at a sensor or inverter
//     ceiling) stay classified as day; no clipping mask is needed.
//   - Overcast days, where the whole profile is scaled down to 50-60% of
//     normal, classify the same as clear days.
//   - Zero excursions of an hour or two in the middle of a day (data gaps,
//     tracker faults) do not split the day; the mask stays true through
//     them.
//   - Days that span two calendar dates and daylight-saving transitions
//     need no special handling because the classifier never looks at the
//     calendar, only at timestamp differences.
//
// Thresholds and smoothing windows are expressed in normalized units and
// durations, so minute-level, 15-minute, and hourly data classify alike:
//
//	opts := daytime.DefaultOptions()
//	opts.GapClose = 2 * time.Hour
//	mask, err := daytime.DiffWithOptions(ghi, opts)
//
// Near sunrise and sunset there is a small shoulder band (a few W/m^2 on a
// GHI scale) where the classification boundary may lag the true
// zero-crossing; callers needing exact solar geometry should use a solar
// position model instead.
package daytime
