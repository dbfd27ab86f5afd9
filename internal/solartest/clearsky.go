// Package solartest generates synthetic clear-sky irradiance series for
// tests. It stands in for the external solar-position model: solar
// declination and hour angle give the solar zenith, and the Haurwitz
// clear-sky model turns it into GHI. Night samples are exactly zero, which
// the daytime classifier tests rely on.
package solartest

import (
	"math"
	"time"

	"github.com/sartorproj/gopvquality/timeseries"
)

const deg = math.Pi / 180

// GHI returns clear-sky global horizontal irradiance (W/m^2) for each
// timestamp at the given latitude and longitude (degrees, east positive).
func GHI(timestamps []time.Time, lat, lon float64) []float64 {
	out := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		out[i] = ghiAt(ts, lat, lon)
	}
	return out
}

func ghiAt(ts time.Time, lat, lon float64) float64 {
	utc := ts.UTC()
	doy := float64(utc.YearDay())
	hour := float64(utc.Hour()) +
		float64(utc.Minute())/60 +
		float64(utc.Second())/3600

	// Solar declination (Cooper) and hour angle from apparent solar time.
	decl := 23.45 * deg * math.Sin(2*math.Pi*(284+doy)/365)
	solarHour := hour + lon/15
	hourAngle := 15 * (solarHour - 12) * deg

	cosZenith := math.Sin(lat*deg)*math.Sin(decl) +
		math.Cos(lat*deg)*math.Cos(decl)*math.Cos(hourAngle)
	if cosZenith <= 0 {
		return 0
	}
	// Haurwitz clear-sky model.
	return 1098 * cosZenith * math.Exp(-0.059/cosZenith)
}

// Range returns timestamps from start to end inclusive at the given step.
func Range(start, end time.Time, step time.Duration) []time.Time {
	var out []time.Time
	for t := start; !t.After(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}

// Series builds a clear-sky GHI series over [start, end] at the given step.
func Series(start, end time.Time, step time.Duration, lat, lon float64) *timeseries.Series {
	timestamps := Range(start, end, step)
	s, err := timeseries.NewWithTimestamps(timestamps, GHI(timestamps, lat, lon))
	if err != nil {
		// Range always produces strictly increasing timestamps.
		panic(err)
	}
	s.Name = "ghi"
	return s
}
