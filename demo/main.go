// Package main demonstrates PV time-series quality analysis on synthetic
// data: daytime classification of an irradiance signal and outlier
// detection in normalized AC power.
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/gopvquality/daytime"
	"github.com/sartorproj/gopvquality/gaps"
	"github.com/sartorproj/gopvquality/outliers"
	"github.com/sartorproj/gopvquality/timeseries"
)

func main() {
	ghi := syntheticGHI(5, 15*time.Minute)

	fmt.Println("=== Daytime classification ===")
	runDaytime("clear sky", ghi)
	runDaytime("clipped at 600 W/m^2", ghi.ClipMax(600))
	runDaytime("overcast (x0.5)", ghi.Scale(0.5))

	fmt.Println("\n=== Outlier detection ===")
	runOutliers(syntheticPower(3, 5*time.Minute))
}

func runDaytime(label string, series *timeseries.Series) {
	mask, err := daytime.Diff(series)
	if err != nil {
		fmt.Printf("  %-22s error: %v\n", label, err)
		return
	}
	fmt.Printf("  %-22s %d of %d samples classified as day (%.1f%%)\n",
		label, mask.CountTrue(), mask.Len(),
		100*float64(mask.CountTrue())/float64(mask.Len()))
}

func runOutliers(power *timeseries.Series) {
	// inject spikes into the normalized power signal
	injected := []int{100, 250, 400, 550}
	for _, i := range injected {
		power.Values[i] += 0.5
	}

	hampel, err := outliers.Hampel(power, 10)
	if err != nil {
		fmt.Println("  hampel error:", err)
		return
	}
	zscore, _ := outliers.ZScore(power, 3)
	tukey, _ := outliers.Tukey(power)
	stale, _ := gaps.Stale(power, 6, 1e-9)

	fmt.Printf("  injected spikes: %d\n", len(injected))
	fmt.Printf("  hampel(window=10): %d flagged\n", hampel.CountTrue())
	fmt.Printf("  zscore(3):         %d flagged\n", zscore.CountTrue())
	fmt.Printf("  tukey fences:      %d flagged\n", tukey.CountTrue())
	fmt.Printf("  stale runs:        %d flagged\n", stale.CountTrue())

	hit := 0
	for _, i := range injected {
		if hampel.Values[i] {
			hit++
		}
	}
	fmt.Printf("  hampel found %d of %d injected spikes\n", hit, len(injected))
}

// syntheticGHI builds days of a clear-sky-like irradiance curve peaking
// near 900 W/m^2, zero at night.
func syntheticGHI(days int, step time.Duration) *timeseries.Series {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	n := int(time.Duration(days) * 24 * time.Hour / step)

	timestamps := make([]time.Time, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * step)
		timestamps[i] = ts
		h := float64(ts.Hour()) + float64(ts.Minute())/60
		values[i] = 900 * math.Max(0, math.Sin(math.Pi*(h-6)/12))
	}

	s, err := timeseries.NewWithTimestamps(timestamps, values)
	if err != nil {
		panic(err)
	}
	s.Name = "ghi"
	return s
}

// syntheticPower builds a normalized AC power signal (0-1 scale).
func syntheticPower(days int, step time.Duration) *timeseries.Series {
	ghi := syntheticGHI(days, step)
	power := ghi.Scale(1.0 / 900.0)
	power.Name = "ac_power_normalized"
	return power
}
