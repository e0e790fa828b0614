// Package solar models the PV side of the plant: converting sunshine-duration
// readings into quarter-hour generation energy.
package solar

import "solar-dispatch/internal/model"

const secondsPerHour = 3600.0

// Produce converts seconds of sunshine within a quarter-hour interval into
// generated energy in MWh, for a plant with the given installed capacity.
// Hourly-resolution inputs hold a whole hour's seconds (up to 3600) across
// each of the hour's four intervals, so values above 900 are expected and
// scale the same way. Values <= 0 yield 0.
func Produce(installedMW, sunshineSeconds float64) float64 {
	if sunshineSeconds <= 0 {
		return 0
	}
	sunFactor := sunshineSeconds / secondsPerHour
	powerMW := installedMW * sunFactor
	return powerMW * model.IntervalHours
}

// ExpandHourly upsamples a 24-point hourly sunshine series to quarter-hour
// resolution by holding each hourly value across its four child intervals.
func ExpandHourly(sunshine model.SunshineDay) []float64 {
	out := make([]float64, 0, model.IntervalsPerDay)
	for _, s := range sunshine {
		out = append(out, s, s, s, s)
	}
	if len(out) > model.IntervalsPerDay {
		out = out[:model.IntervalsPerDay]
	}
	return out
}

// EnergySeries expands an hourly sunshine day and converts every interval to
// generated energy, MWh.
func EnergySeries(installedMW float64, sunshine model.SunshineDay) []float64 {
	expanded := ExpandHourly(sunshine)
	out := make([]float64, len(expanded))
	for i, s := range expanded {
		out[i] = Produce(installedMW, s)
	}
	return out
}
