package model

import "fmt"

// One simulated calendar day has a fixed shape: 96 quarter-hour settlement
// intervals fed by 24 hourly sunshine readings.
const (
	IntervalsPerDay = 96
	HoursPerDay     = 24
	IntervalHours   = 0.25
)

// DateLayout is the canonical key for a simulated calendar day.
const DateLayout = "2006-01-02"

// IntervalHour returns the hour of day [0,23] that an interval belongs to.
func IntervalHour(interval int) int {
	return interval / 4
}

// PriceCurve is one day of day-ahead prices in EUR/MWh, index-aligned to
// quarter-hour intervals.
type PriceCurve []float64

func (p PriceCurve) Validate() error {
	if len(p) != IntervalsPerDay {
		return fmt.Errorf("price curve has %d points, want %d", len(p), IntervalsPerDay)
	}
	return nil
}

// SunshineDay is one day of hourly sunshine durations, in seconds of sunshine
// within each hour (0..3600).
type SunshineDay []float64

func (s SunshineDay) Validate() error {
	if len(s) != HoursPerDay {
		return fmt.Errorf("sunshine series has %d points, want %d", len(s), HoursPerDay)
	}
	return nil
}
