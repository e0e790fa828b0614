// Package analysis aggregates per-day dispatch results across a whole run.
package analysis

import (
	"solar-dispatch/internal/model"
)

// SimulatedDay pairs a calendar date with its dispatch result.
type SimulatedDay struct {
	Date   string
	Result *model.DayResult
}

// DaySummary is one row of the cross-day results table.
type DaySummary struct {
	Date                string  `json:"date"`
	ProducedMWh         float64 `json:"produced_mwh"`
	DeliveredMWh        float64 `json:"delivered_mwh"`
	TotalRevenue        float64 `json:"total_revenue"`
	DirectSaleEnergyMWh float64 `json:"direct_sale_energy_mwh"`
	BatterySoldMWh      float64 `json:"battery_sold_mwh"`
	DirectSaleRevenue   float64 `json:"direct_sale_revenue"`
	BatteryRevenue      float64 `json:"battery_revenue"`
	AvgDischargePrice   float64 `json:"avg_discharge_price"`
}

// Totals aggregates a whole run.
type Totals struct {
	ProducedMWh       float64 `json:"produced_mwh"`
	DeliveredMWh      float64 `json:"delivered_mwh"`
	TotalRevenue      float64 `json:"total_revenue"`
	DirectSaleRevenue float64 `json:"direct_sale_revenue"`
	BatteryRevenue    float64 `json:"battery_revenue"`
	// UtilizationPct is delivered energy as a percentage of produced energy;
	// the gap is round-trip conversion loss.
	UtilizationPct float64 `json:"utilization_pct"`
	// BatterySharePct is the battery's share of total revenue, percent.
	BatterySharePct float64 `json:"battery_share_pct"`
}

// HourHistogram counts events per hour of day [0,23].
type HourHistogram map[int]int

// RunSummary is the cross-day view of a simulation run.
type RunSummary struct {
	Days   []DaySummary `json:"days"`
	Totals Totals       `json:"totals"`

	// FirstChargeHours counts, per hour, the days whose first battery charge
	// fell in that hour.
	FirstChargeHours HourHistogram `json:"first_charge_hours"`
	// DischargeHours counts battery discharge intervals per hour.
	DischargeHours HourHistogram `json:"discharge_hours"`
	// DirectSaleHours counts direct-sale intervals per hour.
	DirectSaleHours HourHistogram `json:"direct_sale_hours"`
}

// Summarize tabulates a run's simulated days. Days are expected in date order;
// rows come out in the same order.
func Summarize(days []SimulatedDay) RunSummary {
	s := RunSummary{
		Days:             make([]DaySummary, 0, len(days)),
		FirstChargeHours: make(HourHistogram),
		DischargeHours:   make(HourHistogram),
		DirectSaleHours:  make(HourHistogram),
	}

	for _, d := range days {
		r := d.Result
		s.Days = append(s.Days, DaySummary{
			Date:                d.Date,
			ProducedMWh:         r.TotalProducedMWh,
			DeliveredMWh:        r.TotalDeliveredMWh,
			TotalRevenue:        r.TotalRevenue,
			DirectSaleEnergyMWh: r.DirectSaleEnergyMWh,
			BatterySoldMWh:      r.BatterySoldMWh,
			DirectSaleRevenue:   r.DirectSaleRevenue,
			BatteryRevenue:      r.BatteryRevenue,
			AvgDischargePrice:   r.AvgDischargePrice,
		})

		s.Totals.ProducedMWh += r.TotalProducedMWh
		s.Totals.DeliveredMWh += r.TotalDeliveredMWh
		s.Totals.TotalRevenue += r.TotalRevenue
		s.Totals.DirectSaleRevenue += r.DirectSaleRevenue
		s.Totals.BatteryRevenue += r.BatteryRevenue

		if r.BatteryChargedMWh > 0 && len(r.ChargeIntervals) > 0 {
			s.FirstChargeHours[model.IntervalHour(r.ChargeIntervals[0])]++
		}
		for _, iv := range r.DischargeIntervals {
			s.DischargeHours[model.IntervalHour(iv)]++
		}
		for _, a := range r.Actions {
			if a.Kind == model.ActionDirectSale {
				s.DirectSaleHours[model.IntervalHour(a.Interval)]++
			}
		}
	}

	if s.Totals.ProducedMWh > 0 {
		s.Totals.UtilizationPct = s.Totals.DeliveredMWh / s.Totals.ProducedMWh * 100
	}
	if s.Totals.TotalRevenue > 0 {
		s.Totals.BatterySharePct = s.Totals.BatteryRevenue / s.Totals.TotalRevenue * 100
	}

	return s
}
