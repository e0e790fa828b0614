package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-dispatch/internal/model"
)

func sampleDays() []SimulatedDay {
	return []SimulatedDay{
		{
			Date: "2024-06-01",
			Result: &model.DayResult{
				TotalProducedMWh:    10,
				TotalDeliveredMWh:   9,
				DirectSaleEnergyMWh: 8,
				DirectSaleRevenue:   400,
				BatteryChargedMWh:   1.05,
				BatterySoldMWh:      1,
				BatteryRevenue:      120,
				TotalRevenue:        520,
				ChargeIntervals:     []int{36, 37},
				DischargeIntervals:  []int{72, 73},
				Actions: []model.Action{
					{Interval: 36, Kind: model.ActionCharge, EnergyMWh: 0.5},
					{Interval: 36, Kind: model.ActionDirectSale, EnergyMWh: 0.2},
					{Interval: 40, Kind: model.ActionDirectSale, EnergyMWh: 0.3},
				},
			},
		},
		{
			Date: "2024-06-02",
			Result: &model.DayResult{
				TotalProducedMWh:  5,
				TotalDeliveredMWh: 5,
				// Sunny day with a full battery from the start of generation:
				// everything sold directly.
				DirectSaleEnergyMWh: 5,
				DirectSaleRevenue:   250,
				TotalRevenue:        250,
				Actions: []model.Action{
					{Interval: 44, Kind: model.ActionDirectSale, EnergyMWh: 5},
				},
			},
		},
	}
}

func TestSummarize_Rows(t *testing.T) {
	s := Summarize(sampleDays())

	require.Len(t, s.Days, 2)
	assert.Equal(t, "2024-06-01", s.Days[0].Date)
	assert.InDelta(t, 10.0, s.Days[0].ProducedMWh, 1e-9)
	assert.InDelta(t, 520.0, s.Days[0].TotalRevenue, 1e-9)
	assert.Equal(t, "2024-06-02", s.Days[1].Date)
	assert.Zero(t, s.Days[1].BatterySoldMWh)
}

func TestSummarize_Totals(t *testing.T) {
	s := Summarize(sampleDays())

	assert.InDelta(t, 15.0, s.Totals.ProducedMWh, 1e-9)
	assert.InDelta(t, 14.0, s.Totals.DeliveredMWh, 1e-9)
	assert.InDelta(t, 770.0, s.Totals.TotalRevenue, 1e-9)
	assert.InDelta(t, 14.0/15.0*100, s.Totals.UtilizationPct, 1e-9)
	assert.InDelta(t, 120.0/770.0*100, s.Totals.BatterySharePct, 1e-9)
}

func TestSummarize_Histograms(t *testing.T) {
	s := Summarize(sampleDays())

	// Day 1's first charge was interval 36 → hour 9; day 2 never charged.
	assert.Equal(t, HourHistogram{9: 1}, s.FirstChargeHours)
	// Discharges at intervals 72, 73 → both hour 18.
	assert.Equal(t, HourHistogram{18: 2}, s.DischargeHours)
	// Direct sales at intervals 36, 40 (hours 9, 10) and 44 (hour 11).
	assert.Equal(t, HourHistogram{9: 1, 10: 1, 11: 1}, s.DirectSaleHours)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Days)
	assert.Zero(t, s.Totals.UtilizationPct)
	assert.Zero(t, s.Totals.BatterySharePct)
}
