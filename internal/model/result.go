package model

// DayResult is the full dispatch trace and settlement for one simulated day.
// It is created once per day and not mutated afterwards; days are independent,
// so callers may simulate many days concurrently.
type DayResult struct {
	TotalProducedMWh  float64 `json:"total_produced_mwh"`
	TotalDeliveredMWh float64 `json:"total_delivered_mwh"`

	DirectSaleEnergyMWh float64 `json:"direct_sale_energy_mwh"`
	DirectSaleRevenue   float64 `json:"direct_sale_revenue"`

	BatteryChargedMWh float64 `json:"battery_charged_mwh"`
	BatterySoldMWh    float64 `json:"battery_sold_mwh"`
	BatteryRevenue    float64 `json:"battery_revenue"`
	// AvgDischargePrice is the arithmetic mean of the prices at the intervals
	// actually used for discharge; 0 when the battery never discharged.
	AvgDischargePrice float64 `json:"avg_discharge_price"`

	TotalRevenue float64 `json:"total_revenue"`
	FinalSoCMWh  float64 `json:"final_soc_mwh"`

	ChargeIntervals    []int `json:"charge_intervals,omitempty"`
	DischargeIntervals []int `json:"discharge_intervals,omitempty"`

	Actions []Action `json:"actions"`
	// SoCTrace has IntervalsPerDay+1 entries: index 0 is start of day (always
	// 0), index i+1 the state of charge after interval i. Discharges are
	// applied in price order, so between two discharge intervals the trace is
	// last-write-wins rather than a strict chronological history.
	SoCTrace []float64 `json:"soc_trace"`
	// SolarPowerMW is the modeled generation level per interval, MW.
	SolarPowerMW []float64  `json:"solar_power_mw"`
	Prices       PriceCurve `json:"prices"`
}
