package models

// SimulateRequest is the request body for running a simulation over raw
// price and sunshine exports.
type SimulateRequest struct {
	// PriceData is the raw day-ahead price export text.
	PriceData string `json:"price_data" binding:"required"`
	// SunshineData is the raw hourly irradiance export text.
	SunshineData string `json:"sunshine_data" binding:"required"`
	// Plant overrides the default reference plant; zero fields keep defaults.
	Plant   PlantConfig     `json:"plant"`
	Options SimulateOptions `json:"options"`
}

// PlantConfig defines plant parameters in API requests.
type PlantConfig struct {
	Name                string  `json:"name,omitempty"`
	CapacityMWh         float64 `json:"capacity_mwh"`
	PowerMW             float64 `json:"power_mw"`
	ChargeEfficiency    float64 `json:"charge_efficiency"`
	DischargeEfficiency float64 `json:"discharge_efficiency"`
	InstalledSolarMW    float64 `json:"installed_solar_mw"`
	MinSellHour         int     `json:"min_sell_hour"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	// IncludeDays returns the full per-day dispatch traces inline instead of
	// requiring a follow-up drill-down request.
	IncludeDays bool `json:"include_days,omitempty"`
}
