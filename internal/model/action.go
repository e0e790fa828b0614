package model

// ActionKind labels one dispatch decision.
// Keep these values stable; they are intended for CSV output.
type ActionKind string

const (
	ActionCharge     ActionKind = "CHARGE"
	ActionDirectSale ActionKind = "DIRECT_SALE"
	ActionDischarge  ActionKind = "DISCHARGE"
)

// Action records one dispatch decision for a quarter-hour interval. Actions
// are appended in decision order: chronological for charges and direct sales,
// price-rank order for discharges.
type Action struct {
	Interval  int        `json:"interval"`
	Kind      ActionKind `json:"kind"`
	EnergyMWh float64    `json:"energy_mwh"`
	// Price is the day-ahead price at the interval. For CHARGE rows it does
	// not settle any revenue; it is recorded for traceability.
	Price float64 `json:"price"`
	// SoCMWh is the battery state of charge immediately after the action.
	SoCMWh float64 `json:"soc_mwh"`
}
