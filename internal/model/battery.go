package model

import "errors"

// PlantConfig defines the physical parameters of a co-located solar-plus-storage
// plant. The battery charges exclusively from the plant's own solar generation.
// Units:
// - CapacityMWh: MWh
// - PowerMW: MW (symmetric charge/discharge limit)
// - Efficiencies: 0..1
// - InstalledSolarMW: MW at full sun
// - MinSellHour: hour of day [0,23]; the battery may not discharge before it
type PlantConfig struct {
	CapacityMWh         float64
	PowerMW             float64
	ChargeEfficiency    float64
	DischargeEfficiency float64
	InstalledSolarMW    float64
	MinSellHour         int
}

func (c PlantConfig) Validate() error {
	if c.CapacityMWh <= 0 {
		return errors.New("CapacityMWh must be > 0")
	}
	if c.PowerMW <= 0 {
		return errors.New("PowerMW must be > 0")
	}
	if c.ChargeEfficiency <= 0 || c.ChargeEfficiency > 1 {
		return errors.New("ChargeEfficiency must be in (0, 1]")
	}
	if c.DischargeEfficiency <= 0 || c.DischargeEfficiency > 1 {
		return errors.New("DischargeEfficiency must be in (0, 1]")
	}
	if c.InstalledSolarMW <= 0 {
		return errors.New("InstalledSolarMW must be > 0")
	}
	if c.MinSellHour < 0 || c.MinSellHour > 23 {
		return errors.New("MinSellHour must be in [0, 23]")
	}
	return nil
}

// MaxIntervalEnergyMWh is the most energy the battery can move in one
// quarter-hour interval, in either direction.
func (c PlantConfig) MaxIntervalEnergyMWh() float64 {
	return c.PowerMW * IntervalHours
}

// RoundTripEfficiency is the fraction of stored energy that survives a full
// charge/discharge cycle.
func (c PlantConfig) RoundTripEfficiency() float64 {
	return c.ChargeEfficiency * c.DischargeEfficiency
}
