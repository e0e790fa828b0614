// Package dispatch implements the per-day dispatch simulation: deciding,
// interval by interval, how much solar energy charges the battery versus is
// sold directly, and which later intervals discharge the battery to the grid.
package dispatch

import (
	"sort"

	"solar-dispatch/internal/model"
	"solar-dispatch/internal/solar"
)

// SimulateDay runs the dispatch policy for one calendar day against a known
// 96-point price curve and 24-point hourly sunshine series. The battery
// starts empty; days are independent.
//
// The policy is charge-first, greedy and myopic: solar energy charges the
// battery whenever there is headroom, the surplus is sold at the interval
// price, and after the last charge the stored energy is sold into the
// highest-priced remaining intervals.
func SimulateDay(prices model.PriceCurve, sunshine model.SunshineDay, cfg model.PlantConfig) (*model.DayResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	if err := sunshine.Validate(); err != nil {
		return nil, err
	}

	b := newDayRun(prices, sunshine, cfg)
	b.chargePass()
	b.dischargePass()
	return b.finish(), nil
}

// dayRun threads all per-day accumulation through the two passes, so a
// simulation never touches state shared between days.
type dayRun struct {
	cfg    model.PlantConfig
	prices model.PriceCurve

	solarEnergy []float64

	soc       float64
	remaining float64

	res *model.DayResult
}

func newDayRun(prices model.PriceCurve, sunshine model.SunshineDay, cfg model.PlantConfig) *dayRun {
	energy := solar.EnergySeries(cfg.InstalledSolarMW, sunshine)

	res := &model.DayResult{
		SoCTrace:     make([]float64, 1, model.IntervalsPerDay+1),
		SolarPowerMW: make([]float64, len(energy)),
		Prices:       prices,
	}
	for i, e := range energy {
		if e > 0 {
			res.SolarPowerMW[i] = e / model.IntervalHours
		}
		res.TotalProducedMWh += e
	}

	return &dayRun{
		cfg:         cfg,
		prices:      prices,
		solarEnergy: energy,
		res:         res,
	}
}

// chargePass walks the day chronologically. Each interval's solar energy is
// stored up to the power limit and remaining headroom; whatever the battery
// does not absorb is sold at that interval's price.
func (b *dayRun) chargePass() {
	maxCharge := b.cfg.MaxIntervalEnergyMWh()

	for i := 0; i < model.IntervalsPerDay; i++ {
		solarMWh := b.solarEnergy[i]

		switch {
		case solarMWh > 0 && b.soc < b.cfg.CapacityMWh:
			space := b.cfg.CapacityMWh - b.soc
			charge := min3(solarMWh*b.cfg.ChargeEfficiency, maxCharge, space)

			if charge > 0 {
				b.soc += charge
				b.res.BatteryChargedMWh += charge
				b.res.ChargeIntervals = append(b.res.ChargeIntervals, i)
				b.res.Actions = append(b.res.Actions, model.Action{
					Interval:  i,
					Kind:      model.ActionCharge,
					EnergyMWh: charge,
					Price:     b.prices[i],
					SoCMWh:    b.soc,
				})

				// The pre-loss solar quantity not absorbed by the charge.
				remainingSolar := solarMWh - charge/b.cfg.ChargeEfficiency
				if remainingSolar > 0 {
					b.directSale(i, remainingSolar)
				}
			} else {
				b.directSale(i, solarMWh)
			}
		case solarMWh > 0:
			// Battery full.
			b.directSale(i, solarMWh)
		}

		b.res.SoCTrace = append(b.res.SoCTrace, b.soc)
	}
}

func (b *dayRun) directSale(interval int, energyMWh float64) {
	b.res.DirectSaleRevenue += energyMWh * b.prices[interval]
	b.res.DirectSaleEnergyMWh += energyMWh
	b.res.Actions = append(b.res.Actions, model.Action{
		Interval:  interval,
		Kind:      model.ActionDirectSale,
		EnergyMWh: energyMWh,
		Price:     b.prices[interval],
		SoCMWh:    b.soc,
	})
}

// dischargePass sells the stored energy into the highest-priced intervals
// after the last charge, no earlier than MinSellHour, at positive prices.
// Equal prices keep ascending interval order (stable sort), so the earliest
// interval among ties discharges first.
func (b *dayRun) dischargePass() {
	b.remaining = b.soc
	if len(b.res.ChargeIntervals) == 0 || b.soc <= 0 {
		return
	}
	lastCharge := b.res.ChargeIntervals[len(b.res.ChargeIntervals)-1]

	type candidate struct {
		interval int
		price    float64
	}
	var candidates []candidate
	for j := lastCharge + 1; j < model.IntervalsPerDay; j++ {
		if model.IntervalHour(j) >= b.cfg.MinSellHour && b.prices[j] > 0 {
			candidates = append(candidates, candidate{interval: j, price: b.prices[j]})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].price > candidates[j].price
	})

	maxDischarge := b.cfg.MaxIntervalEnergyMWh()
	priceSum := 0.0
	used := 0

	for _, c := range candidates {
		if b.remaining <= 0 {
			break
		}
		sellAmount := b.remaining
		if sellAmount > maxDischarge {
			sellAmount = maxDischarge
		}
		if sellAmount <= 0 {
			continue
		}

		delivered := sellAmount * b.cfg.DischargeEfficiency
		b.res.BatteryRevenue += delivered * c.price
		b.res.BatterySoldMWh += delivered
		b.remaining -= sellAmount

		b.res.DischargeIntervals = append(b.res.DischargeIntervals, c.interval)
		b.res.Actions = append(b.res.Actions, model.Action{
			Interval:  c.interval,
			Kind:      model.ActionDischarge,
			EnergyMWh: sellAmount,
			Price:     c.price,
			SoCMWh:    b.remaining,
		})

		// The trace is overwritten forward from each discharge as it is
		// processed. Discharges run in price order, so overlapping overwrites
		// are last-write-wins, not a chronological history.
		for k := c.interval + 1; k < len(b.res.SoCTrace); k++ {
			b.res.SoCTrace[k] = b.remaining
		}

		priceSum += c.price
		used++
	}

	if used > 0 {
		b.res.AvgDischargePrice = priceSum / float64(used)
	}
}

func (b *dayRun) finish() *model.DayResult {
	b.res.TotalDeliveredMWh = b.res.DirectSaleEnergyMWh + b.res.BatterySoldMWh
	b.res.TotalRevenue = b.res.DirectSaleRevenue + b.res.BatteryRevenue
	b.res.FinalSoCMWh = b.remaining
	return b.res
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
