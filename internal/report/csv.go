// Package report writes simulation results as CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/model"
)

// WriteSummaryCSV writes the cross-day results table. Semicolon-separated,
// matching the format consumers of the original results expect.
func WriteSummaryCSV(path string, s analysis.RunSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	header := []string{
		"date",
		"produced_mwh",
		"delivered_mwh",
		"total_revenue",
		"direct_sale_mwh",
		"battery_sold_mwh",
		"direct_sale_revenue",
		"battery_revenue",
		"avg_discharge_price",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range s.Days {
		row := []string{
			d.Date,
			fmtEnergy(d.ProducedMWh),
			fmtEnergy(d.DeliveredMWh),
			fmtMoney(d.TotalRevenue),
			fmtEnergy(d.DirectSaleEnergyMWh),
			fmtEnergy(d.BatterySoldMWh),
			fmtMoney(d.DirectSaleRevenue),
			fmtMoney(d.BatteryRevenue),
			fmtMoney(d.AvgDischargePrice),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteActionsCSV writes one day's dispatch ledger in decision order.
func WriteActionsCSV(path string, res *model.DayResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"interval", "time", "action", "energy_mwh", "price", "soc_mwh"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, a := range res.Actions {
		row := []string{
			strconv.Itoa(a.Interval),
			IntervalClock(a.Interval),
			string(a.Kind),
			fmtEnergy(a.EnergyMWh),
			fmtMoney(a.Price),
			fmtEnergy(a.SoCMWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// IntervalClock renders a quarter-hour interval index as HH:MM.
func IntervalClock(interval int) string {
	return fmt.Sprintf("%02d:%02d", interval/4, (interval%4)*15)
}

func fmtEnergy(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
