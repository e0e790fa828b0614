package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/model"
)

func TestIntervalClock(t *testing.T) {
	assert.Equal(t, "00:00", IntervalClock(0))
	assert.Equal(t, "00:45", IntervalClock(3))
	assert.Equal(t, "12:00", IntervalClock(48))
	assert.Equal(t, "23:45", IntervalClock(95))
}

func TestWriteSummaryCSV(t *testing.T) {
	summary := analysis.RunSummary{
		Days: []analysis.DaySummary{
			{
				Date:                "2024-06-01",
				ProducedMWh:         10.1234,
				DeliveredMWh:        9.5,
				TotalRevenue:        520.456,
				DirectSaleEnergyMWh: 8,
				BatterySoldMWh:      1.5,
				DirectSaleRevenue:   400,
				BatteryRevenue:      120.456,
				AvgDischargePrice:   110.5,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummaryCSV(path, summary))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "date", rows[0][0])
	assert.Equal(t, "2024-06-01", rows[1][0])
	assert.Equal(t, "10.123", rows[1][1])
	assert.Equal(t, "520.46", rows[1][3])
}

func TestWriteActionsCSV(t *testing.T) {
	res := &model.DayResult{
		Actions: []model.Action{
			{Interval: 36, Kind: model.ActionCharge, EnergyMWh: 0.25, Price: 42.5, SoCMWh: 0.25},
			{Interval: 36, Kind: model.ActionDirectSale, EnergyMWh: 0.1, Price: 42.5, SoCMWh: 0.25},
			{Interval: 72, Kind: model.ActionDischarge, EnergyMWh: 0.25, Price: 140, SoCMWh: 0},
		},
	}

	path := filepath.Join(t.TempDir(), "2024-06-01.csv")
	require.NoError(t, WriteActionsCSV(path, res))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"interval", "time", "action", "energy_mwh", "price", "soc_mwh"}, rows[0])
	assert.Equal(t, "09:00", rows[1][1])
	assert.Equal(t, "CHARGE", rows[1][2])
	assert.Equal(t, "DISCHARGE", rows[3][2])
	assert.Equal(t, "18:00", rows[3][1])
}
