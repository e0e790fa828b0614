package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-dispatch/internal/model"
)

func TestProduce(t *testing.T) {
	// A full hour of sun at 1 MW installed: 1 MW for a quarter hour.
	assert.InDelta(t, 0.25, Produce(1, 3600), 1e-12)

	// Half sun, scaled installed capacity.
	assert.InDelta(t, 0.25, Produce(2, 1800), 1e-12)

	// A quarter hour's worth of seconds yields a quarter of the hourly value.
	assert.InDelta(t, 0.0625, Produce(1, 900), 1e-12)

	assert.Zero(t, Produce(1, 0))
	assert.Zero(t, Produce(1, -100))
}

func TestExpandHourly(t *testing.T) {
	sunshine := make(model.SunshineDay, model.HoursPerDay)
	for h := range sunshine {
		sunshine[h] = float64(h * 100)
	}

	expanded := ExpandHourly(sunshine)
	require.Len(t, expanded, model.IntervalsPerDay)

	// Each hourly value is held across its four child intervals.
	for i, v := range expanded {
		assert.InDeltaf(t, float64((i/4)*100), v, 1e-12, "interval %d", i)
	}
}

func TestEnergySeries(t *testing.T) {
	sunshine := make(model.SunshineDay, model.HoursPerDay)
	sunshine[12] = 3600
	sunshine[13] = 1800

	energy := EnergySeries(2, sunshine)
	require.Len(t, energy, model.IntervalsPerDay)

	total := 0.0
	for i, e := range energy {
		total += e
		switch i / 4 {
		case 12:
			assert.InDelta(t, 0.5, e, 1e-12)
		case 13:
			assert.InDelta(t, 0.25, e, 1e-12)
		default:
			assert.Zero(t, e)
		}
	}
	assert.InDelta(t, 3.0, total, 1e-12)
}
