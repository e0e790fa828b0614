package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsEfficiencies(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
plant:
  capacity_mwh: 2
  power_mw: 1.5
  installed_solar_mw: 3
  min_sell_hour: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, cfg.Plant.CapacityMWh, 1e-9)
	assert.InDelta(t, 0.95, cfg.Plant.ChargeEfficiency, 1e-9)
	assert.InDelta(t, 0.95, cfg.Plant.DischargeEfficiency, 1e-9)
	assert.Equal(t, 8, cfg.Plant.MinSellHour)
	assert.NoError(t, cfg.Plant.ToModelConfig().Validate())
}

func TestLoad_PlantFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plant.yaml", `
plant:
  name: reference
  capacity_mwh: 1
  power_mw: 1
  charge_efficiency: 0.9
  discharge_efficiency: 0.9
  installed_solar_mw: 1
`)
	path := writeFile(t, dir, "config.yaml", `
plant_file: plant.yaml
plant:
  capacity_mwh: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Override wins for capacity, base file supplies the rest.
	assert.InDelta(t, 4.0, cfg.Plant.CapacityMWh, 1e-9)
	assert.InDelta(t, 0.9, cfg.Plant.ChargeEfficiency, 1e-9)
	assert.Equal(t, "reference", cfg.Plant.Name)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
plant:
  capacity_mwh: -1
  power_mw: 1
  installed_solar_mw: 1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPlant(t *testing.T) {
	assert.NoError(t, DefaultPlant().ToModelConfig().Validate())
}

func TestMergePlant_ZeroFieldsKeepBase(t *testing.T) {
	base := DefaultPlant()
	base.MinSellHour = 6

	merged := MergePlant(base, PlantConfig{PowerMW: 2})
	assert.InDelta(t, 2.0, merged.PowerMW, 1e-9)
	assert.InDelta(t, base.CapacityMWh, merged.CapacityMWh, 1e-9)
	assert.Equal(t, 6, merged.MinSellHour)
}
