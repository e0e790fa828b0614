package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-dispatch/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load plant parameters from a separate YAML file.
	// If both PlantFile and Plant are provided, Plant overrides PlantFile.
	PlantFile string      `yaml:"plant_file"`
	Plant     PlantConfig `yaml:"plant"`
}

// PlantConfig mirrors model.PlantConfig for YAML files.
type PlantConfig struct {
	Name                string  `yaml:"name"`
	CapacityMWh         float64 `yaml:"capacity_mwh"`
	PowerMW             float64 `yaml:"power_mw"`
	ChargeEfficiency    float64 `yaml:"charge_efficiency"`
	DischargeEfficiency float64 `yaml:"discharge_efficiency"`
	InstalledSolarMW    float64 `yaml:"installed_solar_mw"`
	MinSellHour         int     `yaml:"min_sell_hour"`
}

// DefaultPlant is the canonical 1 MW / 1 MWh reference plant.
func DefaultPlant() PlantConfig {
	return PlantConfig{
		CapacityMWh:         1,
		PowerMW:             1,
		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
		InstalledSolarMW:    1,
		MinSellHour:         0,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Omitted efficiencies default to 0.95 to keep configs concise.
	if c.Plant.ChargeEfficiency == 0 {
		c.Plant.ChargeEfficiency = 0.95
	}
	if c.Plant.DischargeEfficiency == 0 {
		c.Plant.DischargeEfficiency = 0.95
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If plant_file is set, load it and merge in any explicit overrides from c.Plant.
	if c.PlantFile != "" {
		plantPath := c.PlantFile
		if !filepath.IsAbs(plantPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), plantPath)
			if _, err := os.Stat(cand); err == nil {
				plantPath = cand
			}
		}
		loaded, err := loadPlantFile(plantPath)
		if err != nil {
			return nil, err
		}
		c.Plant = MergePlant(loaded, c.Plant)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Plant.ToModelConfig().Validate(); err != nil {
		return fmt.Errorf("plant config invalid: %w", err)
	}
	return nil
}

func (p PlantConfig) ToModelConfig() model.PlantConfig {
	return model.PlantConfig{
		CapacityMWh:         p.CapacityMWh,
		PowerMW:             p.PowerMW,
		ChargeEfficiency:    p.ChargeEfficiency,
		DischargeEfficiency: p.DischargeEfficiency,
		InstalledSolarMW:    p.InstalledSolarMW,
		MinSellHour:         p.MinSellHour,
	}
}

type plantFileWrapper struct {
	Plant PlantConfig `yaml:"plant"`
}

func loadPlantFile(path string) (PlantConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlantConfig{}, err
	}
	var w plantFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PlantConfig{}, err
	}
	return w.Plant, nil
}

// MergePlant overlays non-zero fields from override onto base.
// This is used when loading a plant file and then applying overrides from the
// enclosing config or an API request.
func MergePlant(base, override PlantConfig) PlantConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityMWh != 0 {
		out.CapacityMWh = override.CapacityMWh
	}
	if override.PowerMW != 0 {
		out.PowerMW = override.PowerMW
	}
	if override.ChargeEfficiency != 0 {
		out.ChargeEfficiency = override.ChargeEfficiency
	}
	if override.DischargeEfficiency != 0 {
		out.DischargeEfficiency = override.DischargeEfficiency
	}
	if override.InstalledSolarMW != 0 {
		out.InstalledSolarMW = override.InstalledSolarMW
	}
	// Note: 0 is a valid MinSellHour, so a zero override keeps the base value.
	if override.MinSellHour != 0 {
		out.MinSellHour = override.MinSellHour
	}
	return out
}
