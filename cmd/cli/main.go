package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/config"
	"solar-dispatch/internal/data"
	"solar-dispatch/internal/dispatch"
	"solar-dispatch/internal/model"
	"solar-dispatch/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "summary":
		cmdSummary(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --prices cijene.txt --solar solarni_podaci.csv --config plant.yaml --out results")
	fmt.Println("  cli summary --prices cijene.txt --solar solarni_podaci.csv --config plant.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes a cross-day summary CSV plus one action ledger CSV per day")
	fmt.Println("  - summary prints the daily results table and fleet totals")
	fmt.Println("  - without --config the 1 MW / 1 MWh reference plant is used")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	pricePath := fs.String("prices", "cijene.txt", "Path to day-ahead price export")
	solarPath := fs.String("solar", "solarni_podaci.csv", "Path to hourly irradiance export")
	cfgPath := fs.String("config", "", "Path to YAML plant config (optional)")
	outDir := fs.String("out", "results", "Output directory")
	_ = fs.Parse(args)

	cfg := loadPlant(*cfgPath)
	sims := simulateAll(*pricePath, *solarPath, cfg)
	summary := analysis.Summarize(sims)

	dayDir := filepath.Join(*outDir, "days")
	if err := os.MkdirAll(dayDir, 0o755); err != nil {
		panic(err)
	}

	summaryPath := filepath.Join(*outDir, "summary.csv")
	if err := report.WriteSummaryCSV(summaryPath, summary); err != nil {
		panic(err)
	}
	for _, sim := range sims {
		if err := report.WriteActionsCSV(filepath.Join(dayDir, sim.Date+".csv"), sim.Result); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Wrote %d day ledgers and %s\n", len(sims), summaryPath)
	printTotals(summary.Totals)
}

func cmdSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	pricePath := fs.String("prices", "cijene.txt", "Path to day-ahead price export")
	solarPath := fs.String("solar", "solarni_podaci.csv", "Path to hourly irradiance export")
	cfgPath := fs.String("config", "", "Path to YAML plant config (optional)")
	_ = fs.Parse(args)

	cfg := loadPlant(*cfgPath)
	sims := simulateAll(*pricePath, *solarPath, cfg)
	summary := analysis.Summarize(sims)

	fmt.Printf("%-12s %-10s %-10s %-10s %-10s %-10s %-10s\n",
		"date", "produced", "delivered", "revenue", "direct", "battery", "avg price")
	for _, d := range summary.Days {
		fmt.Printf("%-12s %-10.3f %-10.3f %-10.2f %-10.3f %-10.3f %-10.2f\n",
			d.Date,
			d.ProducedMWh,
			d.DeliveredMWh,
			d.TotalRevenue,
			d.DirectSaleEnergyMWh,
			d.BatterySoldMWh,
			d.AvgDischargePrice,
		)
	}
	fmt.Println("")
	printTotals(summary.Totals)
	printHistogram("first charge hour", summary.FirstChargeHours, "days")
	printHistogram("discharge hours", summary.DischargeHours, "intervals")
	printHistogram("direct sale hours", summary.DirectSaleHours, "intervals")
}

func loadPlant(cfgPath string) model.PlantConfig {
	if cfgPath == "" {
		return config.DefaultPlant().ToModelConfig()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return cfg.Plant.ToModelConfig()
}

func simulateAll(pricePath, solarPath string, cfg model.PlantConfig) []analysis.SimulatedDay {
	days, err := data.LoadDays(pricePath, solarPath)
	if err != nil {
		if errors.Is(err, data.ErrNoCommonDays) {
			fmt.Println("No days present in both inputs; nothing to simulate.")
			os.Exit(1)
		}
		panic(err)
	}

	sims := make([]analysis.SimulatedDay, 0, len(days))
	for _, d := range days {
		res, err := dispatch.SimulateDay(d.Prices, d.Sunshine, cfg)
		if err != nil {
			panic(fmt.Errorf("day %s: %w", d.Date, err))
		}
		sims = append(sims, analysis.SimulatedDay{Date: d.Date, Result: res})
	}
	return sims
}

func printTotals(t analysis.Totals) {
	fmt.Printf("Produced=%.2f MWh Delivered=%.2f MWh Revenue=%.2f\n",
		t.ProducedMWh, t.DeliveredMWh, t.TotalRevenue)
	fmt.Printf("Direct revenue=%.2f Battery revenue=%.2f Utilization=%.1f%% Battery share=%.1f%%\n",
		t.DirectSaleRevenue, t.BatteryRevenue, t.UtilizationPct, t.BatterySharePct)
}

func printHistogram(title string, h analysis.HourHistogram, unit string) {
	if len(h) == 0 {
		return
	}
	hours := make([]int, 0, len(h))
	for hour := range h {
		hours = append(hours, hour)
	}
	sort.Ints(hours)
	fmt.Printf("\n%s:\n", title)
	for _, hour := range hours {
		fmt.Printf("  %02d:00  %d %s\n", hour, h[hour], unit)
	}
}
