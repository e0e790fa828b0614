// Package data parses the raw day-ahead price and sunshine-duration exports
// and groups them into complete calendar days eligible for simulation.
package data

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"solar-dispatch/internal/model"
)

// Day-ahead exports carry a timezone marker after the interval range and may
// or may not include seconds in the timestamp.
var (
	tzSuffixes       = []string{"(CET)", "(CEST)", "(UTC)", "(GMT)"}
	priceTimeLayouts = []string{"02/01/2006 15:04:05", "02/01/2006 15:04"}
)

// PriceRecord is one parsed day-ahead price point.
type PriceRecord struct {
	Start time.Time
	Price float64
}

// ParsePriceLine parses one line of a day-ahead price export, shaped like
//
//	01/06/2024 00:00 - 01/06/2024 00:15(CET)\t63,17
//
// The price uses a comma decimal separator. Lines that do not parse report
// ok=false and are skipped by the caller.
func ParsePriceLine(line string) (PriceRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, "\t") {
		return PriceRecord{}, false
	}
	parts := strings.Split(line, "\t")
	if len(parts) != 2 {
		return PriceRecord{}, false
	}

	timePart := parts[0]
	for _, tz := range tzSuffixes {
		timePart = strings.ReplaceAll(timePart, tz, "")
	}
	startStr := strings.TrimSpace(strings.Split(strings.TrimSpace(timePart), " - ")[0])

	var start time.Time
	parsed := false
	for _, layout := range priceTimeLayouts {
		if t, err := time.Parse(layout, startStr); err == nil {
			start = t
			parsed = true
			break
		}
	}
	if !parsed {
		return PriceRecord{}, false
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(parts[1]), ",", "."), 64)
	if err != nil {
		return PriceRecord{}, false
	}

	return PriceRecord{Start: start, Price: price}, true
}

// ReadPrices parses a full price export, grouping records by calendar date.
// Malformed lines are skipped silently.
func ReadPrices(r io.Reader) (map[string][]PriceRecord, error) {
	byDay := make(map[string][]PriceRecord)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rec, ok := ParsePriceLine(scanner.Text())
		if !ok {
			continue
		}
		d := rec.Start.Format(model.DateLayout)
		byDay[d] = append(byDay[d], rec)
	}
	return byDay, scanner.Err()
}

// PriceCurves keeps only complete 96-point days, each ordered by time within
// the day. Incomplete days are excluded entirely; no partial simulation.
func PriceCurves(byDay map[string][]PriceRecord) map[string]model.PriceCurve {
	out := make(map[string]model.PriceCurve, len(byDay))
	for d, recs := range byDay {
		if len(recs) != model.IntervalsPerDay {
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Start.Before(recs[j].Start)
		})
		curve := make(model.PriceCurve, len(recs))
		for i, rec := range recs {
			curve[i] = rec.Price
		}
		out[d] = curve
	}
	return out
}
