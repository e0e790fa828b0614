package data

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"solar-dispatch/internal/model"
)

// ErrNoCommonDays is returned when the price and sunshine series share no
// eligible calendar day; there is nothing to simulate.
var ErrNoCommonDays = errors.New("no days present in both price and sunshine series")

// Day is one calendar day eligible for simulation: a complete price curve and
// a complete sunshine series for the same date.
type Day struct {
	Date     string
	Prices   model.PriceCurve
	Sunshine model.SunshineDay
}

// CommonDays intersects the two per-day maps and returns the days present in
// both, sorted by date ascending.
func CommonDays(prices map[string]model.PriceCurve, sunshine map[string]model.SunshineDay) ([]Day, error) {
	var out []Day
	for d, p := range prices {
		s, ok := sunshine[d]
		if !ok {
			continue
		}
		out = append(out, Day{Date: d, Prices: p, Sunshine: s})
	}
	if len(out) == 0 {
		return nil, ErrNoCommonDays
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// ReadDays parses both exports and returns the eligible simulation days.
func ReadDays(prices, sunshine io.Reader) ([]Day, error) {
	priceRecs, err := ReadPrices(prices)
	if err != nil {
		return nil, fmt.Errorf("read prices: %w", err)
	}
	sunRecs, err := ReadSunshine(sunshine)
	if err != nil {
		return nil, fmt.Errorf("read sunshine: %w", err)
	}
	return CommonDays(PriceCurves(priceRecs), SunshineDays(sunRecs))
}

// LoadDays reads both input files and returns the eligible simulation days.
func LoadDays(pricePath, sunshinePath string) ([]Day, error) {
	pf, err := os.Open(pricePath)
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	sf, err := os.Open(sunshinePath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()

	return ReadDays(pf, sf)
}
