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

const sunshineTimeLayout = "2006-01-02T15:04"

// SunshineRecord is one parsed hourly sunshine-duration point.
type SunshineRecord struct {
	Start   time.Time
	Seconds float64
}

// ParseSunshineLine parses one line of an hourly irradiance export, shaped like
//
//	2024-06-01T09:00\t<station>\t1714.0
//
// with sunshine seconds in the third column. Header lines start with "time".
func ParseSunshineLine(line string) (SunshineRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "time") {
		return SunshineRecord{}, false
	}

	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		return SunshineRecord{}, false
	}

	start, err := time.Parse(sunshineTimeLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return SunshineRecord{}, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return SunshineRecord{}, false
	}

	return SunshineRecord{Start: start, Seconds: seconds}, true
}

// ReadSunshine parses a full irradiance export, grouping records by calendar
// date. Malformed lines are skipped silently.
func ReadSunshine(r io.Reader) (map[string][]SunshineRecord, error) {
	byDay := make(map[string][]SunshineRecord)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rec, ok := ParseSunshineLine(scanner.Text())
		if !ok {
			continue
		}
		d := rec.Start.Format(model.DateLayout)
		byDay[d] = append(byDay[d], rec)
	}
	return byDay, scanner.Err()
}

// SunshineDays keeps only complete 24-point days, each ordered by time within
// the day.
func SunshineDays(byDay map[string][]SunshineRecord) map[string]model.SunshineDay {
	out := make(map[string]model.SunshineDay, len(byDay))
	for d, recs := range byDay {
		if len(recs) != model.HoursPerDay {
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Start.Before(recs[j].Start)
		})
		day := make(model.SunshineDay, len(recs))
		for i, rec := range recs {
			day[i] = rec.Seconds
		}
		out[d] = day
	}
	return out
}
