package analysis

import (
	"sort"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

// TimeBucket is one point of a temporal congestion series: a calendar unit
// value (hour of day, day of month, month number or year) and the summed
// passenger count that fell into it.
type TimeBucket struct {
	Unit       int     `json:"unit"`
	Passengers float64 `json:"passengers"`
}

// PassengersByHour sums passenger counts per hour of day (0-23), ascending.
func PassengersByHour(t *dataset.Table) []TimeBucket {
	return bucketBy(t, func(r dataset.Record) int { return r.Timestamp.Hour() })
}

// PassengersByDay sums passenger counts per day of month (1-31), ascending.
func PassengersByDay(t *dataset.Table) []TimeBucket {
	return bucketBy(t, func(r dataset.Record) int { return r.Timestamp.Day() })
}

// PassengersByMonth sums passenger counts per month (1-12), ascending.
func PassengersByMonth(t *dataset.Table) []TimeBucket {
	return bucketBy(t, func(r dataset.Record) int { return int(r.Timestamp.Month()) })
}

// PassengersByYear sums passenger counts per calendar year, ascending.
func PassengersByYear(t *dataset.Table) []TimeBucket {
	return bucketBy(t, func(r dataset.Record) int { return r.Timestamp.Year() })
}

func bucketBy(t *dataset.Table, unit func(dataset.Record) int) []TimeBucket {
	if t.Len() == 0 {
		return nil
	}
	totals := make(map[int]float64)
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		totals[unit(rec)] += rec.PassengerCount
	}
	out := make([]TimeBucket, 0, len(totals))
	for u, sum := range totals {
		out = append(out, TimeBucket{Unit: u, Passengers: sum})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}
