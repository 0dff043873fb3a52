package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

// DefaultZThreshold is the dashboard's default anomaly sensitivity.
const DefaultZThreshold = 2.5

// DayTotal is the summed passenger count for one calendar date. Date carries
// only the date component (midnight UTC).
type DayTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// DetectAnomalies groups passenger counts by the calendar date of the primary
// timestamp and flags days whose total deviates from the mean of all daily
// totals by more than zThresh sample standard deviations (N-1 denominator).
//
// Returns the anomalous days and the full daily series, both ascending by
// date; the anomalies are a subset of the series in the same order. A single
// day or zero variance yields no anomalies. A non-positive zThresh is accepted
// and, by the plain formula, flags every day with a nonzero deviation.
func DetectAnomalies(t *dataset.Table, zThresh float64) (anomalies, daily []DayTotal) {
	if t.Len() == 0 {
		return nil, nil
	}

	totals := make(map[time.Time]float64)
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		totals[dateOf(rec.Timestamp)] += rec.PassengerCount
	}

	daily = make([]DayTotal, 0, len(totals))
	for d, sum := range totals {
		daily = append(daily, DayTotal{Date: d, Total: sum})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })

	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.Total
	}
	m := mean(values)
	std := sampleStd(values)
	if std == 0 {
		// One day, or every day identical: nothing deviates.
		return nil, daily
	}

	for _, d := range daily {
		if math.Abs(d.Total-m) > zThresh*std {
			anomalies = append(anomalies, d)
		}
	}
	return anomalies, daily
}

// dateOf truncates a timestamp to its calendar date, dropping time of day.
func dateOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
