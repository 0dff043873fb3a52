package formatter

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/ridership-insights/analysis"
)

// ChartPoint is a single renderable data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPayload is the wire shape for one dashboard chart. Series order and
// point order within a series are meaningful.
type ChartPayload struct {
	ChartType   string        `json:"chartType"` // "line", "bar", "pie"
	Title       string        `json:"title"`
	XAxis       string        `json:"xAxis,omitempty"`
	YAxis       string        `json:"yAxis,omitempty"`
	Series      []ChartSeries `json:"series"`
	GeneratedAt string        `json:"generatedAt"`
}

// CongestionChart builds the temporal congestion line chart for one unit
// ("hour", "day", "month" or "year").
func CongestionChart(unit string, buckets []analysis.TimeBucket) *ChartPayload {
	points := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, ChartPoint{Label: strconv.Itoa(b.Unit), Value: b.Passengers})
	}
	titles := map[string]string{
		"hour":  "Hourly Passenger Congestion",
		"day":   "Daily Passenger Congestion",
		"month": "Monthly Passenger Congestion",
		"year":  "Yearly Passenger Congestion",
	}
	xLabels := map[string]string{
		"hour":  "Hour of Day",
		"day":   "Day of Month",
		"month": "Month",
		"year":  "Year",
	}
	return &ChartPayload{
		ChartType:   "line",
		Title:       titles[unit],
		XAxis:       xLabels[unit],
		YAxis:       "Passenger Count",
		Series:      []ChartSeries{{Name: "Passengers", Data: points}},
		GeneratedAt: iso8601Now(),
	}
}

// TopRoutesChart builds the horizontal route ranking bar chart.
func TopRoutesChart(routes []analysis.RouteTotal) *ChartPayload {
	points := make([]ChartPoint, 0, len(routes))
	for _, r := range routes {
		points = append(points, ChartPoint{Label: r.RouteID, Value: r.Passengers})
	}
	return &ChartPayload{
		ChartType:   "bar",
		Title:       "Top Routes by Passenger Count",
		XAxis:       "Passengers",
		YAxis:       "Route ID",
		Series:      []ChartSeries{{Name: "Passengers", Data: points}},
		GeneratedAt: iso8601Now(),
	}
}

// TransferPointsChart builds the transfer-point ranking bar chart.
func TransferPointsChart(stations []analysis.StationCount) *ChartPayload {
	points := make([]ChartPoint, 0, len(stations))
	for _, s := range stations {
		points = append(points, ChartPoint{Label: s.StationID, Value: float64(s.Count)})
	}
	return &ChartPayload{
		ChartType:   "bar",
		Title:       "Top Transfer Points",
		XAxis:       "Transfers",
		YAxis:       "Station ID",
		Series:      []ChartSeries{{Name: "Transfers", Data: points}},
		GeneratedAt: iso8601Now(),
	}
}

// AnomalyChart builds the daily-totals line with a second series marking the
// anomalous days. The anomaly series is a subset of the daily series.
func AnomalyChart(anomalies, daily []analysis.DayTotal) *ChartPayload {
	return &ChartPayload{
		ChartType: "line",
		Title:     "Passenger Count with Anomalies",
		XAxis:     "Date",
		YAxis:     "Passengers",
		Series: []ChartSeries{
			{Name: "Daily Counts", Data: dayPoints(daily)},
			{Name: "Anomalies", Data: dayPoints(anomalies)},
		},
		GeneratedAt: iso8601Now(),
	}
}

// RegionChart builds a pie distribution for a regional ranking.
func RegionChart(title string, regions []analysis.RegionTotal) *ChartPayload {
	points := make([]ChartPoint, 0, len(regions))
	for _, r := range regions {
		points = append(points, ChartPoint{Label: r.Region, Value: r.Total})
	}
	return &ChartPayload{
		ChartType:   "pie",
		Title:       title,
		Series:      []ChartSeries{{Name: "Regions", Data: points}},
		GeneratedAt: iso8601Now(),
	}
}

func dayPoints(days []analysis.DayTotal) []ChartPoint {
	points := make([]ChartPoint, 0, len(days))
	for _, d := range days {
		points = append(points, ChartPoint{Label: d.Date.Format("2006-01-02"), Value: d.Total})
	}
	return points
}

func iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
