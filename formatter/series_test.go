package formatter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/ridership-insights/analysis"
)

func TestCongestionChart(t *testing.T) {
	buckets := []analysis.TimeBucket{
		{Unit: 8, Passengers: 120},
		{Unit: 17, Passengers: 80},
	}
	p := CongestionChart("hour", buckets)
	if p.ChartType != "line" {
		t.Errorf("expected line chart, got %s", p.ChartType)
	}
	if p.Title != "Hourly Passenger Congestion" || p.XAxis != "Hour of Day" {
		t.Errorf("unexpected labels: %q / %q", p.Title, p.XAxis)
	}
	data := p.Series[0].Data
	if len(data) != 2 || data[0].Label != "8" || data[0].Value != 120 || data[1].Label != "17" {
		t.Errorf("point order or values wrong: %+v", data)
	}
}

func TestAnomalyChartSeries(t *testing.T) {
	day := func(d string, total float64) analysis.DayTotal {
		ts, _ := time.Parse("2006-01-02", d)
		return analysis.DayTotal{Date: ts, Total: total}
	}
	daily := []analysis.DayTotal{day("2024-01-01", 100), day("2024-01-02", 500)}
	anomalies := []analysis.DayTotal{day("2024-01-02", 500)}

	p := AnomalyChart(anomalies, daily)
	if len(p.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(p.Series))
	}
	if p.Series[0].Name != "Daily Counts" || len(p.Series[0].Data) != 2 {
		t.Errorf("unexpected daily series: %+v", p.Series[0])
	}
	if p.Series[1].Name != "Anomalies" || len(p.Series[1].Data) != 1 {
		t.Errorf("unexpected anomaly series: %+v", p.Series[1])
	}
	if p.Series[1].Data[0].Label != "2024-01-02" {
		t.Errorf("anomaly label wrong: %s", p.Series[1].Data[0].Label)
	}
}

func TestRegionChart(t *testing.T) {
	p := RegionChart("Passenger Distribution by Region", []analysis.RegionTotal{
		{Region: "South", Total: 40},
		{Region: "North", Total: 30},
	})
	if p.ChartType != "pie" {
		t.Errorf("expected pie chart, got %s", p.ChartType)
	}
	if p.Series[0].Data[0].Label != "South" {
		t.Errorf("ranking order must be preserved, got %+v", p.Series[0].Data)
	}
}

func TestBuildJSONRoundTrips(t *testing.T) {
	p := TopRoutesChart([]analysis.RouteTotal{{RouteID: "R2", Passengers: 50}})
	buf := BuildJSON(p)

	var decoded ChartPayload
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.ChartType != "bar" || decoded.Series[0].Data[0].Label != "R2" {
		t.Errorf("payload mangled: %+v", decoded)
	}
	if decoded.GeneratedAt == "" {
		t.Error("GeneratedAt missing")
	}
	if _, err := time.Parse(time.RFC3339, decoded.GeneratedAt); err != nil {
		t.Errorf("GeneratedAt not RFC3339: %v", err)
	}
}
