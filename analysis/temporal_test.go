package analysis

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

func tableAt(stamps []time.Time, counts []float64) *dataset.Table {
	records := make([]dataset.Record, len(stamps))
	for i := range stamps {
		records[i] = dataset.Record{Timestamp: stamps[i], PassengerCount: counts[i]}
	}
	return dataset.NewTable(records)
}

func TestPassengersByHour(t *testing.T) {
	table := tableAt(
		[]time.Time{
			time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 8, 45, 0, 0, time.UTC),
		},
		[]float64{50, 100, 25},
	)

	got := PassengersByHour(table)
	want := []TimeBucket{{Unit: 8, Passengers: 125}, {Unit: 17, Passengers: 50}}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTemporalAscendingAndConserving(t *testing.T) {
	stamps := []time.Time{
		time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 19, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC),
	}
	counts := []float64{10, 20, 30, 40}
	table := tableAt(stamps, counts)
	totalIn := 100.0

	tests := []struct {
		name string
		fn   func(*dataset.Table) []TimeBucket
	}{
		{"hour", PassengersByHour},
		{"day", PassengersByDay},
		{"month", PassengersByMonth},
		{"year", PassengersByYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(table)
			sum := 0.0
			for i, b := range got {
				sum += b.Passengers
				if i > 0 && got[i-1].Unit >= b.Unit {
					t.Errorf("buckets not strictly ascending: %d then %d", got[i-1].Unit, b.Unit)
				}
			}
			if sum != totalIn {
				t.Errorf("sum conservation violated: got %g, want %g", sum, totalIn)
			}
		})
	}
}

func TestTemporalIdempotent(t *testing.T) {
	table := tableAt(
		[]time.Time{time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)},
		[]float64{5, 7},
	)
	first := PassengersByMonth(table)
	second := PassengersByMonth(table)
	if len(first) != len(second) {
		t.Fatal("repeated calls differ in length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated calls differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTemporalEmptyTable(t *testing.T) {
	empty := dataset.NewTable(nil)
	for _, fn := range []func(*dataset.Table) []TimeBucket{
		PassengersByHour, PassengersByDay, PassengersByMonth, PassengersByYear,
	} {
		if got := fn(empty); len(got) != 0 {
			t.Errorf("empty table must yield empty result, got %v", got)
		}
	}
}
