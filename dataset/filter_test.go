package dataset

import (
	"testing"
	"time"
)

func testTable() *Table {
	ts := func(day int) time.Time { return time.Date(2024, 1, day, 8, 0, 0, 0, time.UTC) }
	return NewTable([]Record{
		{Timestamp: ts(1), PassengerCount: 10, RouteID: "R1", Region: "North", EntryStationID: "S1", ExitStationID: "S2"},
		{Timestamp: ts(1), PassengerCount: 20, RouteID: "R2", Region: "South", EntryStationID: "S2", ExitStationID: "S3"},
		{Timestamp: ts(2), PassengerCount: 30, RouteID: "R1", Region: "South", EntryStationID: "S1", ExitStationID: "S1"},
		{Timestamp: ts(2), PassengerCount: 40, RouteID: "R3", Region: "East", EntryStationID: "S4", ExitStationID: "S5"},
	})
}

func TestFilterNoRestriction(t *testing.T) {
	table := testTable()
	got := table.Filter(nil, nil)
	if got.Len() != table.Len() {
		t.Fatalf("empty filters must keep all records: got %d, want %d", got.Len(), table.Len())
	}
}

func TestFilterByRegion(t *testing.T) {
	table := testTable()
	got := table.Filter([]string{"South"}, nil)
	if got.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", got.Len())
	}
	for i := 0; i < got.Len(); i++ {
		if got.Record(i).Region != "South" {
			t.Errorf("record %d escaped the region filter: %q", i, got.Record(i).Region)
		}
	}
	// Input table untouched.
	if table.Len() != 4 {
		t.Error("filter mutated its input")
	}
}

func TestFilterBothDimensionsAND(t *testing.T) {
	table := testTable()
	got := table.Filter([]string{"South"}, []string{"R1"})
	if got.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", got.Len())
	}
	rec := got.Record(0)
	if rec.Region != "South" || rec.RouteID != "R1" {
		t.Errorf("AND semantics violated: got region=%q route=%q", rec.Region, rec.RouteID)
	}
}

func TestFilterUnknownValuesYieldEmpty(t *testing.T) {
	got := testTable().Filter([]string{"Atlantis"}, nil)
	if got.Len() != 0 {
		t.Fatalf("unknown region should yield an empty table, got %d records", got.Len())
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := testTable().Filter(nil, []string{"R1"})
	if got.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", got.Len())
	}
	if got.Record(0).PassengerCount != 10 || got.Record(1).PassengerCount != 30 {
		t.Error("filter must preserve source order")
	}
}

func TestDistinctValues(t *testing.T) {
	table := testTable()
	regions := table.Regions()
	wantRegions := []string{"North", "South", "East"}
	if len(regions) != len(wantRegions) {
		t.Fatalf("expected %d regions, got %d", len(wantRegions), len(regions))
	}
	for i, r := range wantRegions {
		if regions[i] != r {
			t.Errorf("regions[%d]: expected %q (first-seen order), got %q", i, r, regions[i])
		}
	}
	routes := table.Routes()
	if len(routes) != 3 || routes[0] != "R1" || routes[1] != "R2" || routes[2] != "R3" {
		t.Errorf("unexpected routes: %v", routes)
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	records := []Record{{RouteID: "R1"}}
	table := NewTable(records)
	records[0].RouteID = "mutated"
	if table.Record(0).RouteID != "R1" {
		t.Error("NewTable must copy the record slice")
	}
}
