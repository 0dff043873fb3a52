package dataset

import "time"

// Record is one row of ingested ridership data. The primary Timestamp is always
// valid for records that survive loading; DepartureTime and ArrivalTime are nil
// when the source value was missing or unparseable.
type Record struct {
	Timestamp      time.Time
	DepartureTime  *time.Time
	ArrivalTime    *time.Time
	PassengerCount float64
	RouteID        string
	EntryStationID string
	ExitStationID  string
	Region         string
	TotalFees      float64
}

// Table is an ordered, immutable sequence of records. Insertion order reflects
// source file order; aggregations are order-independent reductions but ranking
// tie-breaks fall back to first-seen order, so the order is kept stable.
type Table struct {
	records []Record
}

// NewTable wraps a record slice as a Table. The slice is copied so later
// mutation of the argument cannot reach the table.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Record returns the record at index i.
func (t *Table) Record(i int) Record { return t.records[i] }

// Records returns a copy of the underlying records.
func (t *Table) Records() []Record {
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}
