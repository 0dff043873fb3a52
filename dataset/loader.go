package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// SchemaError reports a fatal problem with the uploaded CSV: a missing required
// column or a row whose primary timestamp cannot be parsed. Loading never
// returns a partial table alongside a SchemaError.
type SchemaError struct{ Msg string }

func (e *SchemaError) Error() string { return e.Msg }

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// Required CSV columns, matched case-insensitively against the header row.
const (
	colTimestamp      = "Timestamp"
	colDepartureTime  = "Departure_Time"
	colArrivalTime    = "Arrival_Time"
	colPassengerCount = "passenger_count"
	colRouteID        = "Route_ID"
	colEntryStationID = "Entry_Station_ID"
	colExitStationID  = "Exit_Station_ID"
	colRegion         = "Region"
	colTotalFees      = "Total_Fees"
)

var requiredColumns = []string{
	colTimestamp,
	colDepartureTime,
	colArrivalTime,
	colPassengerCount,
	colRouteID,
	colEntryStationID,
	colExitStationID,
	colRegion,
	colTotalFees,
}

// Accepted layouts for the primary timestamp and the optional departure and
// arrival times. Tried in order; first match wins.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads a full ridership CSV into an immutable Table.
//
// The primary Timestamp column is strict: any row that fails to parse aborts
// the load with *SchemaError. Departure_Time and Arrival_Time are lenient and
// become absent when unparseable. passenger_count and Total_Fees must be
// non-negative numbers.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, schemaErrorf("malformed CSV: %v", err)
	}
	if len(rows) == 0 {
		return nil, schemaErrorf("empty input: missing header row")
	}

	head := rows[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	cols := make(map[string]int, len(requiredColumns))
	for _, c := range requiredColumns {
		i := idx(c)
		if i < 0 {
			return nil, schemaErrorf("missing required column: %s", c)
		}
		cols[c] = i
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, after header

		ts, err := parseTime(row[cols[colTimestamp]])
		if err != nil {
			return nil, schemaErrorf("row %d: invalid Timestamp %q", line, row[cols[colTimestamp]])
		}

		pc, err := parseNonNegative(row[cols[colPassengerCount]])
		if err != nil {
			return nil, schemaErrorf("row %d: invalid passenger_count %q", line, row[cols[colPassengerCount]])
		}
		fees, err := parseNonNegative(row[cols[colTotalFees]])
		if err != nil {
			return nil, schemaErrorf("row %d: invalid Total_Fees %q", line, row[cols[colTotalFees]])
		}

		records = append(records, Record{
			Timestamp:      ts,
			DepartureTime:  parseTimeLenient(row[cols[colDepartureTime]]),
			ArrivalTime:    parseTimeLenient(row[cols[colArrivalTime]]),
			PassengerCount: pc,
			RouteID:        strings.TrimSpace(row[cols[colRouteID]]),
			EntryStationID: strings.TrimSpace(row[cols[colEntryStationID]]),
			ExitStationID:  strings.TrimSpace(row[cols[colExitStationID]]),
			Region:         strings.TrimSpace(row[cols[colRegion]]),
			TotalFees:      fees,
		})
	}

	return &Table{records: records}, nil
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Columns returns the required column names in schema order. Used by callers
// that echo the accepted schema back to the uploader.
func Columns() []string {
	out := make([]string, len(requiredColumns))
	copy(out, requiredColumns)
	return out
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time: %q", s)
}

// parseTimeLenient returns nil for anything that does not parse, including the
// empty string. Absent beats failing the whole load for the optional columns.
func parseTimeLenient(s string) *time.Time {
	t, err := parseTime(s)
	if err != nil {
		return nil
	}
	return &t
}

// parseNonNegative parses a numeric cell. Empty cells count as zero.
func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value: %g", v)
	}
	return v, nil
}
