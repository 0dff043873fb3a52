package analysis

import (
	"sort"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

// DefaultTopN matches the dashboard's default ranking depth.
const DefaultTopN = 5

// RouteTotal is one entry of a route ranking.
type RouteTotal struct {
	RouteID    string  `json:"routeId"`
	Passengers float64 `json:"passengers"`
}

// StationCount is one entry of a transfer-point ranking. Count is the number
// of times the station appeared as an entry or exit location.
type StationCount struct {
	StationID string `json:"stationId"`
	Count     int    `json:"count"`
}

// TopRoutes ranks routes by summed passenger count, descending, truncated to
// the first n. Equal totals keep the order in which the routes first appear in
// the table, so a fixed input always produces the same ranking. n must be
// positive.
func TopRoutes(t *dataset.Table, n int) ([]RouteTotal, error) {
	if n <= 0 {
		return nil, &ParamError{Msg: "top routes: n must be a positive integer"}
	}
	if t.Len() == 0 {
		return nil, nil
	}

	totals := make(map[string]float64)
	var order []string
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		if _, seen := totals[rec.RouteID]; !seen {
			order = append(order, rec.RouteID)
		}
		totals[rec.RouteID] += rec.PassengerCount
	}

	out := make([]RouteTotal, 0, len(order))
	for _, id := range order {
		out = append(out, RouteTotal{RouteID: id, Passengers: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Passengers > out[j].Passengers })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// TopTransferPoints ranks stations by how often they occur as an entry or exit
// point across all records. Entry and exit streams are unioned as a multiset:
// a record whose entry and exit stations are equal contributes 2 to that
// station. Descending by count, first-seen tie-break, truncated to n.
func TopTransferPoints(t *dataset.Table, n int) ([]StationCount, error) {
	if n <= 0 {
		return nil, &ParamError{Msg: "top transfer points: n must be a positive integer"}
	}
	if t.Len() == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	var order []string
	occur := func(id string) {
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		occur(rec.EntryStationID)
		occur(rec.ExitStationID)
	}

	out := make([]StationCount, 0, len(order))
	for _, id := range order {
		out = append(out, StationCount{StationID: id, Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
