package analysis

import (
	"sort"

	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
)

// RegionTotal is one entry of a regional ranking. Total is either summed
// passengers or summed fees depending on the operation.
type RegionTotal struct {
	Region string  `json:"region"`
	Total  float64 `json:"total"`
}

// RegionPassengerTrends sums passenger counts per region, descending by total.
// Full result, no truncation. Equal totals keep first-seen order.
func RegionPassengerTrends(t *dataset.Table) []RegionTotal {
	return regionTotals(t, func(r dataset.Record) float64 { return r.PassengerCount })
}

// RegionRevenueTrends sums collected fees per region, descending by total.
func RegionRevenueTrends(t *dataset.Table) []RegionTotal {
	return regionTotals(t, func(r dataset.Record) float64 { return r.TotalFees })
}

func regionTotals(t *dataset.Table, metric func(dataset.Record) float64) []RegionTotal {
	if t.Len() == 0 {
		return nil
	}

	totals := make(map[string]float64)
	var order []string
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		if _, seen := totals[rec.Region]; !seen {
			order = append(order, rec.Region)
		}
		totals[rec.Region] += metric(rec)
	}

	out := make([]RegionTotal, 0, len(order))
	for _, region := range order {
		out = append(out, RegionTotal{Region: region, Total: totals[region]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
