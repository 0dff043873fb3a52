package dataset

// Filter returns a new Table holding the records that match the region and
// route restrictions. An empty (or nil) slice means no restriction for that
// dimension; when both are non-empty a record must match both. Values with no
// match in the table simply contribute nothing - an empty result is valid.
//
// The receiver is never mutated.
func (t *Table) Filter(regions, routes []string) *Table {
	if t == nil {
		return &Table{}
	}
	if len(regions) == 0 && len(routes) == 0 {
		return t
	}

	regionSet := toSet(regions)
	routeSet := toSet(routes)

	kept := make([]Record, 0, len(t.records))
	for _, rec := range t.records {
		if regionSet != nil && !regionSet[rec.Region] {
			continue
		}
		if routeSet != nil && !routeSet[rec.RouteID] {
			continue
		}
		kept = append(kept, rec)
	}
	return &Table{records: kept}
}

// Regions returns the distinct region values in first-seen order. The UI uses
// this to populate its filter controls.
func (t *Table) Regions() []string {
	return t.distinct(func(r Record) string { return r.Region })
}

// Routes returns the distinct route ids in first-seen order.
func (t *Table) Routes() []string {
	return t.distinct(func(r Record) string { return r.RouteID })
}

func (t *Table) distinct(key func(Record) string) []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, rec := range t.records {
		k := key(rec)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
