package ridership

import (
	"strconv"
	"strings"
)

// QueryError reports a malformed request parameter. Handlers turn it into a
// 400 with the message as-is.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// normalizeUnit validates the congestion granularity. Empty defaults to hour.
func normalizeUnit(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "hour", nil
	}
	switch s {
	case "hour", "day", "month", "year":
		return s, nil
	}
	return "", &QueryError{Msg: "Unsupported congestion unit: " + s}
}

// parsePositiveInt parses a top-N parameter. Empty falls back to def.
func parsePositiveInt(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, &QueryError{Msg: "Parameter n must be a positive integer."}
	}
	return v, nil
}

// parseThreshold parses the anomaly z-threshold. Empty falls back to def.
// Non-positive values are accepted: by the detection formula they flag every
// day with a nonzero deviation.
func parseThreshold(s string, def float64) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &QueryError{Msg: "Parameter z must be a real number."}
	}
	return v, nil
}

// parseListParam splits a comma-separated multi-value parameter, dropping
// empty entries. Returns nil for no restriction.
func parseListParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
