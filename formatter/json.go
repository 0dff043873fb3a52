package formatter

import "encoding/json"

// BuildJSON serializes a chart payload to JSON.
func BuildJSON(p *ChartPayload) []byte {
	b, _ := json.Marshal(p)
	return b
}
