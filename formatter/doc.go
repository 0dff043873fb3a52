// Package formatter turns ordered analysis results into the render-ready
// chart payloads the dashboard front end consumes.
//
// This package is organized into:
// - series.go: payload shapes and per-view builders
// - json.go: JSON serialization
//
// The analysis layer guarantees result order (ascending by unit for temporal
// series, descending by total for rankings); builders preserve that order
// positionally, so the front end renders points exactly as received.
package formatter
