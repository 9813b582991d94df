package models

import "encoding/json"

// Coordinate is a WGS 84 point as supplied by the caller.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteSummary is the best route between two points. Geometry is the
// provider's GeoJSON line, forwarded without reinterpretation.
type RouteSummary struct {
	DistanceM float64         `json:"distance_m"`
	DurationS float64         `json:"duration_s"`
	Geometry  json.RawMessage `json:"geometry"`
}
