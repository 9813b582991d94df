package models

// Place is one normalized geocoding candidate.
type Place struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Type  string  `json:"type"`
	Class string  `json:"class"`
}
