package models

// WeatherReport is the display-ready payload for the weather endpoint:
// a current-conditions snapshot plus the short hourly window and the
// grouped daily forecast.
type WeatherReport struct {
	City        string         `json:"city"`
	Temperature float64        `json:"temperature"`
	FeelsLike   float64        `json:"feels_like"`
	TempMin     float64        `json:"temp_min"`
	TempMax     float64        `json:"temp_max"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Hourly      []HourlySlot   `json:"hourly"`
	Daily       []DailySummary `json:"forecast_daily"`
}

// HourlySlot is one forecast interval, labeled by its HH:MM time of day.
// Rain is the chance of precipitation as a whole percentage.
type HourlySlot struct {
	Time string  `json:"time"`
	Temp float64 `json:"temp"`
	Icon string  `json:"icon"`
	Rain int     `json:"rain"`
}

// DailySummary aggregates all forecast intervals sharing a calendar
// date. Date is "Today", "Tomorrow", or the raw upstream date string.
type DailySummary struct {
	Date string `json:"date"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Rain int    `json:"rain"`
	Icon string `json:"icon"`
}
