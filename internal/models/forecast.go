package models

import "time"

// ForecastSample is one raw upstream forecast record at ~3-hour cadence.
// Precipitation is the provider's probability in [0,1].
type ForecastSample struct {
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Precipitation float64   `json:"precipitation"`
}

// HourlyEntry is one hourly forecast row. Precipitation is an integer
// percentage in [0,100].
type HourlyEntry struct {
	Time          string `json:"time"`
	Temp          int    `json:"temp"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"`
	Description   string `json:"description"`
}

// DayForecast is the per-day rollup: high/low over the day's samples,
// the day's most frequent condition and icon, and the mean precipitation
// percentage.
type DayForecast struct {
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	Precipitation int    `json:"precipitation"`
}

// ForecastBundle is the forecast endpoint response.
type ForecastBundle struct {
	Hourly []HourlyEntry `json:"hourly"`
	Weekly []DayForecast `json:"weekly"`
}
