package models

// Event is one local event from the events feed. The feed is a static
// fixture standing in for a real events API; Venue coordinates let the
// events endpoint report a real distance to the caller.
type Event struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Type             string   `json:"type"`
	Venue            string   `json:"venue"`
	VenueLat         float64  `json:"-"`
	VenueLon         float64  `json:"-"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Description      string   `json:"description"`
	IsOutdoor        bool     `json:"isOutdoor"`
	WeatherDependent bool     `json:"weatherDependent"`
	Category         string   `json:"category"`
	PriceRange       string   `json:"priceRange"`
	Duration         string   `json:"duration"`
	Tags             []string `json:"tags"`
	// Distance in miles from the caller's coordinates; nil when the
	// caller sent no coordinates.
	Distance *float64 `json:"distance,omitempty"`
}
