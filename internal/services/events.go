package services

import (
	"math"

	"weather-dashboard/internal/models"
)

// Static fixture standing in for a real events API (Eventbrite,
// Ticketmaster, ...). Venue coordinates allow a real distance to be
// reported instead of the filler value the feed used to carry.
var mockEvents = []models.Event{
	{
		ID: "1", Title: "Summer Jazz Festival", Type: "Music", Venue: "Central Park",
		VenueLat: 37.7694, VenueLon: -122.4862,
		Date: "2024-07-15", Time: "7:00 PM",
		Description:      "Annual outdoor jazz festival featuring local and international artists",
		IsOutdoor:        true,
		WeatherDependent: true,
		Category:         "Cultural", PriceRange: "$$", Duration: "3 hours",
		Tags: []string{"music", "outdoor", "festival", "jazz"},
	},
	{
		ID: "2", Title: "Modern Art Exhibition", Type: "Art", Venue: "City Museum",
		VenueLat: 37.7857, VenueLon: -122.4011,
		Date: "2024-07-15", Time: "10:00 AM - 6:00 PM",
		Description:      "Contemporary art showcase featuring emerging local artists",
		IsOutdoor:        false,
		WeatherDependent: false,
		Category:         "Cultural", PriceRange: "$", Duration: "2 hours",
		Tags: []string{"art", "indoor", "exhibition", "culture"},
	},
	{
		ID: "3", Title: "Food Truck Festival", Type: "Food", Venue: "Downtown Square",
		VenueLat: 37.7793, VenueLon: -122.4193,
		Date: "2024-07-15", Time: "11:00 AM - 8:00 PM",
		Description:      "Local food trucks serving diverse cuisines",
		IsOutdoor:        true,
		WeatherDependent: true,
		Category:         "Food & Drink", PriceRange: "$$", Duration: "1-2 hours",
		Tags: []string{"food", "outdoor", "festival", "local"},
	},
	{
		ID: "4", Title: "Indoor Rock Climbing", Type: "Sports", Venue: "Adventure Center",
		VenueLat: 37.7599, VenueLon: -122.4148,
		Date: "2024-07-15", Time: "9:00 AM - 10:00 PM",
		Description:      "Indoor climbing walls for all skill levels",
		IsOutdoor:        false,
		WeatherDependent: false,
		Category:         "Recreation", PriceRange: "$$", Duration: "2-3 hours",
		Tags: []string{"sports", "indoor", "climbing", "fitness"},
	},
	{
		ID: "5", Title: "Botanical Garden Tour", Type: "Nature", Venue: "City Botanical Gardens",
		VenueLat: 37.7677, VenueLon: -122.4702,
		Date: "2024-07-15", Time: "9:00 AM - 5:00 PM",
		Description:      "Guided tours through beautiful botanical collections",
		IsOutdoor:        true,
		WeatherDependent: true,
		Category:         "Nature", PriceRange: "$", Duration: "1-2 hours",
		Tags: []string{"nature", "outdoor", "educational", "peaceful"},
	},
	{
		ID: "6", Title: "Cooking Workshop", Type: "Workshop", Venue: "Culinary Institute",
		VenueLat: 37.8060, VenueLon: -122.4103,
		Date: "2024-07-15", Time: "2:00 PM - 5:00 PM",
		Description:      "Learn to cook seasonal dishes with local ingredients",
		IsOutdoor:        false,
		WeatherDependent: false,
		Category:         "Educational", PriceRange: "$$$", Duration: "3 hours",
		Tags: []string{"cooking", "indoor", "workshop", "food"},
	},
}

type EventService struct{}

func NewEventService() *EventService {
	return &EventService{}
}

// List returns the event feed. When the caller supplies coordinates each
// event carries the great-circle distance to its venue in miles;
// otherwise the field is omitted.
func (s *EventService) List(lat, lon *float64) []models.Event {
	events := make([]models.Event, len(mockEvents))
	copy(events, mockEvents)
	if lat == nil || lon == nil {
		return events
	}
	for i := range events {
		d := haversineMiles(*lat, *lon, events[i].VenueLat, events[i].VenueLon)
		events[i].Distance = &d
	}
	return events
}

const earthRadiusMiles = 3958.8

func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
