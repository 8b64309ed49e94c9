package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services"
)

// State is the dashboard session's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLocating
	StateFetching
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocating:
		return "locating"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the session state at one point in time.
type Snapshot struct {
	State              State
	ActiveTab          string
	Weather            *models.CurrentWeather
	Forecast           *models.ForecastBundle
	Events             []models.Event
	Recommendations    *models.RecommendationBundle
	Preferences        models.UserPreferences
	SearchQuery        string
	Coordinates        *models.Coordinates
	Err                string
	RecommendationsErr string
	LastUpdated        time.Time
}

// Controller orchestrates the dashboard's fetches and holds session
// state. Each fetch flow carries a monotonic generation; a completion
// whose generation has been superseded is discarded, so a slow stale
// request can never overwrite a newer one.
type Controller struct {
	api     *Client
	locator Locator

	mu         sync.Mutex
	snap       Snapshot
	weatherGen uint64
	recsGen    uint64
}

func NewController(api *Client, locator Locator) *Controller {
	return &Controller{
		api:     api,
		locator: locator,
		snap: Snapshot{
			State:       StateIdle,
			ActiveTab:   "current",
			Preferences: models.DefaultPreferences(),
		},
	}
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

func (c *Controller) SetActiveTab(tab string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.ActiveTab = tab
}

// Start locates the user and fetches weather for the position, falling
// back to the default city when geolocation fails.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.snap.State = StateLocating
	c.mu.Unlock()

	lat, lon, err := c.locator.Locate(ctx)
	if err != nil {
		c.FetchWeather(ctx, nil, nil, "")
		return
	}
	c.FetchWeather(ctx, &lat, &lon, "")
}

// Search fetches weather for a named city.
func (c *Controller) Search(ctx context.Context, city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		return
	}
	c.mu.Lock()
	c.snap.SearchQuery = city
	c.snap.Coordinates = nil
	c.mu.Unlock()

	c.FetchWeather(ctx, nil, nil, city)
}

// Refresh re-resolves with the last known coordinates if present, else
// the last known location name, else the fallback city.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	coords := c.snap.Coordinates
	var city string
	if coords == nil && c.snap.Weather != nil {
		city = strings.TrimSpace(strings.Split(c.snap.Weather.Location, ",")[0])
	}
	c.mu.Unlock()

	if coords != nil {
		c.FetchWeather(ctx, &coords.Lat, &coords.Lon, "")
		return
	}
	c.FetchWeather(ctx, nil, nil, city)
}

// SetPreferences updates the session preferences and, once weather is
// loaded, re-runs the recommendation flow.
func (c *Controller) SetPreferences(ctx context.Context, prefs models.UserPreferences) {
	c.mu.Lock()
	c.snap.Preferences = prefs
	hasWeather := c.snap.Weather != nil
	c.mu.Unlock()

	if hasWeather {
		c.RefreshRecommendations(ctx)
	}
}

// FetchWeather loads current weather and forecast together, then chains
// the events + recommendations flow. The two upstream calls and the
// state update happen under one generation: a later fetch supersedes
// this one even while it is in flight.
func (c *Controller) FetchWeather(ctx context.Context, lat, lon *float64, city string) {
	c.mu.Lock()
	c.weatherGen++
	gen := c.weatherGen
	c.snap.State = StateFetching
	c.snap.Err = ""
	c.mu.Unlock()

	weather, err := c.api.GetCurrent(ctx, lat, lon, city)
	var forecast *models.ForecastBundle
	if err == nil {
		forecast, err = c.api.GetForecast(ctx, lat, lon, city)
	}

	c.mu.Lock()
	if gen != c.weatherGen {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.snap.State = StateError
		c.snap.Err = err.Error()
		c.mu.Unlock()
		return
	}
	c.snap.State = StateReady
	c.snap.Weather = weather
	c.snap.Forecast = forecast
	c.snap.Coordinates = &weather.Coordinates
	c.snap.LastUpdated = time.Now()
	c.mu.Unlock()

	c.RefreshRecommendations(ctx)
}

// RefreshRecommendations fetches events, then recommendations for the
// current weather, location and preferences. Failures here never
// disturb the weather display; they only set RecommendationsErr.
func (c *Controller) RefreshRecommendations(ctx context.Context) {
	c.mu.Lock()
	c.recsGen++
	gen := c.recsGen
	weather := c.snap.Weather
	coords := c.snap.Coordinates
	prefs := c.snap.Preferences
	c.mu.Unlock()

	if weather == nil {
		return
	}

	var lat, lon *float64
	if coords != nil {
		lat, lon = &coords.Lat, &coords.Lon
	}

	events, err := c.api.GetEvents(ctx, lat, lon, weather.Location)
	var bundle *models.RecommendationBundle
	if err == nil {
		bundle, err = c.api.GetRecommendations(ctx, services.RecommendationRequest{
			Weather:         weather,
			Location:        weather.Location,
			Events:          events,
			UserPreferences: &prefs,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.recsGen {
		return
	}
	if err != nil {
		c.snap.RecommendationsErr = err.Error()
		return
	}
	c.snap.RecommendationsErr = ""
	c.snap.Events = events
	c.snap.Recommendations = bundle
	c.snap.LastUpdated = time.Now()
}
