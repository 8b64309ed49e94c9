package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"weather-dashboard/internal/api"
	"weather-dashboard/internal/models"
)

// ErrNoAPIKey is returned before any network call when the provider key
// is absent from the environment.
var ErrNoAPIKey = errors.New("OpenWeather API key not configured")

const (
	msToMph     = 2.237
	metersPerMi = 1609
	hpaToInHg   = 0.02953
)

type WeatherService struct {
	client *api.OpenWeatherClient
	apiKey string
}

func NewWeatherService(client *api.OpenWeatherClient, apiKey string) *WeatherService {
	return &WeatherService{client: client, apiKey: apiKey}
}

// Current fetches and reshapes current conditions: °C ints, mph wind,
// mile visibility, inHg pressure string, 12-hour sun times.
func (s *WeatherService) Current(ctx context.Context, lat, lon, city string) (*models.CurrentWeather, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	raw, err := s.client.Current(ctx, lat, lon, city)
	if err != nil {
		return nil, fmt.Errorf("fetch current weather: %w", err)
	}

	visibility := 10
	if raw.Visibility != 0 {
		visibility = int(math.Round(float64(raw.Visibility) / metersPerMi))
	}

	return &models.CurrentWeather{
		Location:    raw.Name + ", " + raw.Country,
		Temperature: int(math.Round(raw.Temp)),
		Condition:   raw.Condition,
		Description: raw.Description,
		Icon:        raw.Icon,
		Humidity:    raw.Humidity,
		WindSpeed:   int(math.Round(raw.WindSpeed * msToMph)),
		Visibility:  visibility,
		Pressure:    fmt.Sprintf("%.2f", raw.Pressure*hpaToInHg),
		FeelsLike:   int(math.Round(raw.FeelsLike)),
		Sunrise:     raw.Sunrise.Format("3:04 PM"),
		Sunset:      raw.Sunset.Format("3:04 PM"),
		Coordinates: raw.Coord,
	}, nil
}

// Forecast fetches the raw 3-hour samples and aggregates them into the
// hourly and weekly views.
func (s *WeatherService) Forecast(ctx context.Context, lat, lon, city string) (*models.ForecastBundle, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	samples, err := s.client.Forecast(ctx, lat, lon, city)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	return &models.ForecastBundle{
		Hourly: BuildHourly(samples),
		Weekly: BuildWeekly(samples),
	}, nil
}
