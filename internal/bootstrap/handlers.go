package bootstrap

import (
	"weather-dashboard/internal/api"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/handlers"
	"weather-dashboard/internal/services"
)

type HandlersBundle struct {
	WeatherHandler         *handlers.WeatherHandler
	EventsHandler          *handlers.EventsHandler
	RecommendationsHandler *handlers.RecommendationsHandler
}

func InitBootstrap(cfg *config.Config) *HandlersBundle {
	owm := api.NewOpenWeatherClient(cfg.OpenWeatherKey, cfg.OpenWeatherBaseURL)
	model := api.NewRecommendationModel(cfg.AnthropicKey, cfg.AnthropicModel)

	return &HandlersBundle{
		WeatherHandler:         handlers.NewWeatherHandler(services.NewWeatherService(owm, cfg.OpenWeatherKey)),
		EventsHandler:          handlers.NewEventsHandler(services.NewEventService()),
		RecommendationsHandler: handlers.NewRecommendationsHandler(services.NewRecommendationService(model), model),
	}
}
