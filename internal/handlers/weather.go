package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"weather-dashboard/internal/services"
)

type WeatherHandler struct {
	service *services.WeatherService
}

func NewWeatherHandler(service *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func location(r *http.Request) (lat, lon, city string) {
	q := r.URL.Query()
	return strings.TrimSpace(q.Get("lat")), strings.TrimSpace(q.Get("lon")), strings.TrimSpace(q.Get("city"))
}

func (h *WeatherHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	lat, lon, city := location(r)

	weather, err := h.service.Current(r.Context(), lat, lon, city)
	if err != nil {
		if errors.Is(err, services.ErrNoAPIKey) {
			writeError(w, http.StatusInternalServerError, services.ErrNoAPIKey.Error())
			return
		}
		log.Printf("Weather API error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch weather data")
		return
	}

	writeJSON(w, http.StatusOK, weather)
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	lat, lon, city := location(r)

	forecast, err := h.service.Forecast(r.Context(), lat, lon, city)
	if err != nil {
		if errors.Is(err, services.ErrNoAPIKey) {
			writeError(w, http.StatusInternalServerError, services.ErrNoAPIKey.Error())
			return
		}
		log.Printf("Forecast API error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch forecast data")
		return
	}

	writeJSON(w, http.StatusOK, forecast)
}
