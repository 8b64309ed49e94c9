package bootstrap

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func InitRoutes(bundle *HandlersBundle) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/weather/current", bundle.WeatherHandler.GetCurrent)
	r.Get("/weather/forecast", bundle.WeatherHandler.GetForecast)
	r.Get("/events", bundle.EventsHandler.GetEvents)
	r.Post("/recommendations", bundle.RecommendationsHandler.Generate)
	r.Get("/recommendations/test", bundle.RecommendationsHandler.Test)

	return r
}
