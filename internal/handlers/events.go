package handlers

import (
	"net/http"
	"strconv"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services"
)

type EventsHandler struct {
	service *services.EventService
}

func NewEventsHandler(service *services.EventService) *EventsHandler {
	return &EventsHandler{service: service}
}

// GetEvents returns the event feed. The city parameter is accepted but
// not used for filtering yet; lat/lon only drive the distance field.
func (h *EventsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var lat, lon *float64
	if v, err := strconv.ParseFloat(q.Get("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(q.Get("lon"), 64); err == nil {
		lon = &v
	}

	writeJSON(w, http.StatusOK, map[string][]models.Event{
		"events": h.service.List(lat, lon),
	})
}
