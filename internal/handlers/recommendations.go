package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"weather-dashboard/internal/services"
)

// ModelPinger is the connectivity-probe side of the model client.
type ModelPinger interface {
	Ping(ctx context.Context) (string, error)
	ModelID() string
}

type RecommendationsHandler struct {
	service *services.RecommendationService
	pinger  ModelPinger
}

func NewRecommendationsHandler(service *services.RecommendationService, pinger ModelPinger) *RecommendationsHandler {
	return &RecommendationsHandler{service: service, pinger: pinger}
}

func (h *RecommendationsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bundle, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.Printf("Recommendations error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate recommendations")
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// Test probes the model provider and reports connectivity.
func (h *RecommendationsHandler) Test(w http.ResponseWriter, r *http.Request) {
	message, err := h.pinger.Ping(r.Context())
	if err != nil {
		log.Printf("Model connectivity test failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to connect to model provider",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   message,
		"model":     h.pinger.ModelID(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
