// ABOUTME: HTTP handlers for the TCO calculator API
// ABOUTME: Provides shared handler state and JSON response helpers

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/zelenskymike/immersive-calculator-sub000/cache"
	"github.com/zelenskymike/immersive-calculator-sub000/config"
	"github.com/zelenskymike/immersive-calculator-sub000/metrics"
	"github.com/zelenskymike/immersive-calculator-sub000/models"
	"github.com/zelenskymike/immersive-calculator-sub000/services"
)

// maxRequestBodySize bounds calculate request bodies. The full request
// is twelve scalar fields; anything near this limit is garbage.
const maxRequestBodySize = 64 * 1024

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	metrics   *metrics.Counters
	calc      *services.TCOCalculator
	calcGroup singleflight.Group
	started   time.Time
}

// NewHandler creates a handler with its collaborators injected. Counters
// are passed in rather than kept as package state so tests and callers
// own their lifecycle.
func NewHandler(cfg *config.Config, c *cache.Cache, m *metrics.Counters) *Handler {
	var hoursPerYear, gridIntensity float64
	if cfg != nil {
		hoursPerYear = cfg.HoursPerYear
		gridIntensity = cfg.GridCarbonIntensity
	}

	return &Handler{
		cfg:     cfg,
		cache:   c,
		metrics: m,
		calc:    services.NewTCOCalculator(hoursPerYear, gridIntensity),
		started: time.Now(),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, verr *services.ValidationError) {
	h.writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
		Error: verr.Error(),
		Field: verr.Field,
		Code:  http.StatusUnprocessableEntity,
	})
}
