// ABOUTME: HTTP handler for the TCO calculation endpoint
// ABOUTME: Decodes the request, runs the engine, and attaches response metadata

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
	"github.com/zelenskymike/immersive-calculator-sub000/services"
)

// Calculate runs one air vs immersion TCO comparison.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req models.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.IncErrors()
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.calculate(req)
	if err != nil {
		h.metrics.IncErrors()
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			h.writeValidationError(w, verr)
			return
		}
		slog.Error("Calculation failed", "error", err)
		h.writeError(w, "Calculation failed", http.StatusInternalServerError)
		return
	}

	// ID and timestamp are regenerated per response; only the computed
	// figures are cached.
	resp := models.BuildCalculationResponse(uuid.NewString(), time.Now().UTC(), result)
	h.writeJSON(w, http.StatusOK, resp)
}

// calculate serves identical inputs from the cache and collapses
// concurrent duplicates through singleflight.
func (h *Handler) calculate(req models.CalculationRequest) (models.CalculationResult, error) {
	key, err := cacheKey(req)
	if err != nil || h.cache == nil {
		return h.calc.Calculate(req)
	}

	if cached, found := h.cache.Get(key); found {
		slog.Debug("Calculation cache hit")
		return cached.(models.CalculationResult), nil
	}

	v, err, _ := h.calcGroup.Do(key, func() (interface{}, error) {
		result, err := h.calc.Calculate(req)
		if err != nil {
			return nil, err
		}
		h.cache.Set(key, result)
		return result, nil
	})
	if err != nil {
		return models.CalculationResult{}, err
	}
	return v.(models.CalculationResult), nil
}

// cacheKey builds a deterministic key from the raw request. Marshaling
// preserves struct field order, so equal requests produce equal keys.
func cacheKey(req models.CalculationRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return "calc:" + string(b), nil
}
