// ABOUTME: HTTP handler serving default inputs and validation bounds
// ABOUTME: Lets form UIs render constraints without duplicating them client-side

package handlers

import (
	"net/http"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
	"github.com/zelenskymike/immersive-calculator-sub000/services"
)

// DefaultsResponse carries the default request values and the per-field
// validation bounds.
type DefaultsResponse struct {
	Defaults models.CalculationDefaults `json:"defaults"`
	Bounds   []services.FieldBound      `json:"bounds"`
}

// GetDefaults returns the documented defaults and bounds table.
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, DefaultsResponse{
		Defaults: services.Defaults(),
		Bounds:   services.RequestBounds(),
	})
}
