// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports liveness, uptime, and injected request/error counters

package handlers

import (
	"net/http"
	"time"
)

// Health returns API liveness plus the request/error counters.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.metrics.Snapshot()

	resp := map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"requests_total": snap.Requests,
		"errors_total":   snap.Errors,
	}

	h.writeJSON(w, http.StatusOK, resp)
}
