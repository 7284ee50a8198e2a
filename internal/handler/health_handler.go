package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"galleryhub/internal/service"
)

type HealthResponse struct {
	State string `json:"status"`
	service.Status
}

// Health reports database reachability and schema readiness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.StatusService.Check(r.Context())
	if err != nil || !status.Ready() {
		if err != nil {
			h.Log.Warn("health check failed", zap.Error(err))
		}
		writeSuccess(w, HealthResponse{State: "unavailable", Status: status}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{State: "ok", Status: status}, http.StatusOK)
}
