package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.NoStore(w)

	if err := h.pinger.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		_, _ = utils.WriteJSON(w, healthStatus{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}
	_, _ = utils.WriteJSON(w, healthStatus{Status: "ok"}, http.StatusOK)
}
