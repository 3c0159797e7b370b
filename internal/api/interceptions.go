package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/services"
)

// CreateInterception handles POST /api/interceptions
func (h *Handlers) CreateInterception() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.InterceptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.ThreatID <= 0 || req.MissileID <= 0 || req.OperatorID <= 0 {
			respondError(w, http.StatusBadRequest, constants.MsgInterceptFieldsNeeded)
			return
		}

		result, err := h.deps.Services.Interceptions.Intercept(r.Context(),
			req.ThreatID, req.MissileID, req.OperatorID, req.InterceptionNotes)
		switch {
		case errors.Is(err, services.ErrMissileUnavailable):
			h.deps.Metrics.InterceptionsTotal.WithLabelValues("missile_unavailable").Inc()
			respondError(w, http.StatusConflict, constants.MsgMissileUnavailable)
			return
		case errors.Is(err, services.ErrNotFound):
			h.deps.Metrics.InterceptionsTotal.WithLabelValues("details_missing").Inc()
			respondError(w, http.StatusNotFound, constants.MsgIncidentDetailsNotF)
			return
		case err != nil:
			h.deps.Metrics.InterceptionsTotal.WithLabelValues("error").Inc()
			logging.Error("Interception workflow failed",
				"threat_id", req.ThreatID, "missile_id", req.MissileID, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgInterceptFailed)
			return
		}

		h.deps.Metrics.InterceptionsTotal.WithLabelValues("success").Inc()

		respondJSON(w, http.StatusCreated, dtos.InterceptionResponse{
			Message:   "Interception initiated and incident report created successfully.",
			LogID:     result.LogID,
			ThreatID:  result.ThreatID,
			MissileID: result.MissileID,
		})
	}
}
