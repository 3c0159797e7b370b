package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/services"
)

// OverrideThreat handles PATCH /api/threats/{threatID}/override
func (h *Handlers) OverrideThreat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threatID, err := strconv.ParseInt(chi.URLParam(r, "threatID"), 10, 64)
		if err != nil || threatID <= 0 {
			respondError(w, http.StatusBadRequest, constants.MsgOverrideFieldsNeeded)
			return
		}

		var req dtos.OverrideThreatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewThreatLevel == "" || req.OperatorID <= 0 {
			respondError(w, http.StatusBadRequest, constants.MsgOverrideFieldsNeeded)
			return
		}

		err = h.deps.Services.Threats.Override(r.Context(), threatID, req.OperatorID, constants.ThreatLevel(req.NewThreatLevel))
		switch {
		case errors.Is(err, services.ErrInvalidThreatLevel):
			respondError(w, http.StatusBadRequest, constants.MsgInvalidThreatLevel)
			return
		case errors.Is(err, services.ErrNotFound):
			respondError(w, http.StatusNotFound, fmt.Sprintf("Threat with ID %d not found.", threatID))
			return
		case err != nil:
			logging.Error("Failed to override threat level", "threat_id", threatID, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgOverrideFailed)
			return
		}

		h.deps.Metrics.ThreatOverridesTotal.Inc()

		respondJSON(w, http.StatusOK, dtos.OverrideThreatResponse{
			Message:        fmt.Sprintf("Threat ID %d updated to %s by operator %d.", threatID, req.NewThreatLevel, req.OperatorID),
			ThreatID:       threatID,
			NewThreatLevel: req.NewThreatLevel,
		})
	}
}
