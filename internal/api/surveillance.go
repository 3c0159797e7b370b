package api

import (
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
)

// SurveillanceSummary handles GET /api/surveillance/summary
func (h *Handlers) SurveillanceSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.deps.Repo.Surveillance.Summary(r.Context())
		if err != nil {
			logging.Error("Failed to build surveillance summary", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgSummaryFailed)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}
