package api

import (
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
)

// ListRadars handles GET /api/radars
func (h *Handlers) ListRadars() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := h.deps.Repo.Stations.ListStations(r.Context())
		if err != nil {
			logging.Error("Failed to list radar stations", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgRadarFetchFailed)
			return
		}
		respondJSON(w, http.StatusOK, stations)
	}
}
