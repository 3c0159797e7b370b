package api

import (
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
)

// ListIncidents handles GET /api/incidents
func (h *Handlers) ListIncidents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.deps.Services.Interceptions.ListIncidents(r.Context())
		if err != nil {
			logging.Error("Failed to list incident reports", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgIncidentListFailed)
			return
		}

		reports := make([]dtos.IncidentReportEntry, 0, len(rows))
		for _, row := range rows {
			reports = append(reports, dtos.IncidentReportEntry{
				ReportID:              row.ReportID,
				LogID:                 row.LogID,
				IncidentTime:          dtos.FormatTime(row.IncidentTime),
				AircraftIdentifier:    row.AircraftIdentifier,
				ThreatLevelAtIncident: string(row.ThreatLevelAtIncident),
				MissileTypeUsed:       row.MissileTypeUsed,
				LaunchingOperator:     row.LaunchingOperator,
				InterceptionResult:    row.InterceptionResult,
				ReportSummary:         row.ReportSummary,
				InterceptionDetails:   row.InterceptionDetails,
			})
		}
		respondJSON(w, http.StatusOK, reports)
	}
}
