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

// ListAlerts handles GET /api/alerts
func (h *Handlers) ListAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.deps.Services.Alerts.List(r.Context())
		if err != nil {
			logging.Error("Failed to list automated alerts", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgAlertListFailed)
			return
		}

		alerts := make([]dtos.AlertEntry, 0, len(rows))
		for _, row := range rows {
			alerts = append(alerts, dtos.AlertEntry{
				AlertID:            row.AlertID,
				ThreatID:           row.ThreatID,
				AlertTime:          dtos.FormatTime(row.AlertTime),
				Reason:             row.Reason,
				IsAcknowledged:     row.IsAcknowledged,
				AircraftIdentifier: row.AircraftIdentifier,
				ThreatLevel:        string(row.ThreatLevel),
			})
		}
		respondJSON(w, http.StatusOK, alerts)
	}
}

// GenerateAlert handles POST /api/alerts/generate
func (h *Handlers) GenerateAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alert, err := h.deps.Services.Alerts.GenerateUninterceptedThreatAlert(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrNoThreatToAlert) {
				// Nothing qualifies; not an error.
				respondJSON(w, http.StatusNotFound, map[string]string{"message": constants.MsgNoThreatToAlert})
				return
			}
			logging.Error("Failed to generate automated alert", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgAlertGenFailed)
			return
		}

		h.deps.Metrics.AlertsGeneratedTotal.Inc()

		respondJSON(w, http.StatusCreated, dtos.GenerateAlertResponse{
			Message:            fmt.Sprintf("Alert generated for threat %d (%s).", alert.ThreatID, alert.AircraftIdentifier),
			AlertID:            alert.AlertID,
			ThreatID:           alert.ThreatID,
			AircraftIdentifier: alert.AircraftIdentifier,
		})
	}
}

// AcknowledgeAlert handles PATCH /api/alerts/{alertID}/acknowledge
func (h *Handlers) AcknowledgeAlert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID, err := strconv.ParseInt(chi.URLParam(r, "alertID"), 10, 64)
		if err != nil || alertID <= 0 {
			respondError(w, http.StatusBadRequest, constants.MsgAckFieldsNeeded)
			return
		}

		var req dtos.AcknowledgeAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OperatorID <= 0 {
			respondError(w, http.StatusBadRequest, constants.MsgAckFieldsNeeded)
			return
		}

		err = h.deps.Services.Alerts.Acknowledge(r.Context(), alertID, req.OperatorID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondError(w, http.StatusNotFound,
				fmt.Sprintf("Alert with ID %d not found or already acknowledged.", alertID))
			return
		case err != nil:
			logging.Error("Failed to acknowledge alert", "alert_id", alertID, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgAckFailed)
			return
		}

		respondJSON(w, http.StatusOK, dtos.AcknowledgeAlertResponse{
			Message:        fmt.Sprintf("Alert ID %d acknowledged by operator %d.", alertID, req.OperatorID),
			AlertID:        alertID,
			IsAcknowledged: true,
		})
	}
}
