package api

import (
	"encoding/json"
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
)

// DetectAircraft handles POST /api/aircraft/detect
func (h *Handlers) DetectAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.DetectAircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Complete() {
			respondError(w, http.StatusBadRequest, constants.MsgDetectionFieldsNeeded)
			return
		}

		result, err := h.deps.Services.Detections.RegisterDetection(r.Context(), &req)
		if err != nil {
			logging.Error("Failed to register detection",
				"aircraft_identifier", req.AircraftIdentifier,
				"error", err.Error(),
			)
			respondError(w, http.StatusInternalServerError, constants.MsgDetectionFailed)
			return
		}

		h.deps.Metrics.DetectionsClassifiedTotal.WithLabelValues(string(result.Level)).Inc()

		respondJSON(w, http.StatusCreated, dtos.DetectAircraftResponse{
			Message:            "Aircraft detected and classified successfully",
			DetectionID:        result.DetectionID,
			AircraftIdentifier: req.AircraftIdentifier,
			InitialThreatLevel: string(result.Level),
		})
	}
}

// ListAircraft handles GET /api/aircraft/all
func (h *Handlers) ListAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.deps.Repo.Detections.ListWithThreats(r.Context())
		if err != nil {
			logging.Error("Failed to list detected aircraft", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgAircraftListFailed)
			return
		}

		entries := make([]dtos.AircraftListEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, dtos.AircraftListEntry{
				DetectionID:        row.DetectionID,
				AircraftIdentifier: row.AircraftIdentifier,
				DetectionTime:      dtos.FormatTime(row.DetectionTime),
				Latitude:           row.Latitude,
				Longitude:          row.Longitude,
				AltitudeFt:         row.AltitudeFt,
				SpeedKts:           row.SpeedKts,
				HeadingDeg:         row.HeadingDeg,
				RadarStationName:   row.RadarStationName,
				ThreatID:           row.ThreatID,
				ThreatLevel:        string(row.ThreatLevel),
				ClassificationTime: dtos.FormatTime(row.ClassificationTime),
				Source:             row.Source,
			})
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
