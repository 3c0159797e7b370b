package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/services"
)

// ListAvailableMissiles handles GET /api/missiles/available
func (h *Handlers) ListAvailableMissiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missiles, err := h.deps.Services.Missiles.ListAvailable(r.Context())
		if err != nil {
			logging.Error("Failed to list available missiles", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgMissileListFailed)
			return
		}
		respondJSON(w, http.StatusOK, missiles)
	}
}

// AddMissile handles POST /api/missiles/add
func (h *Handlers) AddMissile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AddMissileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MissileType == "" {
			respondError(w, http.StatusBadRequest, constants.MsgMissileTypeRequired)
			return
		}

		missile, err := h.deps.Services.Missiles.AddMissile(r.Context(), req.MissileType)
		if err != nil {
			if errors.Is(err, services.ErrInventoryFull) {
				respondError(w, http.StatusForbidden,
					fmt.Sprintf("Cannot add more missiles. Maximum limit of %d reached.", constants.MaxMissileInventory))
				return
			}
			logging.Error("Failed to add missile", "missile_type", req.MissileType, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgMissileAddFailed)
			return
		}

		h.deps.Metrics.MissilesAddedTotal.Inc()

		respondJSON(w, http.StatusCreated, dtos.AddMissileResponse{
			Message: fmt.Sprintf("Missile '%s' (SN: %s) added successfully.", missile.MissileType, missile.SerialNumber),
			Missile: *missile,
		})
	}
}
