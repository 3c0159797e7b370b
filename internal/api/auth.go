package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"skyshield/bastion/internal/auth"
	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/services"
)

// Login handles POST /api/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, constants.MsgLoginFieldsRequired)
			return
		}

		resp, err := h.deps.Services.Auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				respondError(w, http.StatusUnauthorized, constants.MsgInvalidCredentials)
				return
			}
			logging.Error("Login failed", "username", req.Username, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgLoginFailed)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

// CurrentOperator handles GET /api/operators/me (requires a session
// token).
func (h *Handlers) CurrentOperator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetOperatorClaims(r.Context())
		if claims == nil {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		respondJSON(w, http.StatusOK, dtos.OperatorInfo{
			ID:       claims.OperatorID,
			Username: claims.Username,
			Role:     claims.Role,
		})
	}
}
