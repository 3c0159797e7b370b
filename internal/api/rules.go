package api

import (
	"net/http"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/logging"
)

// ListRules handles GET /api/rules
func (h *Handlers) ListRules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := h.deps.Services.Rules.ListAll(r.Context())
		if err != nil {
			logging.Error("Failed to list classification rules", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgRulesListFailed)
			return
		}
		respondJSON(w, http.StatusOK, rules)
	}
}
