package handlers

import (
	"errors"
	"net/http"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// AssignmentHandler serves the resolution endpoint.
type AssignmentHandler struct{ uc resolverUsecase }

// NewAssignmentHandler wires a resolverUsecase into HTTP handlers.
func NewAssignmentHandler(uc resolverUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Resolve handles POST /assignments/resolve.
func (h *AssignmentHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	scope := domain.Scope{CompanyID: req.CompanyID, SiteID: req.SiteID}

	res, err := h.uc.ResolveSite(r.Context(), scope)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, resolutionToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
