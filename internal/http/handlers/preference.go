package handlers

import (
	"errors"
	"net/http"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// PreferenceHandler serves HTTP endpoints for preference submissions, manual
// pins and the auto-assign toggle.
type PreferenceHandler struct{ uc preferenceUsecase }

// NewPreferenceHandler wires a preferenceUsecase into HTTP handlers.
func NewPreferenceHandler(uc preferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// Submit handles POST /preferences.
func (h *PreferenceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitPreferencesRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	id, err := h.uc.Submit(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "driver or job not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "site inactive")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Latest handles GET /preferences: one cleaned entry per driver.
func (h *PreferenceHandler) Latest(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.Latest(r.Context(), scope)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, preferencesToResponse(list))
}

// Pin handles POST /assignments/pin.
func (h *PreferenceHandler) Pin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	id, err := h.uc.Pin(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "driver or job not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "site inactive")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Unpin handles DELETE /assignments/pin/{jobID}.
func (h *PreferenceHandler) Unpin(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromURL(r, "jobID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid job id")
		return
	}
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	err = h.uc.Unpin(r.Context(), scope, jobID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// ListPins handles GET /assignments/pins.
func (h *PreferenceHandler) ListPins(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.ListPins(r.Context(), scope)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, pinsToResponse(list))
}

// GetAutoAssign handles GET /settings/auto-assign.
func (h *PreferenceHandler) GetAutoAssign(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	enabled, err := h.uc.AutoAssign(r.Context(), scope)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"enabled": enabled})
}

// SetAutoAssign handles PUT /settings/auto-assign.
func (h *PreferenceHandler) SetAutoAssign(w http.ResponseWriter, r *http.Request) {
	var req autoAssignRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	scope := domain.Scope{CompanyID: req.CompanyID, SiteID: req.SiteID}

	err := h.uc.SetAutoAssign(r.Context(), scope, req.Enabled)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]bool{"enabled": req.Enabled})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "site not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "site inactive")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
