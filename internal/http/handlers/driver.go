package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// DriverHandler serves HTTP endpoints for driver resources.
type DriverHandler struct{ uc driverUsecase }

// NewDriverHandler wires a driverUsecase into HTTP handlers.
func NewDriverHandler(uc driverUsecase) *DriverHandler { return &DriverHandler{uc: uc} }

// GetByID handles GET /driver/{id}.
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.uc.Get(r.Context(), scope, id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, driverToResponse(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.List(r.Context(), scope)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, driversToResponse(list))
}

// Create handles POST /driver.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/driver/"+strconv.FormatInt(id, 10))
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "employee id already exists")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /driver with partial updates from the request body.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDriverRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	scope := domain.Scope{CompanyID: req.CompanyID, SiteID: req.SiteID}

	d, err := h.uc.Update(r.Context(), scope, req.toModel())
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, driverToResponse(*d))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /driver/{id}.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	err = h.uc.Delete(r.Context(), scope, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
