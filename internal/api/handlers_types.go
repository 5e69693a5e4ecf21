package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/actuli/actuli-api/internal/api/respond"
	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/services"
)

// TypeHandler serves the reference-data catalog.
type TypeHandler struct {
	svc *services.TypeService
}

func NewTypeHandler(svc *services.TypeService) *TypeHandler { return &TypeHandler{svc: svc} }

// ListTypes handles GET /api/types.
func (h *TypeHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, groups)
}

// GetType handles GET /api/types/{typeId}.
func (h *TypeHandler) GetType(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(r.Context(), mux.Vars(r)["typeId"])
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, g)
}

// CreateType handles POST /api/types.
func (h *TypeHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var in model.TypeGroup
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	g, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, g)
}

// UpdateType handles PUT /api/types/{typeId}, replacing the group wholesale.
func (h *TypeHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	var in model.TypeGroup
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	g, err := h.svc.Update(r.Context(), mux.Vars(r)["typeId"], &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, g)
}

// DeleteType handles DELETE /api/types/{typeId}.
func (h *TypeHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["typeId"]); err != nil {
		respond.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RefreshTypes handles GET /api/types/update, reconciling the catalog
// against the embedded source file.
func (h *TypeHandler) RefreshTypes(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Refresh(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, groups)
}
