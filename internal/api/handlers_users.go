package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/actuli/actuli-api/internal/api/respond"
	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/services"
)

// AdminUserHandler serves /api/users, the record-by-id surface used by ops
// tooling. It sits outside the bearer-token gate; see the deployment notes
// before exposing it publicly.
type AdminUserHandler struct {
	svc *services.UserService
}

func NewAdminUserHandler(svc *services.UserService) *AdminUserHandler {
	return &AdminUserHandler{svc: svc}
}

// ListUsers handles GET /api/users.
func (h *AdminUserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /api/users.
func (h *AdminUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in model.AppUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// GetUser handles GET /api/users/{userId}.
func (h *AdminUserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateUser handles PUT /api/users/{userId} with a partial record to merge.
func (h *AdminUserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in model.AppUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Update(r.Context(), mux.Vars(r)["userId"], &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// DeleteUser handles DELETE /api/users/{userId}.
func (h *AdminUserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["userId"]); err != nil {
		respond.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
