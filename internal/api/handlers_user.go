// Package api holds the HTTP handlers and router for the profile service.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/actuli/actuli-api/internal/api/respond"
	"github.com/actuli/actuli-api/internal/api/validate"
	"github.com/actuli/actuli-api/internal/auth"
	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/services"
)

// UserHandler serves the caller's own record. Identity comes from the
// resolved principal, never from the path.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// GetMe handles GET /api/user, auto-creating a bare record on first sight.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.WriteError(w, model.ErrUnauthorized)
		return
	}
	u, err := h.svc.GetOrCreate(r.Context(), p.ID)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateMe handles PUT /api/user with a partial record to merge.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.WriteError(w, model.ErrUnauthorized)
		return
	}
	var in model.AppUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Update(r.Context(), p.ID, &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// DeleteMe handles DELETE /api/user.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.WriteError(w, model.ErrUnauthorized)
		return
	}
	if err := h.svc.Delete(r.Context(), p.ID); err != nil {
		respond.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMyContact handles PUT /api/user/profile/contact.
func (h *UserHandler) UpdateMyContact(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.WriteError(w, model.ErrUnauthorized)
		return
	}
	var in model.Contact
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.Email(in.Email); err != nil {
		respond.WriteError(w, err)
		return
	}
	u, err := h.svc.UpdateContact(r.Context(), p.ID, &in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
