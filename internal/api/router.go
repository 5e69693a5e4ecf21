package api

import (
	"github.com/gorilla/mux"

	"github.com/actuli/actuli-api/internal/api/recovery"
	"github.com/actuli/actuli-api/internal/api/security"
	"github.com/actuli/actuli-api/internal/auth"
	"github.com/actuli/actuli-api/internal/services"
)

// NewRouter wires HTTP routes to handlers. The request screening gate and
// panic recovery run on every route; the bearer-token gate covers only the
// caller's own-record routes.
func NewRouter(userSvc *services.UserService, typeSvc *services.TypeService, authorizer auth.Authorizer) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(security.Middleware)

	// Caller's own record
	userHandler := NewUserHandler(userSvc)
	me := root.PathPrefix("/api/user").Subrouter()
	me.Use(auth.RequireAuth(authorizer))
	me.HandleFunc("", userHandler.GetMe).Methods("GET")
	me.HandleFunc("", userHandler.UpdateMe).Methods("PUT")
	me.HandleFunc("", userHandler.DeleteMe).Methods("DELETE")
	me.HandleFunc("/profile/contact", userHandler.UpdateMyContact).Methods("PUT")

	// Record-by-id ops surface
	adminHandler := NewAdminUserHandler(userSvc)
	root.HandleFunc("/api/users", adminHandler.ListUsers).Methods("GET")
	root.HandleFunc("/api/users", adminHandler.CreateUser).Methods("POST")
	root.HandleFunc("/api/users/{userId}", adminHandler.GetUser).Methods("GET")
	root.HandleFunc("/api/users/{userId}", adminHandler.UpdateUser).Methods("PUT")
	root.HandleFunc("/api/users/{userId}", adminHandler.DeleteUser).Methods("DELETE")

	// Reference-data catalog
	typeHandler := NewTypeHandler(typeSvc)
	root.HandleFunc("/api/types", typeHandler.ListTypes).Methods("GET")
	root.HandleFunc("/api/types", typeHandler.CreateType).Methods("POST")
	root.HandleFunc("/api/types/update", typeHandler.RefreshTypes).Methods("GET")
	root.HandleFunc("/api/types/{typeId}", typeHandler.GetType).Methods("GET")
	root.HandleFunc("/api/types/{typeId}", typeHandler.UpdateType).Methods("PUT")
	root.HandleFunc("/api/types/{typeId}", typeHandler.DeleteType).Methods("DELETE")

	// Health
	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return root
}
