package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuli/actuli-api/internal/auth"
	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/services"
	storelite "github.com/actuli/actuli-api/internal/store/sqlite"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := storelite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storelite.Migrate(context.Background(), db, "app_users", "type_groups"))

	users := storelite.NewCollection[model.AppUser](db, "app_users", 2*time.Second)
	groups := storelite.NewCollection[model.TypeGroup](db, "type_groups", 2*time.Second)

	userSvc := services.NewUserService(users, zerolog.Nop())
	typeSvc := services.NewTypeService(groups, zerolog.Nop())
	return NewRouter(userSvc, typeSvc, auth.NewDevAuthorizer())
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeUser(t *testing.T, rr *httptest.ResponseRecorder) model.AppUser {
	t.Helper()
	var u model.AppUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	return u
}

func TestGetMeAutoCreates(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "sk_dev_alice", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	u := decodeUser(t, rr)
	assert.Equal(t, "alice", u.ID)
	assert.NotNil(t, u.Goals)
	assert.NotNil(t, u.Accomplishments)
	assert.NotNil(t, u.CreatedAt)

	// security headers stamped on accepted requests
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestGetMeWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateMeMerges(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "sk_dev_bob", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	name := "Bob Jones"
	rr = doJSON(t, router, http.MethodPut, "/api/user", "sk_dev_bob", model.AppUser{Name: &name})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	u := decodeUser(t, rr)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Bob Jones", *u.Name)
	assert.NotNil(t, u.ModifiedAt)

	// identity never changes through a merge
	assert.Equal(t, "bob", u.ID)
}

func TestUpdateMeAbsentUser(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPut, "/api/user", "sk_dev_ghost", model.AppUser{})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateContactDerivesFields(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "sk_dev_carol", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	line1, city, state, zip := "123 Main St", "Springfield", "IL", "62704"
	dob := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)
	rr = doJSON(t, router, http.MethodPut, "/api/user/profile/contact", "sk_dev_carol", model.Contact{
		Address1:    &line1,
		City:        &city,
		State:       &state,
		PostalCode:  &zip,
		DateOfBirth: &dob,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	u := decodeUser(t, rr)
	require.NotNil(t, u.Profile)
	require.NotNil(t, u.Profile.Contact)
	require.NotNil(t, u.Profile.Contact.Address)
	assert.Equal(t, "123 Main St\nSpringfield, IL 62704", *u.Profile.Contact.Address)
	require.NotNil(t, u.Profile.Contact.Age)
	assert.Greater(t, *u.Profile.Contact.Age, 0)
}

func TestUpdateContactRejectsBadEmail(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "sk_dev_dave", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	bad := "not-an-email"
	rr = doJSON(t, router, http.MethodPut, "/api/user/profile/contact", "sk_dev_dave", model.Contact{Email: &bad})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteMe(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/user", "sk_dev_erin", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/user", "sk_dev_erin", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/user", "sk_dev_erin", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestContentTypeRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/user", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Authorization", "Bearer sk_dev_alice")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestAdminUserSurface(t *testing.T) {
	router := newTestRouter(t)

	name := "Frank"
	rr := doJSON(t, router, http.MethodPost, "/api/users", "", model.AppUser{ID: "frank", Name: &name})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodGet, "/api/users/frank", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	u := decodeUser(t, rr)
	assert.Equal(t, "frank", u.ID)

	rr = doJSON(t, router, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var all []model.AppUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	rr = doJSON(t, router, http.MethodGet, "/api/users/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/users/frank", "", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestTypeCatalogSurface(t *testing.T) {
	router := newTestRouter(t)

	// refresh seeds the catalog from the bundled source file
	rr := doJSON(t, router, http.MethodGet, "/api/types/update", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var seeded []model.TypeGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &seeded))
	require.NotEmpty(t, seeded)

	// a second refresh keeps ids stable
	rr = doJSON(t, router, http.MethodGet, "/api/types/update", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var again []model.TypeGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &again))
	ids := make(map[string]string)
	for _, g := range seeded {
		ids[g.Name] = g.ID
	}
	for _, g := range again {
		assert.Equal(t, ids[g.Name], g.ID)
	}

	// individual CRUD
	rr = doJSON(t, router, http.MethodPost, "/api/types", "", model.TypeGroup{
		Name: "customList",
		Data: []model.TypeItem{{ID: 1, Value: "One"}},
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created model.TypeGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/types/%s", created.ID), "", model.TypeGroup{
		Name: "customList",
		Data: []model.TypeItem{{ID: 1, Value: "One"}, {ID: 2, Value: "Two"}},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated model.TypeGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Len(t, updated.Data, 2)

	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/types/%s", created.ID), "", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/types/%s", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	BindServiceHealth(func() bool { return true })
	defer BindServiceHealth(func() bool { return false })

	rr := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
