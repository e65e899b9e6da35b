package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/pkg/auth"
)

// adminRequest fires req against handler with a bearer token for role.
func adminRequest(t *testing.T, handler http.Handler, role, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	token, err := auth.GenerateToken("65b000000000000000000001", role)
	require.NoError(t, err)

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// The admin account lifecycle through the real route table: a valid admin
// token passes the auth and role middleware, and the account CRUD answers
// the dashboard's envelopes with the password stripped throughout.
func TestAdminUserRoutes(t *testing.T) {
	handler := newTestHandler(t)

	// Create.
	rec := adminRequest(t, handler, "admin", http.MethodPost, "/adduser", map[string]interface{}{
		"firstname": "Maria",
		"lastname":  "Santos",
		"email":     "maria@example.com",
		"password":  "staff-secret",
		"role":      "admin",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User added successfully", decodeBody(t, rec)["message"])

	// List: a bare array, password absent.
	rec = adminRequest(t, handler, "admin", http.MethodGet, "/viewusers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "maria@example.com", users[0]["email"])
	assert.NotContains(t, users[0], "password")
	id, ok := users[0]["_id"].(string)
	require.True(t, ok)

	// Update without a password: profile changes, credential survives.
	rec = adminRequest(t, handler, "admin", http.MethodPost, "/updateuser", map[string]interface{}{
		"_id":       id,
		"firstname": "Maria Clara",
		"lastname":  "Santos",
		"email":     "maria@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Maria Clara", user["firstname"])
	assert.NotContains(t, user, "password")

	// Delete, then the list is empty again.
	rec = adminRequest(t, handler, "admin", http.MethodPost, "/deleteuser", map[string]interface{}{"_id": id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", decodeBody(t, rec)["message"])

	rec = adminRequest(t, handler, "admin", http.MethodGet, "/viewusers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Empty(t, users)
}

func TestAdminRoutes_NonAdminForbidden(t *testing.T) {
	handler := newTestHandler(t)

	rec := adminRequest(t, handler, "user", http.MethodGet, "/viewusers", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeBody(t, rec)["message"])
}

func TestAdminRoutes_BadTokenRejected(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/viewusers", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["message"])
}
