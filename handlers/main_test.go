package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bistro/database"
)

// envelope mirrors the uniform response wrapper.
type envelope struct {
	Data    []map[string]interface{} `json:"data"`
	Count   int                      `json:"count"`
	Error   interface{}              `json:"error"`
	Message string                   `json:"message"`
}

func setupMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	database.Bistro = db
	t.Cleanup(func() { db.Close() })
	return mock
}

func testRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	RegisterCustomerRoutes(router)
	RegisterMenuItemRoutes(router)
	RegisterOrderRoutes(router)
	RegisterOrderItemRoutes(router)
	RegisterPaymentRoutes(router)
	return router
}

func doRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func fieldErrors(t *testing.T, env envelope) []string {
	t.Helper()
	list, ok := env.Error.([]interface{})
	require.True(t, ok, "expected a field error list, got %v", env.Error)
	fields := make([]string, 0, len(list))
	for _, item := range list {
		desc, ok := item.(map[string]interface{})
		require.True(t, ok)
		fields = append(fields, desc["field"].(string))
	}
	return fields
}
