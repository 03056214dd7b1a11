package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/client/store"
)

func newTestRouter(t *testing.T) (*chi.Mux, *client.Service) {
	t.Helper()

	svc := client.NewService(store.New())

	r := chi.NewRouter()
	r.Route("/clients", NewHandler(svc).Routes)

	return r, svc
}

func TestCreateClient(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Acme Corp","email":"billing@acme.test","status":"Active"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp clientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "billing@acme.test", resp.Email)
	assert.Equal(t, client.StatusActive, resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateClientValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "MissingName", body: `{"email":"a@b.test","status":"Active"}`},
		{name: "MissingEmail", body: `{"name":"Acme","status":"Active"}`},
		{name: "BadStatus", body: `{"name":"Acme","email":"a@b.test","status":"Gone"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListClientsFiltered(t *testing.T) {
	router, svc := newTestRouter(t)

	for _, p := range []client.CreateParams{
		{Name: "Alpha", Email: "alpha@acme.test", Status: client.StatusActive},
		{Name: "Beta", Email: "beta@acme.test", Status: client.StatusProspect},
	} {
		_, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/clients?status=Prospect", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []clientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Beta", resp[0].Name)
}

func TestGetClientNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteClient(t *testing.T) {
	router, svc := newTestRouter(t)

	c, err := svc.Create(context.Background(), client.CreateParams{
		Name: "Acme", Email: "a@b.test", Status: client.StatusActive,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+c.ID.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = svc.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}
