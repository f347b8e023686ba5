package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/service"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "0000"

// newTestServer wires the full handler stack over a temp base directory and
// returns the router together with the base directory.
func newTestServer(t *testing.T) (*chi.Mux, string) {
	t.Helper()
	baseDir := t.TempDir()

	logger := zap.NewNop()
	clientRepo := repository.NewClientRepository(baseDir)
	interventionRepo := repository.NewInterventionRepository(baseDir)
	tax := taxonomy.NewManager(baseDir)

	clientSvc := service.NewClientService(clientRepo, tax, testPassword, logger)
	docSvc := service.NewDocumentService(clientRepo, tax, logger)
	interventionSvc := service.NewInterventionService(interventionRepo, clientRepo, logger)
	reportSvc := service.NewReportService(clientRepo, tax, logger)

	clientHandler := NewClientHandler(clientSvc, logger)
	docHandler := NewDocumentHandler(docSvc, 10, []string{"pdf", "docx", "jpg"}, logger)
	interventionHandler := NewInterventionHandler(interventionSvc, logger)
	reportHandler := NewReportHandler(reportSvc, logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", clientHandler.Create)
			r.Get("/", clientHandler.List)
			r.Get("/export", clientHandler.Export)
			r.Get("/{name}", clientHandler.GetByName)
			r.Put("/{name}", clientHandler.Update)
			r.Delete("/{name}", clientHandler.Delete)
		})
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", docHandler.Upload)
			r.Get("/offers", docHandler.ListOffers)
		})
		r.Route("/interventions", func(r chi.Router) {
			r.Post("/", interventionHandler.Plan)
			r.Get("/", interventionHandler.List)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Post("/search", reportHandler.QuickSearch)
			r.Post("/summary", reportHandler.Summary)
			r.Get("/summary/export", reportHandler.ExportSummary)
		})
	})
	return r, baseDir
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createClientBody(name, payee string) *domain.CreateClientRequest {
	return &domain.CreateClientRequest{
		Name:           name,
		Payee:          payee,
		Classification: domain.ClassificationOthers,
		Sector:         domain.SectorAgro,
		NumBoilers:     2,
		BurnerType:     domain.BurnerSaackeSKVA,
	}
}

func TestClientHandler_Create(t *testing.T) {
	r, baseDir := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Client  *domain.ClientDTO `json:"client"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Client Acme created successfully under payee Morocco.", resp.Message)
	assert.Equal(t, "Morocco", resp.Client.Payee)

	assert.DirExists(t, filepath.Join(baseDir, "Others", "Morocco", "Acme", "07", "Service_Offer"))
}

func TestClientHandler_Create_Duplicate(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClientHandler_Create_ValidationError(t *testing.T) {
	r, _ := newTestServer(t)

	body := createClientBody("Acme", "Morocco")
	body.Sector = "Banking"
	rec := doJSON(t, r, http.MethodPost, "/api/v1/clients", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "sector")
}

func TestClientHandler_Create_UnknownPayee(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Atlantis"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientHandler_List_Empty(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ClientListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Clients)
	assert.Equal(t, "No clients available.", resp.Message)
}

func TestClientHandler_List_FilterByPayee(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Bravo", "Tunisia"))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/clients?payee=Tunisia", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ClientListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "Bravo", resp.Clients[0].Name)
}

func TestClientHandler_GetByName_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/clients/Ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientHandler_Update(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodPut, "/api/v1/clients/Acme", &domain.UpdateClientRequest{
		Password:   testPassword,
		Payee:      "Tunisia",
		Sector:     domain.SectorTextile,
		NumBoilers: 3,
		BurnerType: domain.BurnerWeishaupt,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Client  *domain.ClientDTO `json:"client"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Data for client 'Acme' updated successfully.", resp.Message)
	assert.Equal(t, "Tunisia", resp.Client.Payee)
	assert.Equal(t, 3, resp.Client.NumBoilers)
}

func TestClientHandler_Update_WrongPassword(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodPut, "/api/v1/clients/Acme", &domain.UpdateClientRequest{
		Password:   "1234",
		Payee:      "Morocco",
		Sector:     domain.SectorAgro,
		NumBoilers: 2,
		BurnerType: domain.BurnerSaackeSKVA,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "Incorrect password.", apiErr.Detail)
}

func TestClientHandler_Delete(t *testing.T) {
	r, baseDir := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodDelete, "/api/v1/clients/Acme", &domain.DeleteClientRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Client 'Acme' deleted successfully.", resp.Message)

	// The record is gone but the folder tree stays
	rec = doJSON(t, r, http.MethodGet, "/api/v1/clients/Acme", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.DirExists(t, filepath.Join(baseDir, "Others", "Morocco", "Acme"))
}

func TestClientHandler_Delete_WrongPassword(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodDelete, "/api/v1/clients/Acme", &domain.DeleteClientRequest{Password: "1111"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientHandler_Export(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/clients/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=clients_")
	assert.NotZero(t, rec.Body.Len())
}
