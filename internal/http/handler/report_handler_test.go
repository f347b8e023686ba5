package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOffer(t *testing.T, r http.Handler) {
	t.Helper()
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	rec := uploadDocument(t, r, "offer.pdf", "offer", offerFields("Service_Offer", "03"))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestReportHandler_QuickSearch(t *testing.T) {
	r, _ := newTestServer(t)
	seedOffer(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/reports/search", &domain.SearchRequest{
		Payees:     []string{"Morocco"},
		Clients:    []string{"Acme"},
		DocType:    domain.DocTypeServiceOffer,
		StartMonth: "1",
		EndMonth:   "12",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "03/2024", resp.Rows[0].Date)
}

func TestReportHandler_QuickSearch_InvalidMonth(t *testing.T) {
	r, _ := newTestServer(t)
	seedOffer(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/reports/search", &domain.SearchRequest{
		Payees:     []string{"Morocco"},
		Clients:    []string{"Acme"},
		DocType:    domain.DocTypeServiceOffer,
		StartMonth: "0",
		EndMonth:   "12",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_QuickSearch_MissingSelection(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/reports/search", &domain.SearchRequest{
		DocType:    domain.DocTypeServiceOffer,
		StartMonth: "1",
		EndMonth:   "12",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "payees")
}

func TestReportHandler_Summary(t *testing.T) {
	r, _ := newTestServer(t)
	seedOffer(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/reports/summary", &domain.SearchRequest{
		Payees:     []string{"Morocco"},
		Clients:    []string{"Acme"},
		DocType:    domain.DocTypeServiceOffer,
		StartMonth: "1",
		EndMonth:   "12",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 1, resp.MonthCounts["03"])
	assert.Len(t, resp.MonthCounts, 12)
}

func TestReportHandler_ExportSummary(t *testing.T) {
	r, _ := newTestServer(t)
	seedOffer(t, r)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/summary/export?payee=Morocco&client=Acme&type=Service_Offer&startMonth=1&endMonth=12", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "summary_Service_Offer_")
	assert.NotZero(t, rec.Body.Len())
}
