package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planInterventionBody(start, end string) *domain.PlanInterventionRequest {
	return &domain.PlanInterventionRequest{
		ClientName: "Acme",
		Payee:      "Morocco",
		StartDate:  start,
		EndDate:    end,
		Type:       domain.InterventionPreventive,
		Technician: domain.Technicians[0],
		Status:     domain.StatusPlan,
	}
}

func TestInterventionHandler_Plan(t *testing.T) {
	r, _ := newTestServer(t)
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodPost, "/api/v1/interventions", planInterventionBody("2024-05-01", "2024-05-03"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Message      string                  `json:"message"`
		Intervention *domain.InterventionDTO `json:"intervention"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Intervention planned successfully!")
	assert.Contains(t, resp.Message, "Number of Intervention Days: 3")
	assert.Equal(t, 3, resp.Intervention.Days)
}

func TestInterventionHandler_Plan_EndBeforeStart(t *testing.T) {
	r, _ := newTestServer(t)
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	rec := doJSON(t, r, http.MethodPost, "/api/v1/interventions", planInterventionBody("2024-05-03", "2024-05-01"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterventionHandler_Plan_UnknownStatus(t *testing.T) {
	r, _ := newTestServer(t)
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))

	body := planInterventionBody("2024-05-01", "2024-05-03")
	body.Status = "Maybe"
	rec := doJSON(t, r, http.MethodPost, "/api/v1/interventions", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "status")
}

func TestInterventionHandler_List(t *testing.T) {
	r, _ := newTestServer(t)
	doJSON(t, r, http.MethodPost, "/api/v1/clients", createClientBody("Acme", "Morocco"))
	doJSON(t, r, http.MethodPost, "/api/v1/interventions", planInterventionBody("2024-05-01", "2024-05-03"))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/interventions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.InterventionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Interventions, 1)
	assert.Equal(t, "Acme", resp.Interventions[0].Client)
}

func TestInterventionHandler_List_Empty(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/interventions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.InterventionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Interventions)
	assert.Equal(t, "No interventions available.", resp.Message)
}
