package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/service"
	"go.uber.org/zap"
)

type InterventionHandler struct {
	interventionService *service.InterventionService
	logger              *zap.Logger
}

func NewInterventionHandler(interventionService *service.InterventionService, logger *zap.Logger) *InterventionHandler {
	return &InterventionHandler{
		interventionService: interventionService,
		logger:              logger,
	}
}

// Plan handles POST /interventions.
func (h *InterventionHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req domain.PlanInterventionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	intervention, err := h.interventionService.Plan(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		domain.MessageResponse
		Intervention *domain.InterventionDTO `json:"intervention"`
	}{
		MessageResponse: domain.MessageResponse{
			Message: fmt.Sprintf(
				"Intervention planned successfully! Client: %s, Payee: %s, Start Date: %s, End Date: %s, Type of Intervention: %s, Technician: %s, Number of Intervention Days: %d",
				intervention.Client, intervention.Payee, intervention.StartDate,
				intervention.EndDate, intervention.Type, intervention.Technician, intervention.Days,
			),
		},
		Intervention: intervention,
	})
}

// List handles GET /interventions, the intervention summary.
func (h *InterventionHandler) List(w http.ResponseWriter, r *http.Request) {
	interventions, err := h.interventionService.List()
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	resp := domain.InterventionListResponse{Interventions: interventions}
	if len(interventions) == 0 {
		resp.Message = "No interventions available."
	}
	respondJSON(w, http.StatusOK, resp)
}
