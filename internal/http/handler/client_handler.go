package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/export"
	"github.com/sacofrina/gmao-api/internal/service"
	"go.uber.org/zap"
)

type ClientHandler struct {
	clientService *service.ClientService
	logger        *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// Create handles POST /clients. A client whose folder already exists under
// the same classification and payee is rejected with a conflict.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		domain.MessageResponse
		Client *domain.ClientDTO `json:"client"`
	}{
		MessageResponse: domain.MessageResponse{
			Message: fmt.Sprintf("Client %s created successfully under payee %s.", client.Name, client.Payee),
		},
		Client: client,
	})
}

// List handles GET /clients with an optional payee filter.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.URL.Query().Get("payee"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	resp := domain.ClientListResponse{Clients: clients}
	if len(clients) == 0 {
		resp.Message = "No clients available."
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetByName handles GET /clients/{name}.
func (h *ClientHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	client, err := h.clientService.Get(chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// Update handles PUT /clients/{name}, gated by the admin password carried
// in the request body.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req domain.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	client, err := h.clientService.Update(name, &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		domain.MessageResponse
		Client *domain.ClientDTO `json:"client"`
	}{
		MessageResponse: domain.MessageResponse{
			Message: fmt.Sprintf("Data for client '%s' updated successfully.", name),
		},
		Client: client,
	})
}

// Delete handles DELETE /clients/{name}. Only the record is removed; the
// client's folders and filed documents stay on disk.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req domain.DeleteClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.clientService.Delete(name, req.Password); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{
		Message: fmt.Sprintf("Client '%s' deleted successfully.", name),
	})
}

// Export handles GET /clients/export, streaming the client list as an
// Excel workbook.
func (h *ClientHandler) Export(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.URL.Query().Get("payee"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	workbook, err := export.ClientsWorkbook(clients)
	if err != nil {
		h.logger.Error("failed to build clients workbook", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		h.logger.Error("failed to write clients workbook", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("clients_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buffer.Bytes())
}
