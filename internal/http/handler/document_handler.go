package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/service"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	documentService   *service.DocumentService
	maxUploadMB       int64
	allowedExtensions map[string]bool
	logger            *zap.Logger
}

func NewDocumentHandler(documentService *service.DocumentService, maxUploadMB int64, allowedExtensions []string, logger *zap.Logger) *DocumentHandler {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &DocumentHandler{
		documentService:   documentService,
		maxUploadMB:       maxUploadMB,
		allowedExtensions: allowed,
		logger:            logger,
	}
}

// Upload handles POST /documents as a multipart form. The file travels in
// the "file" field; the taxonomy coordinates and the BC offer reference
// come as form values.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !h.allowedExtensions[ext] {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("File type '.%s' is not accepted", ext))
		return
	}

	req := domain.FileDocumentRequest{
		ClientName:     r.FormValue("clientName"),
		Payee:          r.FormValue("payee"),
		Classification: domain.Classification(r.FormValue("classification")),
		Month:          r.FormValue("month"),
		DocType:        domain.DocType(r.FormValue("docType")),
		OfferType:      domain.DocType(r.FormValue("offerType")),
		OfferMonth:     r.FormValue("offerMonth"),
		OfferFile:      r.FormValue("offerFile"),
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.documentService.File(&req, filepath.Base(header.Filename), file)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// ListOffers handles GET /documents/offers, the picker a purchase order
// upload chooses its referenced offer from.
func (h *DocumentHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offers, err := h.documentService.ListOffers(
		domain.Classification(q.Get("classification")),
		q.Get("payee"),
		q.Get("client"),
		q.Get("month"),
		domain.DocType(q.Get("type")),
	)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	resp := domain.OfferListResponse{Offers: offers}
	if len(offers) == 0 {
		resp.Offers = []string{}
		resp.Message = "No offers found for this client and month."
	}
	respondJSON(w, http.StatusOK, resp)
}
