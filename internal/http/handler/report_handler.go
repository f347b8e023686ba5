package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/export"
	"github.com/sacofrina/gmao-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// QuickSearch handles POST /reports/search: a flat row list of matching
// documents across the selected payees, clients and month range.
func (h *ReportHandler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.reportService.QuickSearch(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Summary handles POST /reports/summary: the offers/BC result table plus
// per-month counts for the bar chart.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.reportService.Summary(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExportSummary handles GET /reports/summary/export, streaming the summary
// as an Excel workbook with an embedded bar chart. Payees and clients
// repeat as query parameters.
func (h *ReportHandler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.SearchRequest{
		Payees:     q["payee"],
		Clients:    q["client"],
		DocType:    domain.DocType(q.Get("type")),
		StartMonth: q.Get("startMonth"),
		EndMonth:   q.Get("endMonth"),
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	summary, err := h.reportService.Summary(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	workbook, err := export.SummaryWorkbook(req.DocType, summary)
	if err != nil {
		h.logger.Error("failed to build summary workbook", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		h.logger.Error("failed to write summary workbook", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("summary_%s_%s.xlsx", req.DocType, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buffer.Bytes())
}
