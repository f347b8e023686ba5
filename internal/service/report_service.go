package service

import (
	"fmt"
	"strconv"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"go.uber.org/zap"
)

// quickSearchTypes are the document types the quick search can scan for.
var quickSearchTypes = []domain.DocType{
	domain.DocTypeInterventionReport,
	domain.DocTypeServiceOffer,
	domain.DocTypePDROffer,
}

// summaryTypes are the document types the offers/BC summary can tally.
var summaryTypes = []domain.DocType{
	domain.DocTypeServiceOffer,
	domain.DocTypePDROffer,
	domain.DocTypeServiceBC,
	domain.DocTypePDRBC,
}

type ReportService struct {
	clientRepo *repository.ClientRepository
	taxonomy   *taxonomy.Manager
	logger     *zap.Logger
}

func NewReportService(
	clientRepo *repository.ClientRepository,
	taxonomy *taxonomy.Manager,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		clientRepo: clientRepo,
		taxonomy:   taxonomy,
		logger:     logger,
	}
}

// QuickSearch lists every matching document as a flat row list. An empty
// result is not an error; the response carries an empty-state message.
func (s *ReportService) QuickSearch(req *domain.SearchRequest) (*domain.SearchResponse, error) {
	if !docTypeIn(req.DocType, quickSearchTypes) {
		return nil, fmt.Errorf("%w: '%s' cannot be quick-searched", ErrInvalidInput, req.DocType)
	}
	start, end, err := parseMonthRange(req.StartMonth, req.EndMonth)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.SearchRow, 0)
	err = s.scan(req, start, end, func(client, monthStr string, files []string) {
		for _, file := range files {
			rows = append(rows, domain.SearchRow{
				Client: client,
				Date:   fmt.Sprintf("%s/%d", monthStr, defaultYear),
				Type:   req.DocType,
				File:   file,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	resp := &domain.SearchResponse{Rows: rows}
	if len(rows) == 0 {
		resp.Message = fmt.Sprintf("No %s found in the selected period.", req.DocType)
	}
	return resp, nil
}

// Summary tallies matching documents per month alongside the result table.
// MonthCounts always carries all twelve months so chart rendering does not
// have to fill gaps.
func (s *ReportService) Summary(req *domain.SearchRequest) (*domain.SummaryResponse, error) {
	if !docTypeIn(req.DocType, summaryTypes) {
		return nil, fmt.Errorf("%w: '%s' cannot be summarized", ErrInvalidInput, req.DocType)
	}
	start, end, err := parseMonthRange(req.StartMonth, req.EndMonth)
	if err != nil {
		return nil, err
	}

	monthCounts := make(map[string]int, 12)
	for month := 1; month <= 12; month++ {
		monthCounts[fmt.Sprintf("%02d", month)] = 0
	}

	rows := make([]domain.SummaryRow, 0)
	err = s.scan(req, start, end, func(client, monthStr string, files []string) {
		count := len(files)
		monthCounts[monthStr] += count
		for _, file := range files {
			rows = append(rows, domain.SummaryRow{
				SearchRow: domain.SearchRow{
					Client: client,
					Date:   fmt.Sprintf("%s/%d", monthStr, defaultYear),
					Type:   req.DocType,
					File:   file,
				},
				Count: count,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	resp := &domain.SummaryResponse{Rows: rows, MonthCounts: monthCounts}
	if len(rows) == 0 {
		resp.Message = fmt.Sprintf("No %s found for the selected period.", req.DocType)
	}
	return resp, nil
}

// scan walks every selected payee, client, month in [start, end] and both
// classifications, handing each non-empty directory listing to visit.
func (s *ReportService) scan(req *domain.SearchRequest, start, end int, visit func(client, monthStr string, files []string)) error {
	for _, payee := range req.Payees {
		for _, client := range req.Clients {
			for month := start; month <= end; month++ {
				monthStr := fmt.Sprintf("%02d", month)
				for _, classification := range domain.Classifications {
					files, err := s.taxonomy.ListDocuments(classification, payee, client, monthStr, req.DocType)
					if err != nil {
						return err
					}
					if len(files) == 0 {
						continue
					}
					visit(client, monthStr, files)
				}
			}
		}
	}
	return nil
}

// parseMonthRange parses the free-text month bounds. Each bound must be a
// number in 1..12; a start greater than the end scans zero months, which is
// allowed and yields an empty result.
func parseMonthRange(startMonth, endMonth string) (int, int, error) {
	start, err := strconv.Atoi(startMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start month '%s' is not a number", ErrInvalidInput, startMonth)
	}
	end, err := strconv.Atoi(endMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end month '%s' is not a number", ErrInvalidInput, endMonth)
	}
	if start < 1 || start > 12 {
		return 0, 0, fmt.Errorf("%w: start month '%s' must be between 01 and 12", ErrInvalidInput, startMonth)
	}
	if end < 1 || end > 12 {
		return 0, 0, fmt.Errorf("%w: end month '%s' must be between 01 and 12", ErrInvalidInput, endMonth)
	}
	return start, end, nil
}

func docTypeIn(d domain.DocType, set []domain.DocType) bool {
	for _, known := range set {
		if d == known {
			return true
		}
	}
	return false
}
