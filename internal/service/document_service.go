package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"go.uber.org/zap"
)

type DocumentService struct {
	clientRepo *repository.ClientRepository
	taxonomy   *taxonomy.Manager
	logger     *zap.Logger
}

func NewDocumentService(
	clientRepo *repository.ClientRepository,
	taxonomy *taxonomy.Manager,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		clientRepo: clientRepo,
		taxonomy:   taxonomy,
		logger:     logger,
	}
}

// File writes the uploaded document under its original filename into the
// taxonomy slot named by the request. A file with the same name is
// overwritten silently.
//
// Purchase orders (Service_BC, PDR_BC) must reference an existing offer
// document; the selected offer's path is echoed in the response message
// only and is not persisted anywhere.
func (s *DocumentService) File(req *domain.FileDocumentRequest, filename string, data io.Reader) (*domain.DocumentFiledResponse, error) {
	if !domain.ValidDocType(req.DocType) {
		return nil, fmt.Errorf("%w: unknown document type '%s'", ErrInvalidInput, req.DocType)
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}

	if err := s.guardPayee(req.ClientName, req.Payee); err != nil {
		return nil, err
	}

	var linkedOffer string
	if req.DocType.IsBC() {
		offer, err := s.resolveOffer(req)
		if err != nil {
			return nil, err
		}
		linkedOffer = offer
	}

	dir := s.taxonomy.DocumentDir(req.Classification, req.Payee, req.ClientName, req.Month, req.DocType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}

	savePath := filepath.Join(dir, filename)
	out, err := os.Create(savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create document file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, data); err != nil {
		os.Remove(savePath)
		return nil, fmt.Errorf("failed to write document file: %w", err)
	}

	s.logger.Info("document filed",
		zap.String("client", req.ClientName),
		zap.String("doc_type", string(req.DocType)),
		zap.String("month", req.Month),
		zap.String("path", savePath),
	)

	message := fmt.Sprintf("%s added for client %s, month %s.", req.DocType, req.ClientName, req.Month)
	if linkedOffer != "" {
		message = fmt.Sprintf("%s Linked to the offer: %s.", message, linkedOffer)
	}
	return &domain.DocumentFiledResponse{
		Message:     message,
		Path:        savePath,
		LinkedOffer: linkedOffer,
	}, nil
}

// ListOffers returns the offer documents available for the BC picker.
func (s *DocumentService) ListOffers(classification domain.Classification, payee, clientName, offerMonth string, offerType domain.DocType) ([]string, error) {
	if offerType != domain.DocTypeServiceOffer && offerType != domain.DocTypePDROffer {
		return nil, fmt.Errorf("%w: '%s' is not an offer type", ErrInvalidInput, offerType)
	}
	if err := validateMonth(offerMonth); err != nil {
		return nil, err
	}
	if err := s.guardPayee(clientName, payee); err != nil {
		return nil, err
	}
	return s.taxonomy.ListDocuments(classification, payee, clientName, offerMonth, offerType)
}

// resolveOffer checks that the offer named by a BC request exists on disk
// and returns its full path.
func (s *DocumentService) resolveOffer(req *domain.FileDocumentRequest) (string, error) {
	if req.OfferType == "" || req.OfferMonth == "" || req.OfferFile == "" {
		return "", fmt.Errorf("%w: a %s must reference an existing offer (offerType, offerMonth and offerFile are required)",
			ErrInvalidInput, req.DocType)
	}
	if err := validateMonth(req.OfferMonth); err != nil {
		return "", err
	}

	offers, err := s.taxonomy.ListDocuments(req.Classification, req.Payee, req.ClientName, req.OfferMonth, req.OfferType)
	if err != nil {
		return "", err
	}
	if len(offers) == 0 {
		return "", fmt.Errorf("%w: no offers found for this client and month", ErrOfferNotFound)
	}
	for _, offer := range offers {
		if filepath.Base(offer) == req.OfferFile {
			return offer, nil
		}
	}
	return "", fmt.Errorf("%w: offer '%s' does not exist under %s/%s", ErrOfferNotFound, req.OfferFile, req.OfferMonth, req.OfferType)
}

// guardPayee aborts the operation when the selected payee does not match
// the payee stored on the client record.
func (s *DocumentService) guardPayee(clientName, payee string) error {
	clients, err := s.clientRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	client, ok := clients[clientName]
	if !ok {
		return ErrClientNotFound
	}
	if client.Payee != payee {
		return &PayeeMismatchError{Client: clientName, Stored: client.Payee, Given: payee}
	}
	return nil
}

// validateMonth parses a free-text month field and rejects anything outside
// 01..12 with a clear input error.
func validateMonth(month string) error {
	n, err := strconv.Atoi(month)
	if err != nil {
		return fmt.Errorf("%w: month '%s' is not a number", ErrInvalidInput, month)
	}
	if n < 1 || n > 12 {
		return fmt.Errorf("%w: month '%s' must be between 01 and 12", ErrInvalidInput, month)
	}
	return nil
}
