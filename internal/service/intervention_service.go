package service

import (
	"fmt"
	"time"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"go.uber.org/zap"
)

type InterventionService struct {
	interventionRepo *repository.InterventionRepository
	clientRepo       *repository.ClientRepository
	logger           *zap.Logger
}

func NewInterventionService(
	interventionRepo *repository.InterventionRepository,
	clientRepo *repository.ClientRepository,
	logger *zap.Logger,
) *InterventionService {
	return &InterventionService{
		interventionRepo: interventionRepo,
		clientRepo:       clientRepo,
		logger:           logger,
	}
}

// Plan validates and appends a new intervention. The list is append-only;
// saved interventions are never updated or deleted.
func (s *InterventionService) Plan(req *domain.PlanInterventionRequest) (*domain.InterventionDTO, error) {
	start, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date '%s' must be formatted as %s", ErrInvalidInput, req.StartDate, domain.DateFormat)
	}
	end, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date '%s' must be formatted as %s", ErrInvalidInput, req.EndDate, domain.DateFormat)
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	client, ok := clients[req.ClientName]
	if !ok {
		return nil, ErrClientNotFound
	}
	if client.Payee != req.Payee {
		return nil, &PayeeMismatchError{Client: req.ClientName, Stored: client.Payee, Given: req.Payee}
	}

	days := int(end.Sub(start).Hours()/24) + 1

	intervention := domain.Intervention{
		Client:     req.ClientName,
		Payee:      req.Payee,
		StartDate:  start.Format(domain.DateFormat),
		EndDate:    end.Format(domain.DateFormat),
		Days:       days,
		Type:       req.Type,
		Technician: req.Technician,
		Status:     req.Status,
	}

	interventions, err := s.interventionRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load interventions: %w", err)
	}
	interventions = append(interventions, intervention)
	if err := s.interventionRepo.Save(interventions); err != nil {
		return nil, fmt.Errorf("failed to save interventions: %w", err)
	}

	s.logger.Info("intervention planned",
		zap.String("client", req.ClientName),
		zap.String("technician", req.Technician),
		zap.Int("days", days),
	)

	dto := toInterventionDTO(&intervention)
	return &dto, nil
}

// List returns the intervention summary. Records referencing a client that
// no longer has a store entry are skipped; deleting a client orphans its
// interventions rather than cascading.
func (s *InterventionService) List() ([]domain.InterventionDTO, error) {
	interventions, err := s.interventionRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load interventions: %w", err)
	}
	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	dtos := make([]domain.InterventionDTO, 0, len(interventions))
	for i := range interventions {
		if _, ok := clients[interventions[i].Client]; !ok {
			continue
		}
		dtos = append(dtos, toInterventionDTO(&interventions[i]))
	}
	return dtos, nil
}

func toInterventionDTO(in *domain.Intervention) domain.InterventionDTO {
	return domain.InterventionDTO{
		Client:     in.Client,
		Payee:      in.Payee,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Days:       in.Days,
		Type:       in.Type,
		Technician: in.Technician,
		Status:     in.Status,
	}
}
