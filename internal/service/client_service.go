package service

import (
	"crypto/subtle"
	"fmt"
	"sort"

	"github.com/sacofrina/gmao-api/internal/domain"
	"github.com/sacofrina/gmao-api/internal/repository"
	"github.com/sacofrina/gmao-api/internal/taxonomy"
	"go.uber.org/zap"
)

type ClientService struct {
	clientRepo    *repository.ClientRepository
	taxonomy      *taxonomy.Manager
	adminPassword string
	logger        *zap.Logger
}

func NewClientService(
	clientRepo *repository.ClientRepository,
	taxonomy *taxonomy.Manager,
	adminPassword string,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:    clientRepo,
		taxonomy:      taxonomy,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Create rejects the request when the client's folder already exists for
// the given (classification, payee, name) triple, otherwise creates the
// folder taxonomy and inserts the JSON record. There is no rollback if the
// record save fails after the folders were made.
//
// The record table is keyed by name alone, so a name already recorded under
// a different payee or classification is silently overwritten; only the
// on-disk folder check guards duplicates, and only within one
// classification/payee pair.
func (s *ClientService) Create(req *domain.CreateClientRequest) (*domain.ClientDTO, error) {
	if !domain.ValidPayee(req.Payee) {
		return nil, fmt.Errorf("%w: unknown payee '%s'", ErrInvalidInput, req.Payee)
	}

	if s.taxonomy.ClientExists(req.Name, req.Payee, req.Classification) {
		return nil, fmt.Errorf("%w: '%s' under %s/%s", ErrClientExists, req.Name, req.Classification, req.Payee)
	}

	if err := s.taxonomy.CreateStructure(req.Payee, req.Name, defaultYear, req.Classification); err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	client := domain.Client{
		Payee:               req.Payee,
		Classification:      req.Classification,
		Address:             req.Address,
		Contact:             req.Contact,
		Email:               req.Email,
		Sector:              req.Sector,
		NumBoilers:          req.NumBoilers,
		BoilerSerialNumbers: req.BoilerSerialNumbers,
		BurnerType:          req.BurnerType,
	}
	clients[req.Name] = client

	if err := s.clientRepo.Save(clients); err != nil {
		return nil, fmt.Errorf("failed to save clients: %w", err)
	}

	s.logger.Info("client created",
		zap.String("client", req.Name),
		zap.String("payee", req.Payee),
		zap.String("classification", string(req.Classification)),
	)

	dto := toClientDTO(req.Name, &client)
	return &dto, nil
}

// List returns all clients sorted by name, optionally filtered by payee.
func (s *ClientService) List(payee string) ([]domain.ClientDTO, error) {
	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	dtos := make([]domain.ClientDTO, 0, len(clients))
	for name, client := range clients {
		if payee != "" && client.Payee != payee {
			continue
		}
		c := client
		dtos = append(dtos, toClientDTO(name, &c))
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Name < dtos[j].Name })
	return dtos, nil
}

// Get returns a single client record by name.
func (s *ClientService) Get(name string) (*domain.ClientDTO, error) {
	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	client, ok := clients[name]
	if !ok {
		return nil, ErrClientNotFound
	}
	dto := toClientDTO(name, &client)
	return &dto, nil
}

// Update replaces the record's mutable fields after checking the admin
// password. Classification is left untouched since the folder tree cannot
// be moved.
func (s *ClientService) Update(name string, req *domain.UpdateClientRequest) (*domain.ClientDTO, error) {
	if !s.passwordMatches(req.Password) {
		return nil, ErrIncorrectPassword
	}

	clients, err := s.clientRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	client, ok := clients[name]
	if !ok {
		return nil, ErrClientNotFound
	}

	client.Payee = req.Payee
	client.Address = req.Address
	client.Contact = req.Contact
	client.Email = req.Email
	client.Sector = req.Sector
	client.NumBoilers = req.NumBoilers
	client.BoilerSerialNumbers = req.BoilerSerialNumbers
	client.BurnerType = req.BurnerType
	clients[name] = client

	if err := s.clientRepo.Save(clients); err != nil {
		return nil, fmt.Errorf("failed to save clients: %w", err)
	}

	s.logger.Info("client updated", zap.String("client", name))

	dto := toClientDTO(name, &client)
	return &dto, nil
}

// Delete removes the JSON record after checking the admin password. The
// client's folders and filed documents stay on disk untouched.
func (s *ClientService) Delete(name, password string) error {
	if !s.passwordMatches(password) {
		return ErrIncorrectPassword
	}

	clients, err := s.clientRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	if _, ok := clients[name]; !ok {
		return ErrClientNotFound
	}
	delete(clients, name)

	if err := s.clientRepo.Save(clients); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}

	s.logger.Info("client deleted", zap.String("client", name))
	return nil
}

func (s *ClientService) passwordMatches(given string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(s.adminPassword)) == 1
}

func toClientDTO(name string, client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		Name:                name,
		Payee:               client.Payee,
		Classification:      client.Classification,
		Address:             client.Address,
		Contact:             client.Contact,
		Email:               client.Email,
		Sector:              client.Sector,
		NumBoilers:          client.NumBoilers,
		BoilerSerialNumbers: client.BoilerSerialNumbers,
		BurnerType:          client.BurnerType,
	}
}
