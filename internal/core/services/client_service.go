package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// ClientIDPrefix starts every generated client ID.
const ClientIDPrefix = "C"

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(repo portsrepo.ClientRepositoryFacade, options ...ServiceOption) portssvc.ClientSvcFacade {
	return &clientService{BaseService: newBase(options), clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) ListClients(ctx context.Context, actor *domain.Actor) ([]domain.Client, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	s.LogDebug(ctx, "Clients listed", slog.Int("count", len(clients)))
	return domain.WithDerivedAges(clients, s.Now()), nil
}

func (s *clientService) GetClient(ctx context.Context, actor *domain.Actor, clientID string) (*domain.Client, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	client.Age = client.AgeAt(s.Now())
	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, actor *domain.Actor, req dto.CreateClientRequest) (*domain.Client, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}

	dob, err := dto.ParseOptionalDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	referral, err := dto.ParseOptionalDate("referralDate", req.ReferralDate)
	if err != nil {
		return nil, err
	}
	id, err := utils.GenerateRecordID(ClientIDPrefix)
	if err != nil {
		return nil, err
	}

	client := domain.Client{
		ID:             id,
		FullName:       strings.TrimSpace(req.FullName),
		Sex:            req.Sex,
		DateOfBirth:    dob,
		Ethnicity:      req.Ethnicity,
		CountryOfBirth: req.CountryOfBirth,
		Languages:      req.Languages,
		ReferralSource: req.ReferralSource,
		ReferralDate:   referral,
		Address:        req.Address,
		Postcode:       req.Postcode,
		Region:         domain.Region(req.Region),
		CreatedAt:      s.Now(),
	}
	if dob == nil {
		client.Age = req.Age
	}
	if req.Password != "" {
		if client.PasswordHash, err = utils.HashPassword(req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash client password: %w", err)
		}
	}
	if err := validateClient(client, s.Now()); err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.logUnexpected(ctx, err, "Failed to save client", slog.String("client_id", client.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ID))
	client.Age = client.AgeAt(s.Now())
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find client for update", slog.String("client_id", clientID))
		return nil, err
	}

	if req.FullName != nil {
		client.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Sex != nil {
		client.Sex = *req.Sex
	}
	if req.DateOfBirth != nil {
		if client.DateOfBirth, err = dto.ParseOptionalDate("dateOfBirth", *req.DateOfBirth); err != nil {
			return nil, err
		}
		if client.DateOfBirth != nil {
			client.Age = nil
		}
	}
	if req.Ethnicity != nil {
		client.Ethnicity = *req.Ethnicity
	}
	if req.CountryOfBirth != nil {
		client.CountryOfBirth = *req.CountryOfBirth
	}
	if req.Languages != nil {
		client.Languages = *req.Languages
	}
	if req.ReferralSource != nil {
		client.ReferralSource = *req.ReferralSource
	}
	if req.ReferralDate != nil {
		if client.ReferralDate, err = dto.ParseOptionalDate("referralDate", *req.ReferralDate); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Postcode != nil {
		client.Postcode = *req.Postcode
	}
	if req.Region != nil {
		client.Region = domain.Region(*req.Region)
	}
	if req.Password != nil {
		if client.PasswordHash, err = utils.HashPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash client password: %w", err)
		}
	}
	if err := validateClient(*client, s.Now()); err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.logUnexpected(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	client.Age = client.AgeAt(s.Now())
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, actor *domain.Actor, clientID string) error {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

func validateClient(c domain.Client, now time.Time) error {
	if c.FullName == "" {
		return fmt.Errorf("%w: full name is required", apperrors.ErrValidation)
	}
	if c.DateOfBirth != nil && c.DateOfBirth.After(now) {
		return fmt.Errorf("%w: date of birth is in the future", apperrors.ErrValidation)
	}
	if c.Age != nil && *c.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", apperrors.ErrValidation)
	}
	if c.Region != "" && c.Region != domain.RegionNorth && c.Region != domain.RegionSouth {
		return fmt.Errorf("%w: unknown region %q", apperrors.ErrValidation, c.Region)
	}
	return nil
}
