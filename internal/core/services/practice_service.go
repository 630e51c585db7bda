package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// PracticeIDPrefix starts every generated GP practice ID.
const PracticeIDPrefix = "G"

type practiceService struct {
	BaseService
	practiceRepo portsrepo.PracticeRepositoryFacade
}

// NewPracticeService creates a new GP practice directory service.
func NewPracticeService(repo portsrepo.PracticeRepositoryFacade, options ...ServiceOption) portssvc.PracticeSvcFacade {
	return &practiceService{BaseService: newBase(options), practiceRepo: repo}
}

var _ portssvc.PracticeSvcFacade = (*practiceService)(nil)

func (s *practiceService) ListPractices(ctx context.Context, actor *domain.Actor) ([]domain.GpPractice, error) {
	if err := s.Authorize(ctx, actor, domain.CapPracticeDirectory); err != nil {
		return nil, err
	}
	practices, err := s.practiceRepo.ListPractices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list practices")
		return nil, fmt.Errorf("failed to list practices: %w", err)
	}
	return practices, nil
}

func (s *practiceService) GetPractice(ctx context.Context, actor *domain.Actor, practiceID string) (*domain.GpPractice, error) {
	if err := s.Authorize(ctx, actor, domain.CapPracticeDirectory); err != nil {
		return nil, err
	}
	practice, err := s.practiceRepo.FindPracticeByID(ctx, practiceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find practice", slog.String("practice_id", practiceID))
		return nil, err
	}
	return practice, nil
}

func (s *practiceService) CreatePractice(ctx context.Context, actor *domain.Actor, req dto.CreatePracticeRequest) (*domain.GpPractice, error) {
	if err := s.Authorize(ctx, actor, domain.CapPracticeDirectory); err != nil {
		return nil, err
	}
	id, err := utils.GenerateRecordID(PracticeIDPrefix)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	practice := domain.GpPractice{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		Website:     strings.TrimSpace(req.Website),
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if practice.Name == "" {
		return nil, fmt.Errorf("%w: practice name is required", apperrors.ErrValidation)
	}

	if err := s.practiceRepo.SavePractice(ctx, practice); err != nil {
		s.logUnexpected(ctx, err, "Failed to save practice", slog.String("practice_id", practice.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Practice created", slog.String("practice_id", practice.ID))
	return &practice, nil
}

func (s *practiceService) UpdatePractice(ctx context.Context, actor *domain.Actor, practiceID string, req dto.UpdatePracticeRequest) (*domain.GpPractice, error) {
	if err := s.Authorize(ctx, actor, domain.CapPracticeDirectory); err != nil {
		return nil, err
	}
	practice, err := s.practiceRepo.FindPracticeByID(ctx, practiceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find practice for update", slog.String("practice_id", practiceID))
		return nil, err
	}

	if req.Name != nil {
		practice.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		practice.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		practice.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Website != nil {
		practice.Website = strings.TrimSpace(*req.Website)
	}
	if req.Notes != nil {
		practice.Notes = *req.Notes
	}
	if practice.Name == "" {
		return nil, fmt.Errorf("%w: practice name is required", apperrors.ErrValidation)
	}
	practice.LastUpdatedAt = s.Now()

	if err := s.practiceRepo.UpdatePractice(ctx, *practice); err != nil {
		s.logUnexpected(ctx, err, "Failed to update practice", slog.String("practice_id", practiceID))
		return nil, err
	}
	s.LogInfo(ctx, "Practice updated", slog.String("practice_id", practiceID))
	return practice, nil
}

func (s *practiceService) DeletePractice(ctx context.Context, actor *domain.Actor, practiceID string) error {
	if err := s.Authorize(ctx, actor, domain.CapPracticeDirectory); err != nil {
		return err
	}
	if err := s.practiceRepo.DeletePractice(ctx, practiceID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete practice", slog.String("practice_id", practiceID))
		return err
	}
	s.LogInfo(ctx, "Practice deleted", slog.String("practice_id", practiceID))
	return nil
}
