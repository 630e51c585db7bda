package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/google/uuid"
)

type workforceService struct {
	BaseService
	workforceRepo portsrepo.WorkforceRepositoryFacade
}

// NewWorkforceService creates a new workforce service.
func NewWorkforceService(repo portsrepo.WorkforceRepositoryFacade, options ...ServiceOption) portssvc.WorkforceSvcFacade {
	return &workforceService{BaseService: newBase(options), workforceRepo: repo}
}

var _ portssvc.WorkforceSvcFacade = (*workforceService)(nil)

func validateWorkforceEntry(e domain.WorkforceEntry) error {
	if !e.Partition.IsValid() {
		return fmt.Errorf("%w: partition must be north or south", apperrors.ErrValidation)
	}
	if e.FTE.IsNegative() {
		return fmt.Errorf("%w: FTE must not be negative", apperrors.ErrValidation)
	}
	if e.Role == "" {
		return fmt.Errorf("%w: role is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *workforceService) GetWorkforce(ctx context.Context, actor *domain.Actor) (domain.WorkforceData, error) {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return domain.WorkforceData{}, err
	}
	entries, err := s.workforceRepo.ListWorkforce(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workforce")
		return domain.WorkforceData{}, fmt.Errorf("failed to list workforce: %w", err)
	}
	return domain.PartitionWorkforce(entries), nil
}

func (s *workforceService) CreateWorkforceEntry(ctx context.Context, actor *domain.Actor, req dto.CreateWorkforceEntryRequest) (*domain.WorkforceEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return nil, err
	}
	entry := domain.WorkforceEntry{
		ID:        uuid.NewString(),
		Partition: domain.WorkforcePartition(req.Partition),
		FTE:       req.FTE,
		Role:      req.Role,
		Ethnicity: req.Ethnicity,
		Languages: req.Languages,
	}
	if err := validateWorkforceEntry(entry); err != nil {
		return nil, err
	}
	if err := s.workforceRepo.SaveWorkforceEntry(ctx, entry); err != nil {
		s.logUnexpected(ctx, err, "Failed to save workforce entry", slog.String("entry_id", entry.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Workforce entry created", slog.String("entry_id", entry.ID), slog.String("partition", string(entry.Partition)))
	return &entry, nil
}

func (s *workforceService) UpdateWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string, req dto.UpdateWorkforceEntryRequest) (*domain.WorkforceEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return nil, err
	}
	entry, err := s.workforceRepo.FindWorkforceEntryByID(ctx, entryID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find workforce entry", slog.String("entry_id", entryID))
		return nil, err
	}
	if req.Partition != nil {
		entry.Partition = domain.WorkforcePartition(*req.Partition)
	}
	if req.FTE != nil {
		entry.FTE = *req.FTE
	}
	if req.Role != nil {
		entry.Role = *req.Role
	}
	if req.Ethnicity != nil {
		entry.Ethnicity = *req.Ethnicity
	}
	if req.Languages != nil {
		entry.Languages = *req.Languages
	}
	if err := validateWorkforceEntry(*entry); err != nil {
		return nil, err
	}
	if err := s.workforceRepo.UpdateWorkforceEntry(ctx, *entry); err != nil {
		s.logUnexpected(ctx, err, "Failed to update workforce entry", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Workforce entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *workforceService) DeleteWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string) error {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return err
	}
	if err := s.workforceRepo.DeleteWorkforceEntry(ctx, entryID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete workforce entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Workforce entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *workforceService) ReplaceWorkforce(ctx context.Context, actor *domain.Actor, data domain.WorkforceData) (domain.WorkforceData, error) {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return domain.WorkforceData{}, err
	}
	// The list an entry is submitted under decides its partition.
	entries := make([]domain.WorkforceEntry, 0, len(data.North)+len(data.South))
	add := func(partition domain.WorkforcePartition, list []domain.WorkforceEntry) error {
		for _, e := range list {
			e.Partition = partition
			if e.ID == "" {
				e.ID = uuid.NewString()
			}
			if err := validateWorkforceEntry(e); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	}
	if err := add(domain.PartitionNorth, data.North); err != nil {
		return domain.WorkforceData{}, err
	}
	if err := add(domain.PartitionSouth, data.South); err != nil {
		return domain.WorkforceData{}, err
	}
	if err := s.workforceRepo.ReplaceWorkforce(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to replace workforce")
		return domain.WorkforceData{}, fmt.Errorf("failed to replace workforce: %w", err)
	}
	s.LogInfo(ctx, "Workforce replaced", slog.Int("entries", len(entries)))
	return domain.PartitionWorkforce(entries), nil
}
