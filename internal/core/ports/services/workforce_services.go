package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// WorkforceSvcFacade defines operations on the workforce snapshot.
type WorkforceSvcFacade interface {
	GetWorkforce(ctx context.Context, actor *domain.Actor) (domain.WorkforceData, error)
	CreateWorkforceEntry(ctx context.Context, actor *domain.Actor, req dto.CreateWorkforceEntryRequest) (*domain.WorkforceEntry, error)
	UpdateWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string, req dto.UpdateWorkforceEntryRequest) (*domain.WorkforceEntry, error)
	DeleteWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string) error
	// ReplaceWorkforce swaps the whole snapshot in one transaction.
	ReplaceWorkforce(ctx context.Context, actor *domain.Actor, data domain.WorkforceData) (domain.WorkforceData, error)
}
