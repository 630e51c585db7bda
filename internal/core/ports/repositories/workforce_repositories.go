package repositories

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// WorkforceReader defines read operations for workforce entries.
type WorkforceReader interface {
	ListWorkforce(ctx context.Context) ([]domain.WorkforceEntry, error)
	FindWorkforceEntryByID(ctx context.Context, entryID string) (*domain.WorkforceEntry, error)
}

// WorkforceWriter defines write operations for workforce entries.
type WorkforceWriter interface {
	SaveWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error
	UpdateWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error
	DeleteWorkforceEntry(ctx context.Context, entryID string) error
	// ReplaceWorkforce atomically swaps the whole workforce for entries.
	ReplaceWorkforce(ctx context.Context, entries []domain.WorkforceEntry) error
}

// WorkforceRepositoryFacade combines all workforce repository operations.
type WorkforceRepositoryFacade interface {
	WorkforceReader
	WorkforceWriter
}
