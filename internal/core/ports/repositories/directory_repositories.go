package repositories

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// PracticeReader defines read operations for the GP practice directory.
type PracticeReader interface {
	// ListPractices returns every practice ordered by name.
	ListPractices(ctx context.Context) ([]domain.GpPractice, error)
	FindPracticeByID(ctx context.Context, practiceID string) (*domain.GpPractice, error)
}

// PracticeWriter defines write operations for the GP practice directory.
type PracticeWriter interface {
	SavePractice(ctx context.Context, practice domain.GpPractice) error
	UpdatePractice(ctx context.Context, practice domain.GpPractice) error
	DeletePractice(ctx context.Context, practiceID string) error
}

// PracticeRepositoryFacade combines all practice repository operations.
type PracticeRepositoryFacade interface {
	PracticeReader
	PracticeWriter
}

// ResourceReader defines read operations for resource library metadata.
type ResourceReader interface {
	// ListResources returns every resource, newest first.
	ListResources(ctx context.Context) ([]domain.ProgramResource, error)
	FindResourceByID(ctx context.Context, resourceID string) (*domain.ProgramResource, error)
}

// ResourceWriter defines write operations for resource library metadata.
type ResourceWriter interface {
	SaveResource(ctx context.Context, resource domain.ProgramResource) error
	UpdateResource(ctx context.Context, resource domain.ProgramResource) error
	DeleteResource(ctx context.Context, resourceID string) error
}

// ResourceRepositoryFacade combines all resource repository operations.
type ResourceRepositoryFacade interface {
	ResourceReader
	ResourceWriter
}
