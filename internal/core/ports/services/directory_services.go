package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// PracticeSvcFacade defines operations on the GP practice directory.
type PracticeSvcFacade interface {
	ListPractices(ctx context.Context, actor *domain.Actor) ([]domain.GpPractice, error)
	GetPractice(ctx context.Context, actor *domain.Actor, practiceID string) (*domain.GpPractice, error)
	CreatePractice(ctx context.Context, actor *domain.Actor, req dto.CreatePracticeRequest) (*domain.GpPractice, error)
	UpdatePractice(ctx context.Context, actor *domain.Actor, practiceID string, req dto.UpdatePracticeRequest) (*domain.GpPractice, error)
	DeletePractice(ctx context.Context, actor *domain.Actor, practiceID string) error
}

// ResourceSvcFacade defines operations on the resource library metadata.
// Uploading and deleting the files themselves is the caller's job.
type ResourceSvcFacade interface {
	// ListResources returns the library newest first; a non-empty category
	// narrows it to one section.
	ListResources(ctx context.Context, actor *domain.Actor, category string) ([]domain.ProgramResource, error)
	GetResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error)
	CreateResource(ctx context.Context, actor *domain.Actor, req dto.CreateResourceRequest) (*domain.ProgramResource, error)
	UpdateResource(ctx context.Context, actor *domain.Actor, resourceID string, req dto.UpdateResourceRequest) (*domain.ProgramResource, error)
	// DeleteResource returns the removed record so the caller can drop the
	// stored file.
	DeleteResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error)
}

// LocalInsightsSvc serves the local-area demographic references.
type LocalInsightsSvc interface {
	LocalAreas(ctx context.Context, actor *domain.Actor) ([]domain.LocalArea, error)
}
