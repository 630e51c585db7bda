package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// ActivityReaderSvc defines read operations over the actor's visible activities.
type ActivityReaderSvc interface {
	// ListActivities returns one page of the scoped, filtered activity log,
	// newest first, and the token for the next page ("" on the last page).
	ListActivities(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria, limit int, nextToken string) ([]domain.ActivityView, string, error)
	// GetActivity returns apperrors.ErrNotFound for activities outside the actor's scope.
	GetActivity(ctx context.Context, actor *domain.Actor, activityID string) (*domain.ActivityView, error)
}

// ActivityWriterSvc defines write operations for activities. Authorship is
// stamped from the actor on create and preserved on update.
type ActivityWriterSvc interface {
	CreateActivity(ctx context.Context, actor *domain.Actor, req dto.CreateActivityRequest) (*domain.ActivityView, error)
	UpdateActivity(ctx context.Context, actor *domain.Actor, activityID string, req dto.UpdateActivityRequest) (*domain.ActivityView, error)
	DeleteActivity(ctx context.Context, actor *domain.Actor, activityID string) error
}

// ActivitySvcFacade combines all activity service interfaces.
type ActivitySvcFacade interface {
	ActivityReaderSvc
	ActivityWriterSvc
}
