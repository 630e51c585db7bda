package repositories

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// ActivityReader defines read operations for navigation activities.
type ActivityReader interface {
	// ListActivities returns every activity, newest activity date first.
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error)
}

// ActivityWriter defines write operations for navigation activities.
type ActivityWriter interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	// UpdateActivity never changes the stored authorship columns.
	UpdateActivity(ctx context.Context, activity domain.Activity) error
	DeleteActivity(ctx context.Context, activityID string) error
}

// ActivityRepositoryFacade combines all activity repository operations.
type ActivityRepositoryFacade interface {
	ActivityReader
	ActivityWriter
}
