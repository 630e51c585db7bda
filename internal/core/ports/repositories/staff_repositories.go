package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// StaffReader defines read operations for staff accounts.
type StaffReader interface {
	ListStaff(ctx context.Context) ([]domain.StaffAccount, error)
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffAccount, error)
	// FindStaffByEmail matches case-insensitively.
	FindStaffByEmail(ctx context.Context, email string) (*domain.StaffAccount, error)
}

// StaffWriter defines write operations for staff accounts.
type StaffWriter interface {
	// SaveStaff returns apperrors.ErrDuplicate when the email is taken.
	SaveStaff(ctx context.Context, staff domain.StaffAccount) error
	UpdateStaff(ctx context.Context, staff domain.StaffAccount) error
	UpdateLastLogin(ctx context.Context, staffID string, at time.Time) error
	DeleteStaff(ctx context.Context, staffID string) error
}

// StaffRepositoryFacade combines all staff repository operations.
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
