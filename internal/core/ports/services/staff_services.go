package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// StaffReaderSvc defines read operations for staff accounts.
type StaffReaderSvc interface {
	ListStaff(ctx context.Context, actor *domain.Actor) ([]domain.StaffAccount, error)
	GetStaff(ctx context.Context, actor *domain.Actor, staffID string) (*domain.StaffAccount, error)
}

// StaffWriterSvc defines write operations for staff accounts.
type StaffWriterSvc interface {
	CreateStaff(ctx context.Context, actor *domain.Actor, req dto.CreateStaffRequest) (*domain.StaffAccount, error)
	UpdateStaff(ctx context.Context, actor *domain.Actor, staffID string, req dto.UpdateStaffRequest) (*domain.StaffAccount, error)
	DeleteStaff(ctx context.Context, actor *domain.Actor, staffID string) error
}

// StaffAuthSvc defines operations for staff authentication.
type StaffAuthSvc interface {
	// AuthenticateStaff checks email and password. Unknown, inactive and
	// mismatched credentials all return apperrors.ErrUnauthorized.
	AuthenticateStaff(ctx context.Context, email, password string) (*domain.StaffAccount, error)
	// AuthenticateGoogle maps a verified Google identity onto an existing
	// active staff account. Accounts are never created implicitly.
	AuthenticateGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.StaffAccount, error)
}

// StaffSvcFacade combines all staff service interfaces.
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
	StaffAuthSvc
}
