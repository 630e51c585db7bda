package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
	"github.com/google/uuid"
)

type staffService struct {
	BaseService
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new staff account service.
func NewStaffService(repo portsrepo.StaffRepositoryFacade, options ...ServiceOption) portssvc.StaffSvcFacade {
	return &staffService{BaseService: newBase(options), staffRepo: repo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) ListStaff(ctx context.Context, actor *domain.Actor) ([]domain.StaffAccount, error) {
	if err := s.Authorize(ctx, actor, domain.CapUserAdministration); err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list staff")
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if staff == nil {
		return []domain.StaffAccount{}, nil
	}
	return staff, nil
}

func (s *staffService) GetStaff(ctx context.Context, actor *domain.Actor, staffID string) (*domain.StaffAccount, error) {
	if err := s.Authorize(ctx, actor, domain.CapUserAdministration); err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find staff account", slog.String("staff_id", staffID))
		return nil, err
	}
	return staff, nil
}

func validateLocations(locations []string) error {
	for _, loc := range locations {
		if !domain.IsKnownLocation(loc) {
			return fmt.Errorf("%w: unknown location %q", apperrors.ErrValidation, loc)
		}
	}
	return nil
}

func (s *staffService) CreateStaff(ctx context.Context, actor *domain.Actor, req dto.CreateStaffRequest) (*domain.StaffAccount, error) {
	if err := s.Authorize(ctx, actor, domain.CapUserAdministration); err != nil {
		return nil, err
	}
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if err := validateLocations(req.AssignedLocations); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	staff := domain.StaffAccount{
		ID:                uuid.NewString(),
		Email:             domain.NormalizeEmail(req.Email),
		FullName:          strings.TrimSpace(req.FullName),
		Role:              role,
		AssignedLocations: req.AssignedLocations,
		IsActive:          true,
		PhoneNumber:       req.PhoneNumber,
		PasswordHash:      hash,
		AuditFields:       domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		s.logUnexpected(ctx, err, "Failed to save staff account", slog.String("staff_id", staff.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Staff account created", slog.String("staff_id", staff.ID), slog.String("role", string(role)))
	return &staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, actor *domain.Actor, staffID string, req dto.UpdateStaffRequest) (*domain.StaffAccount, error) {
	if err := s.Authorize(ctx, actor, domain.CapUserAdministration); err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find staff account for update", slog.String("staff_id", staffID))
		return nil, err
	}
	self := actor != nil && actor.ID == staffID

	if req.FullName != nil {
		staff.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if self && role != staff.Role {
			return nil, fmt.Errorf("%w: administrators cannot change their own role", apperrors.ErrValidation)
		}
		staff.Role = role
	}
	if req.AssignedLocations != nil {
		if err := validateLocations(*req.AssignedLocations); err != nil {
			return nil, err
		}
		staff.AssignedLocations = *req.AssignedLocations
	}
	if req.IsActive != nil {
		if self && !*req.IsActive {
			return nil, fmt.Errorf("%w: administrators cannot deactivate themselves", apperrors.ErrValidation)
		}
		staff.IsActive = *req.IsActive
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.Password != nil {
		if staff.PasswordHash, err = utils.HashPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	staff.LastUpdatedAt = s.Now()

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		s.logUnexpected(ctx, err, "Failed to update staff account", slog.String("staff_id", staffID))
		return nil, err
	}
	s.LogInfo(ctx, "Staff account updated", slog.String("staff_id", staffID))
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, actor *domain.Actor, staffID string) error {
	if err := s.Authorize(ctx, actor, domain.CapUserAdministration); err != nil {
		return err
	}
	if actor != nil && actor.ID == staffID {
		return fmt.Errorf("%w: administrators cannot delete their own account", apperrors.ErrValidation)
	}
	if err := s.staffRepo.DeleteStaff(ctx, staffID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete staff account", slog.String("staff_id", staffID))
		return err
	}
	s.LogInfo(ctx, "Staff account deleted", slog.String("staff_id", staffID))
	return nil
}

// signIn finds an active account by email and records the login time.
func (s *staffService) signIn(ctx context.Context, email string, check func(*domain.StaffAccount) bool) (*domain.StaffAccount, error) {
	staff, err := s.staffRepo.FindStaffByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up staff account for sign-in")
		return nil, err
	}
	if !staff.IsActive || !check(staff) {
		s.LogInfo(ctx, "Sign-in rejected", slog.String("staff_id", staff.ID), slog.Bool("active", staff.IsActive))
		return nil, apperrors.ErrUnauthorized
	}

	now := s.Now()
	if err := s.staffRepo.UpdateLastLogin(ctx, staff.ID, now); err != nil {
		// Not fatal; the session is still valid.
		s.LogError(ctx, err, "Failed to record last login", slog.String("staff_id", staff.ID))
	} else {
		staff.LastLogin = &now
	}
	return staff, nil
}

func (s *staffService) AuthenticateStaff(ctx context.Context, email, password string) (*domain.StaffAccount, error) {
	return s.signIn(ctx, email, func(staff *domain.StaffAccount) bool {
		return utils.CheckPasswordHash(password, staff.PasswordHash)
	})
}

func (s *staffService) AuthenticateGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.StaffAccount, error) {
	if identity.Email == "" || !identity.EmailVerified {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}
	return s.signIn(ctx, identity.Email, func(*domain.StaffAccount) bool { return true })
}
