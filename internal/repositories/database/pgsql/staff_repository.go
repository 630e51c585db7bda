package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool *pgxpool.Pool) *PgxStaffRepository {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffSelectQuery = `
SELECT
	staff_id, email, full_name, role, assigned_locations, is_active, phone_number,
	password_hash, last_login, created_at, last_updated_at
FROM staff_accounts
`

func (r *PgxStaffRepository) getStaff(ctx context.Context, filter string, args ...any) ([]domain.StaffAccount, error) {
	rows, err := r.Pool.Query(ctx, staffSelectQuery+filter, args...)
	if err != nil {
		return nil, storageError("query staff", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StaffAccount])
	if err != nil {
		return nil, storageError("collect staff rows", err)
	}
	staff := make([]domain.StaffAccount, len(ms))
	for i, m := range ms {
		staff[i] = m.ToDomain()
	}
	return staff, nil
}

// ListStaff returns accounts in creation order, which fixes the roster order
// used for attributing unauthored activities.
func (r *PgxStaffRepository) ListStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	return r.getStaff(ctx, ` ORDER BY created_at, staff_id`)
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffAccount, error) {
	return r.findOne(ctx, ` WHERE staff_id = $1`, staffID)
}

func (r *PgxStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	return r.findOne(ctx, ` WHERE LOWER(email) = $1`, domain.NormalizeEmail(email))
}

func (r *PgxStaffRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.StaffAccount, error) {
	staff, err := r.getStaff(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &staff[0], nil
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffAccount) error {
	m := models.FromDomainStaff(staff)
	query := `
		INSERT INTO staff_accounts (
			staff_id, email, full_name, role, assigned_locations, is_active, phone_number,
			password_hash, last_login, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StaffID, m.Email, m.FullName, m.Role, m.AssignedLocations, m.IsActive, m.PhoneNumber,
		m.PasswordHash, m.LastLogin, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert staff account", err)
	}
	return nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.StaffAccount) error {
	m := models.FromDomainStaff(staff)
	query := `
		UPDATE staff_accounts SET
			email = $2, full_name = $3, role = $4, assigned_locations = $5, is_active = $6,
			phone_number = $7, password_hash = $8, last_updated_at = $9
		WHERE staff_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StaffID, m.Email, m.FullName, m.Role, m.AssignedLocations, m.IsActive,
		m.PhoneNumber, m.PasswordHash, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("update staff account", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStaffRepository) UpdateLastLogin(ctx context.Context, staffID string, at time.Time) error {
	return r.execAffectingOne(ctx, "update last login",
		`UPDATE staff_accounts SET last_login = $2 WHERE staff_id = $1`, staffID, at)
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	return r.execAffectingOne(ctx, "delete staff account", `DELETE FROM staff_accounts WHERE staff_id = $1`, staffID)
}
