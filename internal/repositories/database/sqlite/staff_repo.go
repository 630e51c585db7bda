package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

// StaffRepository implements the staff ports over SQLite.
type StaffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

var _ portsrepo.StaffRepositoryFacade = (*StaffRepository)(nil)

const staffColumns = `staff_id, email, full_name, role, assigned_locations, is_active, phone_number,
	password_hash, last_login, created_at, last_updated_at`

func scanStaff(row rowScanner) (models.StaffAccount, error) {
	var m models.StaffAccount
	err := row.Scan(&m.StaffID, &m.Email, &m.FullName, &m.Role, (*stringList)(&m.AssignedLocations),
		&m.IsActive, &m.PhoneNumber, &m.PasswordHash, &m.LastLogin, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// ListStaff returns accounts in creation order.
func (r *StaffRepository) ListStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+staffColumns+` FROM staff_accounts ORDER BY created_at, staff_id`)
	if err != nil {
		return nil, storageError("query staff", err)
	}
	defer rows.Close()

	staff := []domain.StaffAccount{}
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, storageError("scan staff account", err)
		}
		staff = append(staff, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate staff", err)
	}
	return staff, nil
}

func (r *StaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffAccount, error) {
	return r.findOne(ctx, `staff_id = ?`, staffID)
}

func (r *StaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	return r.findOne(ctx, `email = ?`, domain.NormalizeEmail(email))
}

func (r *StaffRepository) findOne(ctx context.Context, where string, arg any) (*domain.StaffAccount, error) {
	m, err := scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff_accounts WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get staff account", err)
	}
	staff := m.ToDomain()
	return &staff, nil
}

func (r *StaffRepository) SaveStaff(ctx context.Context, staff domain.StaffAccount) error {
	m := models.FromDomainStaff(staff)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO staff_accounts (`+staffColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.StaffID, m.Email, m.FullName, m.Role, stringList(m.AssignedLocations), m.IsActive,
		m.PhoneNumber, m.PasswordHash, m.LastLogin, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert staff account", err)
	}
	return nil
}

func (r *StaffRepository) UpdateStaff(ctx context.Context, staff domain.StaffAccount) error {
	m := models.FromDomainStaff(staff)
	err := execAffectingOne(ctx, r.db, "update staff account", `
		UPDATE staff_accounts SET
			email = ?, full_name = ?, role = ?, assigned_locations = ?, is_active = ?,
			phone_number = ?, password_hash = ?, last_updated_at = ?
		WHERE staff_id = ?`,
		m.Email, m.FullName, m.Role, stringList(m.AssignedLocations), m.IsActive,
		m.PhoneNumber, m.PasswordHash, m.LastUpdatedAt, m.StaffID,
	)
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrDuplicate
	}
	return err
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID string, at time.Time) error {
	return execAffectingOne(ctx, r.db, "update last login",
		`UPDATE staff_accounts SET last_login = ? WHERE staff_id = ?`, at, staffID)
}

func (r *StaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	return execAffectingOne(ctx, r.db, "delete staff account", `DELETE FROM staff_accounts WHERE staff_id = ?`, staffID)
}
